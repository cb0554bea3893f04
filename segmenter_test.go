package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKanaSegmenter(t *testing.T) {
	seg := KanaSegmenter{}
	tests := []struct {
		input    string
		hiragana string
		katakana string
	}{
		{"ひらカタ", "ひらかた", "ヒラカタ"},
		{"ひら　カタ", "ひらかた", "ヒラカタ"},
		{"ｶﾀｶﾅ", "かたかな", "カタカナ"},
		{"ラーメン", "らーめん", "ラーメン"},
		{"ヴァイオリン", "ゔぁいおりん", "ヴァイオリン"},
		{"ＡＢＣ１２３", "ABC123", "ABC123"},
		{"ゝヽ", "ゝゝ", "ヽヽ"},
		{"", "", ""},
	}
	for _, tt := range tests {
		got, err := seg.TransliterateToHiragana(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.hiragana, got, "TransliterateToHiragana(%q)", tt.input)

		got, err = seg.TransliterateToKatakana(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.katakana, got, "TransliterateToKatakana(%q)", tt.input)
	}
}

func TestKanaSegmenterRejectsKanji(t *testing.T) {
	_, err := KanaSegmenter{}.TransliterateToHiragana("櫻井翔カタかな")
	assert.ErrorIs(t, err, ErrUnsupportedInput)
	assert.Contains(t, err.Error(), "櫻")

	_, err = KanaSegmenter{}.TransliterateToKatakana("日本")
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestKanaClassification(t *testing.T) {
	assert.True(t, IsHiragana('ゔ'))
	assert.False(t, IsHiragana('ヴ'))
	assert.True(t, IsKatakana('ー'))
	assert.True(t, IsKatakana('ヴ'))
	assert.False(t, IsKatakana('a'))
	assert.Equal(t, 'ー', KatakanaToHiragana('ー'))
	assert.Equal(t, 'ヵ', HiraganaToKatakana('ゕ'))
}

func TestParseScript(t *testing.T) {
	for name, want := range map[string]Script{
		"hiragana": Hiragana,
		"K":        Katakana,
		" romaji ": Romaji,
		"latin":    Romaji,
	} {
		got, err := ParseScript(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseScript("kanji")
	assert.ErrorIs(t, err, ErrUnknownScript)

	var s Script
	require.NoError(t, s.UnmarshalText([]byte("katakana")))
	assert.Equal(t, Katakana, s)
	text, err := Romaji.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "romaji", string(text))
	assert.Equal(t, "Script(9)", Script(9).String())
}
