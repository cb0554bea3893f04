package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRomaji(t *testing.T) {
	tests := []struct {
		input string
		from  Script
		want  string
	}{
		{"ア", Katakana, "a"},
		{"ギョ", Katakana, "gyo"},
		{"ボ", Katakana, "bo"},
		{"ん", Hiragana, "n"},
		{"ぎゃ", Hiragana, "gya"},
		{"ぼ", Hiragana, "bo"},
		{"ka", Romaji, "ka"},

		// composed from a base mora and a small vowel
		{"じぇ", Hiragana, "je"},
		{"つぁ", Hiragana, "tsa"},
		{"ふぁ", Hiragana, "fa"},
		{"はぁ", Hiragana, "haa"},
		{"いぇ", Hiragana, "ye"},
		{"くぃ", Hiragana, "kwi"},
		{"ファ", Katakana, "fa"},
		{"ヴァ", Katakana, "va"},
		{"ティ", Katakana, "tei"},
		{"ウィ", Katakana, "wi"},
	}
	for _, tt := range tests {
		got, ok := ToRomaji(tt.input, tt.from)
		if assert.True(t, ok, "ToRomaji(%q, %s)", tt.input, tt.from) {
			assert.Equal(t, tt.want, got, "ToRomaji(%q, %s)", tt.input, tt.from)
		}
	}
}

func TestToRomajiNotFound(t *testing.T) {
	tests := []struct {
		input string
		from  Script
	}{
		{"", Hiragana},
		{"  ", Katakana},
		{"ab", Romaji},
		{"ぁ", Hiragana},
		{"ファ", Hiragana},
		{"ぁぁ", Hiragana},
		{"x", Katakana},
	}
	for _, tt := range tests {
		got, ok := ToRomaji(tt.input, tt.from)
		assert.False(t, ok, "ToRomaji(%q, %s) = %q", tt.input, tt.from, got)
		assert.Empty(t, got)
	}
}

func TestToKatakana(t *testing.T) {
	got, ok := ToKatakana("あ", Hiragana)
	assert.True(t, ok)
	assert.Equal(t, "ア", got)

	got, _ = ToKatakana("びょ", Hiragana)
	assert.Equal(t, "ビョ", got)
	got, _ = ToKatakana("n", Romaji)
	assert.Equal(t, "ン", got)
	got, _ = ToKatakana("byo", Romaji)
	assert.Equal(t, "ビョ", got)

	for _, in := range []struct {
		text string
		from Script
	}{{"", Hiragana}, {"ab", Romaji}, {"  ", Katakana}, {"ふぁ", Hiragana}} {
		_, ok := ToKatakana(in.text, in.from)
		assert.False(t, ok, "ToKatakana(%q, %s)", in.text, in.from)
	}
}

func TestToHiragana(t *testing.T) {
	got, ok := ToHiragana("ン", Katakana)
	assert.True(t, ok)
	assert.Equal(t, "ん", got)

	got, _ = ToHiragana("ビョ", Katakana)
	assert.Equal(t, "びょ", got)
	got, _ = ToHiragana("tsu", Romaji)
	assert.Equal(t, "つ", got)
	got, _ = ToHiragana("po", Romaji)
	assert.Equal(t, "ぽ", got)
	got, _ = ToHiragana("ryu", Romaji)
	assert.Equal(t, "りゅ", got)

	for _, in := range []struct {
		text string
		from Script
	}{{"", Hiragana}, {"ab", Romaji}, {"  ", Katakana}, {"ファ", Katakana}} {
		_, ok := ToHiragana(in.text, in.from)
		assert.False(t, ok, "ToHiragana(%q, %s)", in.text, in.from)
	}
}

// Every kana cell converts to its romaji cell and back. Romaji spellings
// shared by two cells (ji, zu) resolve to the first one.
func TestChartRoundTrip(t *testing.T) {
	for r := 0; r < NumRows; r++ {
		for c := 0; c < len(romajiChart[r]); c++ {
			romaji := Cell(Romaji, r, c)
			if romaji == "" {
				assert.Empty(t, Cell(Hiragana, r, c))
				assert.Empty(t, Cell(Katakana, r, c))
				continue
			}
			hiragana, katakana := Cell(Hiragana, r, c), Cell(Katakana, r, c)

			got, _ := ToRomaji(hiragana, Hiragana)
			assert.Equal(t, romaji, got, "cell (%d,%d)", r, c)
			got, _ = ToRomaji(katakana, Katakana)
			assert.Equal(t, romaji, got, "cell (%d,%d)", r, c)
			got, _ = ToKatakana(hiragana, Hiragana)
			assert.Equal(t, katakana, got, "cell (%d,%d)", r, c)
			got, _ = ToHiragana(katakana, Katakana)
			assert.Equal(t, hiragana, got, "cell (%d,%d)", r, c)

			if fr, fc, _ := Find(Romaji, romaji); fr != r || fc != c {
				continue
			}
			got, _ = ToHiragana(romaji, Romaji)
			assert.Equal(t, hiragana, got, "cell (%d,%d)", r, c)
			got, _ = ToKatakana(romaji, Romaji)
			assert.Equal(t, katakana, got, "cell (%d,%d)", r, c)
		}
	}
}

func TestTo(t *testing.T) {
	got, ok := To("しゃ", Hiragana, Katakana)
	assert.True(t, ok)
	assert.Equal(t, "シャ", got)

	got, ok = To("シャ", Katakana, Romaji)
	assert.True(t, ok)
	assert.Equal(t, "sha", got)

	got, ok = To("sha", Romaji, Hiragana)
	assert.True(t, ok)
	assert.Equal(t, "しゃ", got)
}
