package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/kana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const names = `{"word": "相葉", "reading": "あいば"}
{"word": "雅紀", "reading": "まさき"}
not json
{"word": "東", "reading": "ひがし"}
{"word": "東京", "reading": "トウキョウ"}

{"word": "", "reading": "から"}
{"word": "山", "reading": "山"}
`

func newNames(t *testing.T) *Dictionary {
	t.Helper()
	d := New()
	require.NoError(t, d.Load(strings.NewReader(names)))
	return d
}

func TestLoadSkipsBadLines(t *testing.T) {
	d := newNames(t)
	assert.Equal(t, 4, d.Size())

	reading, ok := d.Lookup("東京")
	assert.True(t, ok)
	assert.Equal(t, "とうきょう", reading)

	_, ok = d.Lookup("山")
	assert.False(t, ok)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(names), 0644))

	d := New()
	require.NoError(t, d.LoadFromFile(path))
	assert.Equal(t, 4, d.Size())

	assert.Error(t, New().LoadFromFile(filepath.Join(t.TempDir(), "missing.jsonl")))
}

func TestAddReplaces(t *testing.T) {
	d := New()
	require.NoError(t, d.Add("日本", "にほん"))
	require.NoError(t, d.Add("日本", "ニッポン"))
	assert.Equal(t, 1, d.Size())

	reading, _ := d.Lookup("日本")
	assert.Equal(t, "にっぽん", reading)
}

func TestTransliterate(t *testing.T) {
	d := newNames(t)

	tests := []struct {
		input    string
		hiragana string
		katakana string
	}{
		{"相葉雅紀", "あいばまさき", "アイバマサキ"},
		{"相葉 雅紀", "あいばまさき", "アイバマサキ"},
		{"東京タワー", "とうきょうたわー", "トウキョウタワー"},
		{"東のそら", "ひがしのそら", "ヒガシノソラ"},
		{"ｶﾀｶﾅ", "かたかな", "カタカナ"},
	}
	for _, tt := range tests {
		got, err := d.TransliterateToHiragana(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.hiragana, got, tt.input)

		got, err = d.TransliterateToKatakana(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.katakana, got, tt.input)
	}
}

func TestTransliterateUnknownKanji(t *testing.T) {
	d := newNames(t)
	_, err := d.TransliterateToHiragana("相葉雅紀は山")
	assert.True(t, errors.Is(err, kana.ErrUnsupportedInput))
}

func TestConverterWithDictionary(t *testing.T) {
	c := kana.NewConverter(newNames(t))

	got, err := c.Convert("相葉雅紀", kana.Romaji, kana.Options{})
	require.NoError(t, err)
	assert.Equal(t, "aibamasaki", got)

	got, err = c.Convert("東京", kana.Katakana, kana.Options{})
	require.NoError(t, err)
	assert.Equal(t, "トウキョウ", got)
}
