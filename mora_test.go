package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRomaji(t *testing.T) {
	m := FromRomaji("a")
	assert.Equal(t, "あ", m.Hiragana())
	assert.Equal(t, "ア", m.Katakana())
	assert.Equal(t, "a", m.Romaji())
	assert.True(t, m.IsValid())

	for _, in := range []string{"", " ", "world", "fa"} {
		assert.True(t, FromRomaji(in).IsInvalid(), "FromRomaji(%q)", in)
	}
}

func TestFromHiragana(t *testing.T) {
	m := FromHiragana("む")
	assert.Equal(t, "ム", m.Katakana())
	assert.Equal(t, "mu", m.Romaji())

	for _, in := range []string{"", " ", "world"} {
		assert.True(t, FromHiragana(in).IsInvalid(), "FromHiragana(%q)", in)
	}
}

func TestFromKatakana(t *testing.T) {
	m := FromKatakana("カ")
	assert.Equal(t, "か", m.Hiragana())
	assert.Equal(t, "ka", m.Romaji())

	for _, in := range []string{"", " ", "world"} {
		assert.True(t, FromKatakana(in).IsInvalid(), "FromKatakana(%q)", in)
	}
}

// A composed digraph has a romaji form but no chart cell, so the Mora built
// from it is invalid rather than partially filled.
func TestFromKatakanaComposedDigraph(t *testing.T) {
	m := FromKatakana("ファ")
	assert.True(t, m.IsInvalid())
	assert.Empty(t, m.Romaji())
	assert.Empty(t, m.Hiragana())
	assert.Empty(t, m.Katakana())
}

func TestMoraEquality(t *testing.T) {
	assert.Equal(t, FromRomaji("kya"), FromHiragana("きゃ"))
	assert.Equal(t, FromHiragana("きゃ"), FromKatakana("キャ"))
	assert.NotEqual(t, FromRomaji("ka"), FromRomaji("ga"))

	// every invalid Mora is the same value
	assert.Equal(t, FromRomaji("world"), FromKatakana("x"))
	assert.Equal(t, Mora{}, FromRomaji(""))

	set := map[Mora]int{}
	set[FromRomaji("ji")]++
	set[FromHiragana("じ")]++
	set[FromHiragana("ぢ")]++
	assert.Len(t, set, 1)
}

func TestMoraIn(t *testing.T) {
	m := From("しょ", Hiragana)
	assert.Equal(t, "しょ", m.In(Hiragana))
	assert.Equal(t, "ショ", m.In(Katakana))
	assert.Equal(t, "sho", m.In(Romaji))
	assert.Equal(t, "しょ/ショ/sho", m.String())
	assert.Equal(t, "<invalid>", Mora{}.String())
}
