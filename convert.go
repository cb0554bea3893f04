package kana

import (
	"strings"
	"unicode/utf8"
)

// Bases whose final vowel is dropped outright when a small vowel follows
// (ふ+ぁ is "fa", not "fwa").
var plainGlideBases = map[string]bool{
	"fu":  true,
	"vu":  true,
	"shi": true,
	"ji":  true,
	"chi": true,
	"tsu": true,
}

// ToRomaji converts one mora written in script from to romaji.
//
// Kana digraphs absent from the charts are composed from their base mora and
// a trailing small vowel: "ファ" is "fa", "くぃ" is "kwi", "いぇ" is "ye".
func ToRomaji(text string, from Script) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	if r, ok := lookup(text, from, Romaji); ok {
		return r, true
	}
	return composeRomaji(text, from)
}

// ToHiragana converts one mora written in script from to hiragana. Only
// syllables present in the charts convert.
func ToHiragana(text string, from Script) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return lookup(text, from, Hiragana)
}

// ToKatakana converts one mora written in script from to katakana. Only
// syllables present in the charts convert.
func ToKatakana(text string, from Script) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return lookup(text, from, Katakana)
}

// To converts one mora between any two scripts.
func To(text string, from, to Script) (string, bool) {
	switch to {
	case Hiragana:
		return ToHiragana(text, from)
	case Katakana:
		return ToKatakana(text, from)
	default:
		return ToRomaji(text, from)
	}
}

func lookup(text string, from, to Script) (string, bool) {
	row, col, ok := Find(from, text)
	if !ok {
		return "", false
	}
	return Cell(to, row, col), true
}

// composeRomaji handles a base mora followed by a small vowel. The base must
// resolve directly from the chart; there is no further composition.
func composeRomaji(text string, from Script) (string, bool) {
	last, size := utf8.DecodeLastRuneInString(text)
	if last == utf8.RuneError {
		return "", false
	}
	vowel, ok := smallVowel(from, string(last))
	if !ok {
		return "", false
	}
	base, ok := lookup(text[:len(text)-size], from, Romaji)
	if !ok {
		return "", false
	}

	stem := base[:len(base)-1]
	switch {
	case plainGlideBases[base]:
		return stem + vowel, true
	case strings.HasSuffix(base, "u"):
		return stem + "w" + vowel, true
	case strings.HasSuffix(base, "i"):
		return stem + "y" + vowel, true
	}
	return base + vowel, true
}
