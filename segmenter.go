package kana

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Segmenter turns free text into a kana stream. Implementations resolve
// readings for whatever they understand (kanji, words) and report
// ErrUnsupportedInput for the rest.
type Segmenter interface {
	TransliterateToHiragana(text string) (string, error)
	TransliterateToKatakana(text string) (string, error)
}

const kanaOffset = 'ア' - 'あ'

// KanaSegmenter is the default Segmenter. It treats its input as already
// written in kana: full-width and half-width forms are folded, whitespace
// between words is dropped, kana are switched to the requested script and
// Latin letters, digits and punctuation pass through. Han characters are
// reported as ErrUnsupportedInput.
type KanaSegmenter struct{}

// TransliterateToHiragana implements Segmenter.
func (KanaSegmenter) TransliterateToHiragana(text string) (string, error) {
	return foldKana(text, KatakanaToHiragana)
}

// TransliterateToKatakana implements Segmenter.
func (KanaSegmenter) TransliterateToKatakana(text string) (string, error) {
	return foldKana(text, HiraganaToKatakana)
}

func foldKana(text string, convert func(rune) rune) (string, error) {
	var b strings.Builder
	for _, r := range width.Fold.String(text) {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.Is(unicode.Han, r):
			return "", fmt.Errorf("%w: no reading for %q", ErrUnsupportedInput, r)
		}
		b.WriteRune(convert(r))
	}
	return b.String(), nil
}

// KatakanaToHiragana maps a katakana rune to hiragana. Other runes, and
// katakana without a hiragana form (ー, ヷ), are returned unchanged.
func KatakanaToHiragana(r rune) rune {
	if (r >= 'ァ' && r <= 'ヶ') || r == 'ヽ' || r == 'ヾ' {
		return r - kanaOffset
	}
	return r
}

// HiraganaToKatakana maps a hiragana rune to katakana. Other runes are
// returned unchanged.
func HiraganaToKatakana(r rune) rune {
	if (r >= 'ぁ' && r <= 'ゖ') || r == 'ゝ' || r == 'ゞ' {
		return r + kanaOffset
	}
	return r
}

// IsHiragana reports whether r is a hiragana letter.
func IsHiragana(r rune) bool {
	return r >= 'ぁ' && r <= 'ゖ'
}

// IsKatakana reports whether r is a katakana letter or the prolonged sound
// mark.
func IsKatakana(r rune) bool {
	return (r >= 'ァ' && r <= 'ヺ') || r == 'ー'
}
