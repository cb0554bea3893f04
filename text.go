package kana

import (
	"strings"
	"unicode/utf8"
)

// Options controls text conversion to romaji.
type Options struct {
	// UseProlongedSoundMark writes long vowels with a macron ("obāsan")
	// instead of doubling them ("obaasan").
	UseProlongedSoundMark bool `yaml:"prolonged_sound_mark"`
	// UppercaseRomaji writes syllables taken from katakana in upper case.
	UppercaseRomaji bool `yaml:"uppercase_romaji"`
}

// Converter converts whole strings between scripts.
type Converter struct {
	segmenter Segmenter
}

// NewConverter returns a Converter that resolves readings with seg. A nil
// seg selects KanaSegmenter.
func NewConverter(seg Segmenter) *Converter {
	if seg == nil {
		seg = KanaSegmenter{}
	}
	return &Converter{segmenter: seg}
}

var defaultConverter = NewConverter(nil)

// Convert converts text with the default KanaSegmenter.
func Convert(text string, to Script, opts Options) (string, error) {
	return defaultConverter.Convert(text, to, opts)
}

// Convert rewrites text in the target script. Kana and kanji are resolved
// through the segmenter; for romaji, sokuon doubles the next consonant, small
// kana pair with the preceding kana and ー lengthens the preceding vowel.
// Glyphs without a romaji form pass through unchanged.
func (c *Converter) Convert(text string, to Script, opts Options) (string, error) {
	trimmed := strings.TrimSpace(text)

	switch to {
	case Hiragana:
		return c.segmenter.TransliterateToHiragana(trimmed)
	case Katakana:
		return c.segmenter.TransliterateToKatakana(trimmed)
	}

	stream := trimmed
	if !opts.UseProlongedSoundMark && !opts.UppercaseRomaji {
		var err error
		stream, err = c.segmenter.TransliterateToHiragana(trimmed)
		if err != nil {
			return "", err
		}
	}
	return romanize([]rune(stream), opts), nil
}

func isSokuon(r rune) bool {
	return r == 'っ' || r == 'ッ'
}

func isCombiner(r rune) bool {
	switch r {
	case 'ゃ', 'ゅ', 'ょ', 'ぁ', 'ぃ', 'ぅ', 'ぇ', 'ぉ',
		'ャ', 'ュ', 'ョ', 'ァ', 'ィ', 'ゥ', 'ェ', 'ォ':
		return true
	}
	return false
}

var macrons = map[rune]rune{
	'a': 'ā', 'i': 'ī', 'u': 'ū', 'e': 'ē', 'o': 'ō',
	'A': 'Ā', 'I': 'Ī', 'U': 'Ū', 'E': 'Ē', 'O': 'Ō',
}

// Vowel kana that merge into a macron after the listed romaji vowel. The
// おう and えい pairs follow the usual long vowel spelling.
var longVowels = map[rune]string{
	'あ': "a",
	'い': "ie",
	'う': "uo",
	'え': "e",
	'お': "o",
}

// romanizer accumulates romaji output for a single pass over a kana stream.
type romanizer struct {
	out      []rune
	geminate bool
}

func (z *romanizer) last() (rune, bool) {
	if len(z.out) == 0 {
		return 0, false
	}
	return z.out[len(z.out)-1], true
}

// lengthen replaces the trailing vowel with its macron form. Other trailing
// characters are left as they are.
func (z *romanizer) lengthen() {
	if m, ok := macrons[z.out[len(z.out)-1]]; ok {
		z.out[len(z.out)-1] = m
	}
}

func (z *romanizer) emit(romaji string) {
	if z.geminate {
		first, _ := utf8.DecodeRuneInString(romaji)
		z.out = append(z.out, first)
		z.geminate = false
	}
	z.out = append(z.out, []rune(romaji)...)
}

func romanize(text []rune, opts Options) string {
	z := &romanizer{}

	for i := 0; i < len(text); i++ {
		r := text[i]

		if isSokuon(r) {
			z.geminate = true
			continue
		}
		if isCombiner(r) {
			continue
		}

		if opts.UseProlongedSoundMark {
			last, ok := z.last()
			if r == 'ー' && ok {
				z.lengthen()
				continue
			}
			if follows, isVowel := longVowels[r]; isVowel && ok && strings.ContainsRune(follows, last) {
				z.lengthen()
				continue
			}
		} else if r == 'ー' {
			if last, ok := z.last(); ok {
				z.out = append(z.out, last)
				continue
			}
		}

		unit := string(r)
		if i+1 < len(text) && isCombiner(text[i+1]) {
			unit += string(text[i+1])
			i++
		}
		z.emit(romajiOf(unit, opts))
	}

	return string(z.out)
}

// romajiOf resolves a unit against the hiragana chart, then the katakana
// chart. Unresolved units come back unchanged.
func romajiOf(unit string, opts Options) string {
	if r, ok := ToRomaji(unit, Hiragana); ok {
		return r
	}
	if r, ok := ToRomaji(unit, Katakana); ok {
		if opts.UppercaseRomaji {
			return strings.ToUpper(r)
		}
		return r
	}
	return unit
}
