package kana

import "fmt"

// Mora is one syllable in all three scripts. The zero value is the invalid
// Mora. Mora values are comparable and can be used as map keys; every invalid
// Mora equals every other.
type Mora struct {
	romaji   string
	hiragana string
	katakana string
}

// FromRomaji builds a Mora from its romaji spelling. Spellings missing from
// the charts give the invalid Mora.
func FromRomaji(romaji string) Mora {
	hiragana, ok := ToHiragana(romaji, Romaji)
	if !ok {
		return Mora{}
	}
	katakana, ok := ToKatakana(romaji, Romaji)
	if !ok {
		return Mora{}
	}
	return Mora{romaji: romaji, hiragana: hiragana, katakana: katakana}
}

// FromHiragana builds a Mora from a hiragana syllable.
func FromHiragana(hiragana string) Mora {
	romaji, _ := ToRomaji(hiragana, Hiragana)
	return FromRomaji(romaji)
}

// FromKatakana builds a Mora from a katakana syllable.
func FromKatakana(katakana string) Mora {
	romaji, _ := ToRomaji(katakana, Katakana)
	return FromRomaji(romaji)
}

// From builds a Mora from a syllable written in the given script.
func From(text string, s Script) Mora {
	switch s {
	case Hiragana:
		return FromHiragana(text)
	case Katakana:
		return FromKatakana(text)
	default:
		return FromRomaji(text)
	}
}

// Romaji returns the romaji spelling, or "" for an invalid Mora.
func (m Mora) Romaji() string { return m.romaji }

// Hiragana returns the hiragana spelling, or "" for an invalid Mora.
func (m Mora) Hiragana() string { return m.hiragana }

// Katakana returns the katakana spelling, or "" for an invalid Mora.
func (m Mora) Katakana() string { return m.katakana }

// In returns the spelling in the given script.
func (m Mora) In(s Script) string {
	switch s {
	case Hiragana:
		return m.hiragana
	case Katakana:
		return m.katakana
	default:
		return m.romaji
	}
}

// IsValid reports whether all three spellings are present.
func (m Mora) IsValid() bool {
	return m.romaji != "" && m.hiragana != "" && m.katakana != ""
}

// IsInvalid is the negation of IsValid.
func (m Mora) IsInvalid() bool {
	return !m.IsValid()
}

func (m Mora) String() string {
	if m.IsInvalid() {
		return "<invalid>"
	}
	return fmt.Sprintf("%s/%s/%s", m.hiragana, m.katakana, m.romaji)
}
