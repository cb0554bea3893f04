// Package kana transliterates between hiragana, katakana and romaji.
//
// Conversion works at two levels. The mora level maps one syllable (one kana,
// or a kana followed by a small combining kana) between scripts using the
// syllable charts:
//
//	r, ok := kana.ToRomaji("ファ", kana.Katakana) // "fa", true
//	h, ok := kana.ToHiragana("kyo", kana.Romaji) // "きょ", true
//
// The text level walks a whole string and applies sokuon gemination, long
// vowel marks and youon pairing:
//
//	s, err := kana.Convert("おばあさん", kana.Romaji, kana.Options{UseProlongedSoundMark: true}) // "obāsan"
//
// Text that may contain kanji needs a Segmenter able to resolve readings. The
// default KanaSegmenter only understands kana and Latin input and reports
// ErrUnsupportedInput for anything else.
//
// Tables project the charts onto a set of columns, and the sampler draws
// random valid Mora from them, for drills and flashcards.
package kana
