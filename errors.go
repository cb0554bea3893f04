package kana

import "errors"

var (
	// ErrUnsupportedInput is returned by a Segmenter that cannot resolve part
	// of its input, such as kanji without a reading source.
	ErrUnsupportedInput = errors.New("kana: unsupported input")

	// ErrSamplerExhausted is returned when a table does not hold enough valid
	// Mora to satisfy a sampling request.
	ErrSamplerExhausted = errors.New("kana: not enough valid mora in table")

	// ErrInvalidCount is returned for a negative sample count.
	ErrInvalidCount = errors.New("kana: invalid sample count")

	// ErrUnknownScript is returned by ParseScript.
	ErrUnknownScript = errors.New("kana: unknown script")

	// ErrUnknownColumn is returned by ParseColumns.
	ErrUnknownColumn = errors.New("kana: unknown column")
)
