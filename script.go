package kana

import (
	"fmt"
	"strings"
)

// Script is one of the three writing systems handled by the package.
type Script int

const (
	Hiragana Script = iota
	Katakana
	Romaji
)

// Scripts lists every script in declaration order.
var Scripts = [...]Script{Hiragana, Katakana, Romaji}

func (s Script) String() string {
	switch s {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Romaji:
		return "romaji"
	default:
		return fmt.Sprintf("Script(%d)", int(s))
	}
}

// ParseScript parses a script name. Matching is case-insensitive and accepts
// the first letter as a shorthand.
func ParseScript(name string) (Script, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hiragana", "h":
		return Hiragana, nil
	case "katakana", "k":
		return Katakana, nil
	case "romaji", "r", "latin":
		return Romaji, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScript, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Script) UnmarshalText(text []byte) error {
	parsed, err := ParseScript(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
