// Package llm resolves kanji readings with a completion model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/prompt"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/width"
)

// ErrInvalidReading is returned when the model answers with something that
// is not a kana reading of the input.
var ErrInvalidReading = errors.New("llm: invalid reading")

// Completer sends a single-turn request to a completion model.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config tunes a Segmenter. Zero values select the defaults.
type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

const (
	defaultCacheTTL = 24 * time.Hour
	defaultTimeout  = 30 * time.Second
)

// Segmenter is a kana.Segmenter that asks a model for readings of text
// containing kanji. Text without kanji never leaves the process.
type Segmenter struct {
	completer Completer
	prompts   *prompt.Generator
	readings  *cache.Cache
	inflight  singleflight.Group
	timeout   time.Duration
}

var _ kana.Segmenter = (*Segmenter)(nil)

// NewSegmenter wraps completer.
func NewSegmenter(completer Completer, cfg Config) *Segmenter {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Segmenter{
		completer: completer,
		prompts:   prompt.NewGenerator(),
		readings:  cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		timeout:   cfg.Timeout,
	}
}

// TransliterateToHiragana implements kana.Segmenter.
func (s *Segmenter) TransliterateToHiragana(text string) (string, error) {
	return s.Reading(context.Background(), text)
}

// TransliterateToKatakana implements kana.Segmenter.
func (s *Segmenter) TransliterateToKatakana(text string) (string, error) {
	reading, err := s.Reading(context.Background(), text)
	if err != nil {
		return "", err
	}
	return strings.Map(kana.HiraganaToKatakana, reading), nil
}

// Reading returns the hiragana reading of text.
func (s *Segmenter) Reading(ctx context.Context, text string) (string, error) {
	folded := width.Fold.String(strings.TrimSpace(text))
	if !strings.ContainsFunc(folded, isHan) {
		return kana.KanaSegmenter{}.TransliterateToHiragana(folded)
	}

	if cached, ok := s.readings.Get(folded); ok {
		slog.Debug("reading cache hit", "text", folded)
		return cached.(string), nil
	}

	v, err, _ := s.inflight.Do(folded, func() (any, error) {
		if cached, ok := s.readings.Get(folded); ok {
			return cached, nil
		}
		reading, err := s.request(ctx, folded)
		if err != nil {
			return nil, err
		}
		s.readings.SetDefault(folded, reading)
		return reading, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Segmenter) request(ctx context.Context, text string) (string, error) {
	req, err := s.prompts.Generate(text)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	answer, err := s.completer.Complete(ctx, prompt.System, req)
	if err != nil {
		return "", fmt.Errorf("requesting reading for %q: %w", text, err)
	}
	slog.Debug("reading requested", "text", text, "took", time.Since(start))

	return validate(text, clean(answer))
}

// clean strips code fences and whitespace from a model answer and folds
// katakana to hiragana.
func clean(answer string) string {
	answer = StripMarkdownCodeBlocks(answer)
	answer = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return kana.KatakanaToHiragana(r)
	}, width.Fold.String(answer))
	return answer
}

// validate accepts a reading made of hiragana, prolonged sound marks and
// non-kanji characters that also occur in text.
func validate(text, reading string) (string, error) {
	if reading == "" {
		return "", fmt.Errorf("%w: empty answer for %q", ErrInvalidReading, text)
	}
	for _, r := range reading {
		switch {
		case kana.IsHiragana(r), r == 'ー':
		case !isHan(r) && strings.ContainsRune(text, r):
		default:
			return "", fmt.Errorf("%w: %q in answer %q for %q", ErrInvalidReading, r, reading, text)
		}
	}
	return reading, nil
}

// StripMarkdownCodeBlocks removes a surrounding ``` fence, if any.
func StripMarkdownCodeBlocks(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
