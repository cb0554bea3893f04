package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/f3rmion/kana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	answers map[string]string
	calls   atomic.Int32
	delay   time.Duration
	err     error
}

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	for text, answer := range f.answers {
		if len(prompt) >= len(text) && prompt[len(prompt)-len(text):] == text {
			return answer, nil
		}
	}
	return "", errors.New("unexpected prompt")
}

func TestReading(t *testing.T) {
	fake := &fakeCompleter{answers: map[string]string{
		"相葉雅紀":    "あいばまさき",
		"東京タワー":   "```\nトウキョウ タワー\n```",
		"Tokyo東京": "Tokyoとうきょう",
	}}
	s := NewSegmenter(fake, Config{})

	tests := []struct {
		input string
		want  string
	}{
		{"相葉雅紀", "あいばまさき"},
		{"東京タワー", "とうきょうたわー"},
		{"Tokyo東京", "Tokyoとうきょう"},
	}
	for _, tt := range tests {
		got, err := s.Reading(context.Background(), tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	got, err := s.TransliterateToKatakana("相葉雅紀")
	require.NoError(t, err)
	assert.Equal(t, "アイバマサキ", got)
	assert.EqualValues(t, 3, fake.calls.Load())
}

func TestKanaOnlyStaysLocal(t *testing.T) {
	fake := &fakeCompleter{}
	s := NewSegmenter(fake, Config{})

	got, err := s.TransliterateToHiragana("ひら カタ")
	require.NoError(t, err)
	assert.Equal(t, "ひらかた", got)
	assert.Zero(t, fake.calls.Load())
}

func TestReadingIsCached(t *testing.T) {
	fake := &fakeCompleter{
		answers: map[string]string{"雪": "ゆき"},
		delay:   10 * time.Millisecond,
	}
	s := NewSegmenter(fake, Config{})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.TransliterateToHiragana("雪")
			assert.NoError(t, err)
			assert.Equal(t, "ゆき", got)
		}()
	}
	wg.Wait()

	_, err := s.TransliterateToHiragana(" 雪 ")
	require.NoError(t, err)
	assert.EqualValues(t, 1, fake.calls.Load())
}

func TestInvalidReading(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"empty", "  "},
		{"kanji left", "ゆき山"},
		{"romaji", "yuki"},
		{"chatter", "The reading is ゆき"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegmenter(&fakeCompleter{answers: map[string]string{"雪": tt.answer}}, Config{})
			_, err := s.TransliterateToHiragana("雪")
			assert.ErrorIs(t, err, ErrInvalidReading)
		})
	}
}

func TestCompleterFailure(t *testing.T) {
	boom := errors.New("boom")
	s := NewSegmenter(&fakeCompleter{err: boom}, Config{})
	_, err := s.TransliterateToHiragana("雪")
	assert.ErrorIs(t, err, boom)
}

func TestTimeout(t *testing.T) {
	fake := &fakeCompleter{answers: map[string]string{"雪": "ゆき"}, delay: time.Second}
	s := NewSegmenter(fake, Config{Timeout: 5 * time.Millisecond})
	_, err := s.TransliterateToHiragana("雪")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConverterWithSegmenter(t *testing.T) {
	fake := &fakeCompleter{answers: map[string]string{"相葉雅紀": "あいばまさき"}}
	c := kana.NewConverter(NewSegmenter(fake, Config{}))

	got, err := c.Convert("相葉雅紀", kana.Romaji, kana.Options{})
	require.NoError(t, err)
	assert.Equal(t, "aibamasaki", got)
}

func TestStripMarkdownCodeBlocks(t *testing.T) {
	assert.Equal(t, "ゆき", StripMarkdownCodeBlocks("```text\nゆき\n```"))
	assert.Equal(t, "ゆき", StripMarkdownCodeBlocks("  ゆき\n"))
}

func TestNewAnthropicCompleterNeedsKey(t *testing.T) {
	_, err := NewAnthropicCompleter("", "")
	assert.Error(t, err)

	c, err := NewAnthropicCompleter("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.model)
}
