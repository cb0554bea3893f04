package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/kana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Convert.Target = kana.Katakana
	cfg.Convert.UseProlongedSoundMark = true
	cfg.Quiz.Columns = "ka,sa"
	cfg.Quiz.AnswerScript = kana.Katakana
	cfg.LLM.Timeout = 5 * time.Second

	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "target: katakana")
	assert.Contains(t, string(data), "prolonged_sound_mark: true")
	assert.Contains(t, string(data), "timeout: 5s")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("quiz:\n  count: 5\n  columns: dakuon\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Quiz.Count)
	assert.Equal(t, "dakuon", cfg.Quiz.Columns)
	assert.Equal(t, kana.Romaji, cfg.Quiz.AnswerScript)
	assert.Equal(t, 24*time.Hour, cfg.LLM.CacheTTL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown column", "quiz:\n  columns: zz\n"},
		{"zero count", "quiz:\n  count: 0\n"},
		{"same scripts", "quiz:\n  prompt_script: romaji\n"},
		{"unknown script", "convert:\n  target: cyrillic\n"},
		{"malformed", "convert: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("HOME", "/tmp/kana-home")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/kana-home", ".config", "kana"), dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)
}
