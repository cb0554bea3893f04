package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/clipboard"
	"github.com/f3rmion/kana/internal/config"
	"github.com/f3rmion/kana/internal/dictionary"
	"github.com/f3rmion/kana/internal/llm"
	"github.com/f3rmion/kana/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Convert text between hiragana, katakana and romaji",
	Long: `Convert text to the target script. With no arguments, every line of
standard input is converted and written in order.

Kanji need a reading source: --dict loads a JSONL word list
({"word": "相葉", "reading": "あいば"} per line) and --llm asks a model
(ANTHROPIC_API_KEY must be set). Both may be combined; the dictionary is
tried first.

Examples:
  kana convert きょうはいいてんきですね
  kana convert --to katakana ひらがな
  kana convert --prolonged --uppercase コーヒー
  kana convert --dict names.jsonl 相葉雅紀
  cat words.txt | kana convert --to hiragana`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("to", "t", "romaji", "target script: hiragana, katakana or romaji")
	convertCmd.Flags().BoolP("prolonged", "p", false, "write long vowels with macrons (ō) instead of doubling them")
	convertCmd.Flags().BoolP("uppercase", "u", false, "write romaji of katakana in upper case")
	convertCmd.Flags().String("dict", "", "JSONL reading dictionary for kanji")
	convertCmd.Flags().Bool("llm", false, "resolve kanji readings with a language model")
	convertCmd.Flags().Bool("copy", false, "copy the result to the clipboard")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	to, err := scriptFlag(cmd, "to", cfg.Convert.Target)
	if err != nil {
		return err
	}
	opts := cfg.Convert.Options
	if cmd.Flags().Changed("prolonged") {
		opts.UseProlongedSoundMark, _ = cmd.Flags().GetBool("prolonged")
	}
	if cmd.Flags().Changed("uppercase") {
		opts.UppercaseRomaji, _ = cmd.Flags().GetBool("uppercase")
	}

	seg, err := buildSegmenter(cmd, cfg)
	if err != nil {
		return err
	}
	conv := kana.NewConverter(seg)

	var lines []string
	if len(args) > 0 {
		out, err := conv.Convert(strings.Join(args, " "), to, opts)
		if err != nil {
			return err
		}
		lines = []string{out}
	} else {
		lines, err = convertLines(cmd.Context(), conv, cmd.InOrStdin(), to, opts)
		if err != nil {
			return err
		}
	}

	result := strings.Join(lines, "\n")
	fmt.Fprintln(cmd.OutOrStdout(), result)

	if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
		if err := clipboard.Write(result); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		logger.Info("copied to clipboard")
	}
	return nil
}

// convertLines converts every line of r concurrently, keeping input order.
func convertLines(ctx context.Context, conv *kana.Converter, r io.Reader, to kana.Script, opts kana.Options) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	outputs := make([]string, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, line := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := conv.Convert(line, to, opts)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// buildSegmenter assembles the reading sources requested by flags and config.
// It returns nil when only kana input is expected.
func buildSegmenter(cmd *cobra.Command, cfg *config.Config) (kana.Segmenter, error) {
	var chain fallbackSegmenter

	dictPath := cfg.Dictionary.Path
	if cmd.Flags().Changed("dict") {
		dictPath, _ = cmd.Flags().GetString("dict")
	}
	if dictPath != "" {
		dict := dictionary.New()
		if err := dict.LoadFromFile(dictPath); err != nil {
			return nil, err
		}
		logger.Debug("dictionary ready", "path", dictPath, "entries", dict.Size())
		chain = append(chain, dict)
	}

	if useLLM, _ := cmd.Flags().GetBool("llm"); useLLM {
		completer, err := llm.NewAnthropicCompleter(strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")), llm.Model(cfg.LLM.Model))
		if err != nil {
			return nil, err
		}
		chain = append(chain, llm.NewSegmenter(completer, llm.Config{
			CacheTTL: cfg.LLM.CacheTTL,
			Timeout:  cfg.LLM.Timeout,
		}))
	}

	switch len(chain) {
	case 0:
		return nil, nil
	case 1:
		return chain[0], nil
	}
	return chain, nil
}

// fallbackSegmenter tries each segmenter in turn, moving on when one reports
// kana.ErrUnsupportedInput.
type fallbackSegmenter []kana.Segmenter

func (f fallbackSegmenter) TransliterateToHiragana(text string) (string, error) {
	return f.try(func(s kana.Segmenter) (string, error) { return s.TransliterateToHiragana(text) })
}

func (f fallbackSegmenter) TransliterateToKatakana(text string) (string, error) {
	return f.try(func(s kana.Segmenter) (string, error) { return s.TransliterateToKatakana(text) })
}

func (f fallbackSegmenter) try(call func(kana.Segmenter) (string, error)) (string, error) {
	err := kana.ErrUnsupportedInput
	for _, s := range f {
		var out string
		out, err = call(s)
		if !errors.Is(err, kana.ErrUnsupportedInput) {
			return out, err
		}
	}
	return "", err
}
