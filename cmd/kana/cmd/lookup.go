package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/kana"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <glyph>...",
	Short: "Show a syllable in all three scripts",
	Long: `Look up single syllables written in hiragana, katakana or romaji and
print their hiragana, katakana and romaji spellings.

Example:
  kana lookup か シャ ryu
  kana lookup ファ`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		glyph := strings.TrimSpace(arg)
		script := detectScript(glyph)

		if m := kana.From(glyph, script); m.IsValid() {
			fmt.Fprintf(out, "%s\t%s\t%s\n", m.Hiragana(), m.Katakana(), m.Romaji())
			continue
		}
		// Digraphs like ファ have a romaji reading but no chart cell.
		if romaji, ok := kana.ToRomaji(glyph, script); ok {
			fmt.Fprintf(out, "%s\t%s\t(not in chart)\n", glyph, romaji)
			continue
		}
		fmt.Fprintf(out, "%s\tnot found\n", glyph)
	}
	return nil
}

// detectScript guesses the script of a single syllable.
func detectScript(s string) kana.Script {
	switch {
	case s == "":
		return kana.Romaji
	case strings.IndexFunc(s, func(r rune) bool { return !kana.IsHiragana(r) }) < 0:
		return kana.Hiragana
	case strings.IndexFunc(s, func(r rune) bool { return !kana.IsKatakana(r) }) < 0:
		return kana.Katakana
	}
	return kana.Romaji
}
