package cmd

import (
	"fmt"

	"github.com/f3rmion/kana"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random [groups...]",
	Short: "Draw random kana",
	Long: `Draw random syllables from chart columns. Without --script each
syllable is printed as hiragana/katakana/romaji.

Examples:
  kana random
  kana random dakuon -n 5 --uniq
  kana random ka sa -n 3 --script katakana`,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().IntP("count", "n", 1, "number of syllables to draw")
	randomCmd.Flags().Bool("uniq", false, "draw without repeats")
	randomCmd.Flags().StringP("script", "s", "", "print only this script")
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	columns, err := columnsArg(args, cfg.Quiz.Columns)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	uniq, _ := cmd.Flags().GetBool("uniq")
	moras, err := kana.RandomNFromColumns(columns, count, uniq)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !cmd.Flags().Changed("script") {
		for _, m := range moras {
			fmt.Fprintln(out, m)
		}
		return nil
	}

	script, err := scriptFlag(cmd, "script", kana.Romaji)
	if err != nil {
		return err
	}
	for _, m := range moras {
		fmt.Fprintln(out, m.In(script))
	}
	return nil
}
