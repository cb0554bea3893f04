package cmd

import (
	"fmt"

	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/tui"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [groups...]",
	Short: "Print kana chart columns",
	Long: `Print chart columns as an aligned table. Groups are seion, dakuon,
yoon or all; single columns are named by their first syllable (ka, sha, ...).

Examples:
  kana table
  kana table seion --script katakana
  kana table ka sa ta --script romaji`,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringP("script", "s", "hiragana", "script to print: hiragana, katakana or romaji")
}

func runTable(cmd *cobra.Command, args []string) error {
	columns, err := columnsArg(args, "all")
	if err != nil {
		return err
	}
	script, err := scriptFlag(cmd, "script", kana.Hiragana)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.FormatTable(kana.GetTable(columns), script))
	return nil
}
