package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/anki"
	"github.com/f3rmion/kana/internal/logger"
	"github.com/spf13/cobra"
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Work with Anki decks",
	Long:  `Commands for exporting kana flashcards to Anki .apkg files and reading them back.`,
}

var ankiExportCmd = &cobra.Command{
	Use:   "export <out.apkg> [groups...]",
	Short: "Export kana as an Anki deck",
	Long: `Write an Anki .apkg deck with one note per syllable. Each note has
Kana, Katakana and Romaji fields and yields a hiragana and a katakana card.
Notes are tagged with their group and column.

Examples:
  kana anki export kana.apkg
  kana anki export dakuon.apkg dakuon --name "Kana::Dakuon"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnkiExport,
}

var ankiInspectCmd = &cobra.Command{
	Use:   "inspect <file.apkg>",
	Short: "Inspect an Anki deck",
	Long: `Inspect an Anki .apkg file to see its structure:
  - Decks
  - Note types (models) and their fields
  - Sample notes

Example:
  kana anki inspect kana.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiInspect,
}

func init() {
	rootCmd.AddCommand(ankiCmd)
	ankiCmd.AddCommand(ankiExportCmd)
	ankiCmd.AddCommand(ankiInspectCmd)

	ankiExportCmd.Flags().String("name", "Kana", "deck name")
	ankiInspectCmd.Flags().IntP("sample", "n", 5, "number of notes to show")
}

func runAnkiExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	columns, err := columnsArg(args[1:], "all")
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")

	deck := newKanaDeck(name, columns)
	if err := deck.Save(path); err != nil {
		return err
	}
	logger.Debug("deck written", "path", path, "notes", deck.Len())

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d notes to %s\n", deck.Len(), path)
	return nil
}

// newKanaDeck builds a deck holding every distinct syllable of columns,
// tagged with its group and column name.
func newKanaDeck(name string, columns []kana.Column) *anki.Deck {
	groupOf := make(map[kana.Column]string)
	for group, cols := range kana.Groups() {
		for _, c := range cols {
			groupOf[c] = group
		}
	}

	deck := anki.NewDeck(name)
	for _, c := range columns {
		for _, m := range kana.GetTable([]kana.Column{c}).Distinct() {
			// Distinct only yields valid Mora.
			_ = deck.AddMora(m, groupOf[c], c.String())
		}
	}
	return deck
}

func runAnkiInspect(cmd *cobra.Command, args []string) error {
	pkg, err := anki.OpenPackage(args[0])
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	out := cmd.OutOrStdout()
	fmt.Fprint(out, pkg.Summary())

	sample, _ := cmd.Flags().GetInt("sample")
	if sample <= 0 || len(pkg.Notes) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nSample notes:")
	for _, note := range pkg.Notes[:min(sample, len(pkg.Notes))] {
		var fields []string
		for _, name := range pkg.GetFieldNames(note) {
			fields = append(fields, fmt.Sprintf("%s=%s", name, pkg.GetFieldValue(note, name)))
		}
		fmt.Fprintf(out, "  %s\n", strings.Join(fields, "  "))
	}
	return nil
}
