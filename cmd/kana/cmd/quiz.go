package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/anki"
	"github.com/f3rmion/kana/internal/tui"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [groups...]",
	Short: "Practice reading kana",
	Long: `Start an interactive quiz. Each question shows a syllable in the
prompt script; type it in the answer script and press enter.

Examples:
  kana quiz
  kana quiz dakuon -n 10 --prompt katakana
  kana quiz --answer hiragana --prompt romaji
  kana quiz --deck kana.apkg`,
	RunE: runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)
	for _, c := range []*cobra.Command{rootCmd, quizCmd} {
		c.Flags().IntP("count", "n", 0, "number of questions (default from config)")
		c.Flags().Bool("uniq", false, "never repeat a syllable (default from config)")
		c.Flags().String("prompt", "", "script questions are shown in")
		c.Flags().String("answer", "", "script answers are typed in")
		c.Flags().String("deck", "", "draw questions from the notes of an Anki deck")
	}
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := tui.QuizOptions{
		Count:  cfg.Quiz.Count,
		Unique: cfg.Quiz.Unique,
	}
	if opts.Columns, err = columnsArg(args, cfg.Quiz.Columns); err != nil {
		return err
	}
	if cmd.Flags().Changed("count") {
		opts.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("uniq") {
		opts.Unique, _ = cmd.Flags().GetBool("uniq")
	}
	if opts.Prompt, err = scriptFlag(cmd, "prompt", cfg.Quiz.PromptScript); err != nil {
		return err
	}
	if opts.Answer, err = scriptFlag(cmd, "answer", cfg.Quiz.AnswerScript); err != nil {
		return err
	}

	if deckPath, _ := cmd.Flags().GetString("deck"); deckPath != "" {
		pkg, err := anki.OpenPackage(deckPath)
		if err != nil {
			return fmt.Errorf("opening deck: %w", err)
		}
		opts.Pool = pkg.Moras()
		pkg.Close()
		if len(opts.Pool) == 0 {
			return fmt.Errorf("%s: %w", deckPath, kana.ErrSamplerExhausted)
		}
	}

	model, err := tui.NewQuiz(opts)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	if q, ok := final.(tui.QuizModel); ok && q.Done() {
		fmt.Fprintf(cmd.OutOrStdout(), "Score: %d/%d\n", q.Score(), q.Total())
	}
	return nil
}
