// Package cmd contains all CLI commands for the kana tool.
package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/config"
	"github.com/f3rmion/kana/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kana",
	Short: "Convert and practice hiragana, katakana and romaji",
	Long: `kana converts text between hiragana, katakana and Hepburn romaji and
drills the kana charts.

  kana convert ひらがな           → hiragana
  kana convert --to katakana ひらがな
  kana table seion --script katakana
  kana random dakuon -n 5 --uniq

Running 'kana' without arguments starts a quiz.`,
	SilenceUsage: true,
	RunE:         runQuiz,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/kana/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
}

// initConfig wires environment variables and persistent flags into viper.
func initConfig() {
	viper.SetEnvPrefix("KANA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	logger.Init(viper.GetBool("verbose"))
}

// configPath returns the config file in use.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies KANA_* environment overrides,
// e.g. KANA_CONVERT_TARGET=katakana or KANA_QUIZ_COUNT=10.
func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("locating config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path)

	scripts := map[string]*kana.Script{
		"convert.target":     &cfg.Convert.Target,
		"quiz.prompt_script": &cfg.Quiz.PromptScript,
		"quiz.answer_script": &cfg.Quiz.AnswerScript,
	}
	for key, dst := range scripts {
		if !viper.IsSet(key) {
			continue
		}
		if *dst, err = kana.ParseScript(viper.GetString(key)); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	bools := map[string]*bool{
		"convert.prolonged_sound_mark": &cfg.Convert.UseProlongedSoundMark,
		"convert.uppercase_romaji":     &cfg.Convert.UppercaseRomaji,
		"quiz.unique":                  &cfg.Quiz.Unique,
	}
	for key, dst := range bools {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}

	if viper.IsSet("quiz.columns") {
		cfg.Quiz.Columns = viper.GetString("quiz.columns")
	}
	if viper.IsSet("quiz.count") {
		cfg.Quiz.Count = viper.GetInt("quiz.count")
	}
	if viper.IsSet("dictionary.path") {
		cfg.Dictionary.Path = viper.GetString("dictionary.path")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if viper.IsSet("llm.cache_ttl") {
		cfg.LLM.CacheTTL = viper.GetDuration("llm.cache_ttl")
	}
	if viper.IsSet("llm.timeout") {
		cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// scriptFlag returns the script named by flag name when it was set on the
// command line, and fallback otherwise.
func scriptFlag(cmd *cobra.Command, name string, fallback kana.Script) (kana.Script, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, _ := cmd.Flags().GetString(name)
	s, err := kana.ParseScript(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return s, nil
}

// columnsArg parses group and column names given as arguments, falling back
// to names when there are none.
func columnsArg(args []string, names string) ([]kana.Column, error) {
	if len(args) > 0 {
		names = strings.Join(args, ",")
	}
	return kana.ParseColumns(names)
}
