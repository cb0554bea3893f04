package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/kana/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kana configuration",
	Long: `Write a default configuration file to your config directory
($HOME/.config/kana/config.yaml unless --config is given).

Edit it to change the default conversion target, quiz columns and scripts,
the reading dictionary and the language model settings.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("locating config: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}
	if cfgFile == "" {
		_, err = config.EnsureConfigDir()
	} else {
		err = os.MkdirAll(filepath.Dir(path), 0755)
	}
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to pick your quiz columns and scripts")
	fmt.Fprintln(out, "  2. Run 'kana table' to see the chart")
	fmt.Fprintln(out, "  3. Run 'kana' to start a quiz")
	return nil
}
