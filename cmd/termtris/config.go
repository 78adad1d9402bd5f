package main

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/termtris/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default YAML configuration.

With --resolved, prints the configuration termtris would actually use after
searching --config, ~/.termtris/configs/tetris.yaml and ./configs/tetris.yaml
and applying --difficulty.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	return writeConfig(cmd.OutOrStdout(), flagResolved)
}

// writeConfig prints the embedded defaults, or the effective configuration
// when resolved is set.
func writeConfig(w io.Writer, resolved bool) error {
	if !resolved {
		_, err := w.Write(config.DefaultTetrisYAML())
		return err
	}

	preset, err := difficultyPreset()
	if err != nil {
		return err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
