package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that play and demo would use, as YAML.

The config is read from the first of:
  --config <path>
  ~/.slide2048/config.yaml
  ./` + config.LocalPath + `
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
