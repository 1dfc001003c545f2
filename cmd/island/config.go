package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-bounce/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that play and simulate would use, as YAML.

Lookup order:
  1. --config path
  2. ~/.island/configs/island.yaml
  3. ./configs/island.yaml
  4. Built-in defaults

With --defaults, prints the built-in defaults file instead, ready to copy
into ~/.island/configs/island.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead of the effective config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig(consoleLogger())
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
