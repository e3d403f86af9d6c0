package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings file that would be used, after the search order:
--config path, ~/.blocks/configs/blocks.yaml, ./configs/blocks.yaml, then the
built-in default.

Examples:
  blocks config
  blocks config --defaults > ~/.blocks/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(loaded.Config)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", loaded.Source)
	_, err = out.Write(data)
	return err
}
