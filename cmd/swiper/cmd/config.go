package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved project configuration",
	Long: `Print the configuration resolved from go.mod and the optional swiper.yaml
in the module root.

swiper.yaml:
  swiper:
    width: 375        # default page width for scenarios
    duration_ms: 250  # settle animation length
  scenarios:
    dir: scenarios    # replayed when no arguments are given`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := projectConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
