// Package cmd implements the swiper CLI commands.
//
// The root command dispatches to replay, window and config.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/swiper/cmd/swiper/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "swiper",
	Short: "Replay swipe sequences against the swiper pager",
	Long: `swiper drives the three-slot pager used by the drift Swiper widget
without a device. Scenario files script advance, retreat, scroll, settle and
recenter steps and check the resulting index and offset.

Use "swiper <command> --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd.ErrOrStderr(), verbose)
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.Version = Version + " (built " + BuildTime + ")"
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "log every replayed step")
}

// projectConfig resolves swiper.yaml from the enclosing Go module. Outside a
// module it falls back to defaults rooted at the working directory.
func projectConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		Logger.Debug("no project root, using defaults", "err", err)
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return &config.Resolved{
			Root:        wd,
			Width:       config.DefaultWidth,
			ScenarioDir: wd,
		}, nil
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}
	Logger.Debug("resolved config", "root", cfg.Root, "module", cfg.ModulePath, "width", cfg.Width)
	return cfg, nil
}
