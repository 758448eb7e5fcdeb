package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/swiper/cmd/swiper/internal/scenario"
)

var (
	replayWidth    float64
	replayDuration time.Duration
)

var replayCmd = &cobra.Command{
	Use:   "replay [file|dir]...",
	Short: "Replay swipe scenarios",
	Long: `Replay swipe scenarios from YAML files.

Each argument is a scenario file or a directory of .yaml/.yml files. With no
arguments the scenarios directory from swiper.yaml is used (default
./scenarios in the module root).

Each animated scroll advances a simulated clock by the settle duration
(swiper.duration_ms, default 250ms); the elapsed column shows that clock.

A scenario sets width, length and the starting index, then lists steps:

  name: advance then retreat
  width: 375
  length: 10
  index: 3
  steps:
    - advance: {}
    - settle: {offset: 750, expect: {index: 4}}
    - recenter: {}
  expect:
    offset: 375

Exit codes:
  0: every expectation held
  1: a scenario failed or could not be loaded`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := projectConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if len(args) == 0 {
			args = []string{cfg.ScenarioDir}
		}
		paths, err := expandPaths(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no scenario files found in %v", args)
		}

		width := cfg.Width
		if replayWidth > 0 {
			width = replayWidth
		}
		runner := scenario.NewRunner(width, Logger)
		runner.Duration = cfg.Duration
		if replayDuration > 0 {
			runner.Duration = replayDuration
		}

		out := cmd.OutOrStdout()
		total, failed := 0, 0
		for _, path := range paths {
			scenarios, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}
			for _, s := range scenarios {
				total++
				result, err := runner.Run(s)
				if result == nil {
					return err
				}
				printResult(out, result)
				if err != nil {
					failed++
				}
			}
		}

		fmt.Fprintln(out)
		if failed > 0 {
			fmt.Fprintln(out, failStyle.Render(fmt.Sprintf("%d of %d scenarios failed", failed, total)))
			return fmt.Errorf("%d of %d scenarios failed", failed, total)
		}
		fmt.Fprintln(out, passStyle.Render(fmt.Sprintf("%d scenarios passed", total)))
		return nil
	},
}

func init() {
	replayCmd.Flags().Float64Var(&replayWidth, "width", 0, "page width for scenarios that do not set one (default from swiper.yaml)")
	replayCmd.Flags().DurationVar(&replayDuration, "duration", 0, "settle animation length (default from swiper.yaml)")
	RootCmd.AddCommand(replayCmd)
}

// expandPaths replaces directories with the scenario files they contain.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("scenario path %s does not exist", arg)
			}
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := scenario.Glob(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

var stepWidths = []int{6, 10, 10, 7, 9, 11, 9}

func printResult(w io.Writer, result *scenario.Result) {
	status := passStyle.Render("PASS")
	if !result.Passed() {
		status = failStyle.Render("FAIL")
	}
	fmt.Fprintf(w, "%s %s %s\n", status, result.Scenario.Name,
		mutedStyle.Render(fmt.Sprintf("(%s, width %v, length %d, %v)", result.Scenario.Source, result.Width, result.Scenario.Length, result.Elapsed)))

	if len(result.Steps) > 0 {
		fmt.Fprintln(w, row(stepWidths, headerStyle, "step", "action", "accepted", "index", "offset", "scrolling", "elapsed"))
	}
	for _, step := range result.Steps {
		style := plainStyle
		if !step.Accepted {
			style = rejectedStyle
		}
		if step.Err != nil {
			style = failStyle
		}
		fmt.Fprintln(w, row(stepWidths, style,
			strconv.Itoa(step.Step),
			string(step.Kind),
			strconv.FormatBool(step.Accepted),
			strconv.Itoa(step.Index),
			strconv.FormatFloat(step.Offset, 'f', -1, 64),
			strconv.FormatBool(step.Scrolling),
			step.Elapsed.String(),
		))
	}
	if result.Err != nil {
		fmt.Fprintln(w, failStyle.Render("  "+result.Err.Error()))
	}
}
