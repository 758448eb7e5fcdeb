package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/swiper/pkg/swiper"
)

var (
	windowIndex  int
	windowLength int
	windowWidth  float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the slot window for an index",
	Long: `Show which items the swiper builds for an index, their physical slots,
and the resting and maximum strip offsets.

Example:
  swiper window --index 0 --length 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if windowLength < 0 {
			return fmt.Errorf("--length must not be negative")
		}
		if windowLength > 0 && (windowIndex < 0 || windowIndex >= windowLength) {
			return fmt.Errorf("--index %d out of range [0, %d]", windowIndex, windowLength-1)
		}

		width := windowWidth
		if width <= 0 {
			cfg, err := projectConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			width = cfg.Width
		}

		out := cmd.OutOrStdout()
		widths := []int{10, 7, 10}
		fmt.Fprintln(out, row(widths, headerStyle, "position", "index", "offset"))
		for _, slot := range swiper.Window(windowIndex, windowLength) {
			style := mutedStyle
			if slot.Index == windowIndex {
				style = passStyle
			}
			fmt.Fprintln(out, row(widths, style,
				fmt.Sprint(slot.Position),
				fmt.Sprint(slot.Index),
				fmt.Sprint(float64(slot.Position)*width),
			))
		}
		fmt.Fprintf(out, "\nresting offset %v, max offset %v\n",
			swiper.InitialOffset(windowIndex, width),
			swiper.MaxOffset(windowIndex, windowLength, width))
		return nil
	},
}

func init() {
	windowCmd.Flags().IntVar(&windowIndex, "index", 0, "current index")
	windowCmd.Flags().IntVar(&windowLength, "length", 0, "sequence length")
	windowCmd.Flags().Float64Var(&windowWidth, "width", 0, "page width (default from swiper.yaml)")
	windowCmd.MarkFlagRequired("length")
	RootCmd.AddCommand(windowCmd)
}
