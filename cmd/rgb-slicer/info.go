package main

import (
	"fmt"

	"rgb-slicer/internal/debug/timing"
	"rgb-slicer/internal/pipeline"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print color statistics for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Int("top", 10, "Number of most frequent colors to list")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	top, _ := cmd.Flags().GetInt("top")

	coord := pipeline.NewCoordinator(appLogger, timing.NewTracker(appLogger), cfg.Render.Workers)
	defer coord.Cleanup()

	imageData, err := coord.LoadFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	summary, err := coord.Summary(top)
	if err != nil {
		return err
	}

	fmt.Printf("File:            %s\n", path)
	fmt.Printf("Dimensions:      %d x %d (%s)\n", imageData.Width, imageData.Height, imageData.Format)
	fmt.Printf("Pixels:          %d\n", summary.Pixels)
	fmt.Printf("Distinct colors: %d\n", summary.Distinct)
	fmt.Printf("Max count:       %d\n", summary.MaxCount)
	fmt.Printf("Mean count:      %.2f (stddev %.2f)\n", summary.MeanCount, summary.StdDevCount)
	fmt.Printf("Entropy:         %.3f bits\n", summary.EntropyBits)

	if len(summary.Top) > 0 {
		fmt.Println("Most frequent:")
	}
	for _, c := range summary.Top {
		r, g, b := c.RGB()
		hex := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
		fmt.Printf("  %s  %10d  %5.2f%%\n", hex, c.Count, 100*float64(c.Count)/float64(summary.Pixels))
	}

	return nil
}
