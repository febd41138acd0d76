package main

import (
	"fmt"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/debug/timing"
	"rgb-slicer/internal/pipeline"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render slices of an image and write them as image files",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("input", "i", "", "Input image file")
	exportCmd.Flags().StringP("output", "o", ".", "Output directory")
	exportCmd.Flags().String("axis", "", "Fixed axis (red, green, blue); default from config")
	exportCmd.Flags().Int("threshold", 0, "Saturation threshold (1-8192); default from config")
	exportCmd.Flags().IntSlice("values", nil, "Fixed-axis values to export (default all 256)")
	exportCmd.Flags().String("format", "png", "Output format (png, jpeg)")
	exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputDir, _ := cmd.Flags().GetString("output")
	axisStr, _ := cmd.Flags().GetString("axis")
	threshold, _ := cmd.Flags().GetInt("threshold")
	values, _ := cmd.Flags().GetIntSlice("values")
	format, _ := cmd.Flags().GetString("format")

	axis := cfg.Render.Axis
	if axisStr != "" {
		parsed, err := colorcube.ParseAxis(axisStr)
		if err != nil {
			return err
		}
		axis = parsed
	}
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.Render.Threshold
	}

	coord := pipeline.NewCoordinator(appLogger, timing.NewTracker(appLogger), cfg.Render.Workers)
	defer coord.Cleanup()

	if _, err := coord.LoadFile(cmd.Context(), inputPath); err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}

	set, err := coord.Regenerate(cmd.Context(), axis, threshold)
	if err != nil {
		return fmt.Errorf("generating slices: %w", err)
	}

	written, err := coord.SaveSlices(outputDir, values, format)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d %s slices (threshold %d) to %s\n", len(written), set.Axis, set.Threshold, outputDir)
	return nil
}
