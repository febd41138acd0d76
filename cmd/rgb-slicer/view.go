package main

import (
	"rgb-slicer/internal/app"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [image]",
	Short: "Open the slice viewer, optionally loading an image",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	var initialPath string
	if len(args) == 1 {
		initialPath = args[0]
	}

	application, err := app.NewApplication(cfg, configPath, appLogger)
	if err != nil {
		return err
	}
	return application.Run(initialPath)
}
