package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rgb-slicer/internal/config"
	"rgb-slicer/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	configPath string
	appLogger  logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rgb-slicer [image]",
	Short: "Explore the color distribution of an image through RGB cube slices",
	Long: `rgb-slicer counts every color of an image and shows the RGB cube as 256
planar slices along one axis. Brightness in a slice is how often that color
occurs, saturating at the chosen threshold.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE:              runView,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
}

func setup(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		cfg.Log.JSON = true
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	appLogger = logger.New(level, cfg.Log.JSON)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
