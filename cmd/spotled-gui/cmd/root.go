package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordigital/spotled-gui/internal/app"
	"github.com/ordigital/spotled-gui/internal/logger"
)

var (
	logLevel string
	device   string
	noScan   bool
)

var rootCmd = &cobra.Command{
	Use:   "spotled-gui",
	Short: "Frame animation editor for SpotLED Bluetooth displays",
	Long: `spotled-gui edits 48x12 pixel animations and text messages and sends
them to SpotLED LED displays over Bluetooth LE.

Run without arguments to open the editor. The scan and send subcommands
talk to displays without the GUI.`,
	Version: app.AppVersion,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.NewApplication(newLogger(), app.Options{
			Device:        device,
			NoStartupScan: noScan,
		})
		application.Run()
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() logger.Logger {
	return logger.NewConsole(logLevel)
}

func init() {
	// Fyne fails to parse the locale when LANG is unset or C.
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&device, "device", "", "preselect a display MAC address")
	rootCmd.Flags().BoolVar(&noScan, "no-scan", false, "skip the automatic scan at startup")
}
