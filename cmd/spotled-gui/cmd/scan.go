package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ordigital/spotled-gui/internal/bluetooth"
)

var scanTimeout time.Duration

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for SpotLED displays",
	Long: `Scan runs one Bluetooth discovery window and lists every SpotLED
display in range with its MAC address.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 8*time.Second, "scan timeout")
}

func runScan(cmd *cobra.Command, args []string) error {
	conn, err := bluetooth.SystemBus()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), scanTimeout)
	defer cancel()

	devices, err := bluetooth.NewScanner(conn, newLogger()).Scan(ctx)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("no displays found")
		return nil
	}
	for _, d := range devices {
		fmt.Printf("%s  %s\n", d.Address, d.Name)
	}
	return nil
}
