package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ordigital/spotled-gui/internal/app"
	"github.com/ordigital/spotled-gui/internal/bluetooth"
	"github.com/ordigital/spotled-gui/internal/fonts"
	"github.com/ordigital/spotled-gui/internal/logger"
	"github.com/ordigital/spotled-gui/internal/models"
	"github.com/ordigital/spotled-gui/internal/spotled"
)

var (
	sendDevice  string
	sendText    string
	sendProject string
	sendSpeed   int
	sendEffect  string
	sendFont    string
	sendTimeout time.Duration
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a project or a text message to a display",
	Long: `Send pushes content to a SpotLED display without opening the editor.
Use --project to send the animation stored in a project file, or --text
for a text message.

Examples:
  spotled-gui send --device AA:BB:CC:DD:EE:FF --project animation.json
  spotled-gui send --device AA:BB:CC:DD:EE:FF --text "HELLO" --effect SCROLL_LEFT`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVar(&sendDevice, "device", "", "display MAC address (required)")
	sendCmd.Flags().StringVar(&sendText, "text", "", "text message to send")
	sendCmd.Flags().StringVar(&sendProject, "project", "", "project file to send")
	sendCmd.Flags().IntVar(&sendSpeed, "speed", 500, "animation speed in milliseconds")
	sendCmd.Flags().StringVar(&sendEffect, "effect", spotled.EffectNone.String(), "display effect")
	sendCmd.Flags().StringVar(&sendFont, "font", "", "font id from the fonts directory (text only)")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 20*time.Second, "connect and send timeout")
	sendCmd.MarkFlagRequired("device")
}

func runSend(cmd *cobra.Command, args []string) error {
	if (sendText == "") == (sendProject == "") {
		return fmt.Errorf("exactly one of --text and --project is required")
	}

	log := newLogger()
	conn, err := bluetooth.SystemBus()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), sendTimeout)
	defer cancel()

	link, err := bluetooth.Dial(ctx, conn, sendDevice, log)
	if err != nil {
		return err
	}
	defer link.Close()
	sender := bluetooth.NewSender(link, log)

	if sendProject != "" {
		return sendProjectFile(ctx, sender, sendProject, log)
	}

	var font *fonts.Font
	if sendFont != "" {
		font = fonts.LoadDir(app.FontsDir, log).Get(sendFont)
		if font == nil {
			return fmt.Errorf("font %q not found in %s/", sendFont, app.FontsDir)
		}
	}
	return sender.SendText(ctx, sendText, sendSpeed, spotled.ParseEffect(sendEffect), font)
}

func sendProjectFile(ctx context.Context, sender *bluetooth.Sender, path string, log logger.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open project: %w", err)
	}
	defer f.Close()

	project, err := models.LoadProject(f)
	if err != nil {
		return err
	}

	speed := project.Image.Speed
	effect := spotled.ParseEffect(project.Image.Effect)
	if sendCmdFlagChanged("speed") {
		speed = sendSpeed
	}
	if sendCmdFlagChanged("effect") {
		effect = spotled.ParseEffect(sendEffect)
	}
	log.Info("Send", "sending project", map[string]interface{}{
		"path":   path,
		"frames": len(project.Image.Frames),
	})
	return sender.SendAnimation(ctx, project.Image.Frames, models.GridWidth, models.GridHeight, speed, effect)
}

func sendCmdFlagChanged(name string) bool {
	return sendCmd.Flags().Changed(name)
}
