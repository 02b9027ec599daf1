package bluetooth

import (
	"context"
	"fmt"
	"math"

	"github.com/ordigital/spotled-gui/internal/fonts"
	"github.com/ordigital/spotled-gui/internal/logger"
	"github.com/ordigital/spotled-gui/internal/models"
	"github.com/ordigital/spotled-gui/internal/spotled"
)

// Sender builds device payloads and pushes them over an open connection.
type Sender struct {
	conn *Connection
	log  logger.Logger
}

func NewSender(conn *Connection, log logger.Logger) *Sender {
	return &Sender{conn: conn, log: log}
}

// SendAnimation uploads a frame sequence. Each frame is a slice of bitmap
// rows; speed is the per-frame time in milliseconds.
func (s *Sender) SendAnimation(ctx context.Context, frames [][]string, width, height, speed int, effect spotled.Effect) error {
	anim := spotled.AnimationData{
		Speed:  clampUint16(speed),
		Effect: effect,
	}
	for i, rows := range frames {
		frame, err := spotled.NewFrameData(width, height, rows)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
		anim.Frames = append(anim.Frames, frame)
	}
	payload, err := anim.Serialize()
	if err != nil {
		return err
	}
	s.log.Info("Bluetooth", "sending animation", map[string]interface{}{
		"frames": len(frames),
		"speed":  speed,
		"effect": effect.String(),
	})
	return s.conn.Send(ctx, &spotled.Command{ID: spotled.CmdSendData, Payload: payload})
}

// SendText uploads text for the device to render. A non-nil font is uploaded
// first so the display renders with its glyphs instead of the builtin set.
// Newlines in text split it into display lines.
func (s *Sender) SendText(ctx context.Context, text string, speed int, effect spotled.Effect, font *fonts.Font) error {
	if font != nil {
		if err := s.uploadFont(ctx, text, font); err != nil {
			return err
		}
	}
	data := spotled.TextData{Text: text, Speed: textSpeedByte(speed), Effect: effect}
	payload, err := data.Serialize()
	if err != nil {
		return err
	}
	s.log.Info("Bluetooth", "sending text", map[string]interface{}{
		"length": len([]rune(text)),
		"speed":  speed,
		"effect": effect.String(),
		"font":   fontName(font),
	})
	return s.conn.Send(ctx, &spotled.Command{ID: spotled.CmdSendData, Payload: payload})
}

// uploadFont sends glyph bitmaps for every distinct character of text.
func (s *Sender) uploadFont(ctx context.Context, text string, font *fonts.Font) error {
	seen := make(map[rune]bool)
	var data spotled.FontData
	for _, ch := range text {
		if ch == '\n' || seen[ch] {
			continue
		}
		seen[ch] = true
		rows := font.Glyph(ch)
		glyph, err := spotled.NewFontCharacter(font.Width, font.Height, ch, rows)
		if err != nil {
			return fmt.Errorf("glyph %q: %w", ch, err)
		}
		data.Chars = append(data.Chars, glyph)
	}
	payload, err := data.Serialize()
	if err != nil {
		return err
	}
	s.log.Debug("Bluetooth", "uploading font", map[string]interface{}{
		"font":   font.Name,
		"glyphs": len(data.Chars),
	})
	return s.conn.Send(ctx, &spotled.Command{ID: spotled.CmdSendData, Payload: payload})
}

func fontName(font *fonts.Font) string {
	if font == nil {
		return "builtin"
	}
	return font.Name
}

func clampUint16(v int) uint16 {
	if v < 1 {
		return 1
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

// textSpeedByte maps the millisecond speed range proportionally onto the
// single byte the text payload carries.
func textSpeedByte(speed int) uint8 {
	if speed < models.MinSpeed {
		speed = models.MinSpeed
	}
	if speed > models.MaxSpeed {
		speed = models.MaxSpeed
	}
	ratio := float64(speed-models.MinSpeed) / float64(models.MaxSpeed-models.MinSpeed)
	return uint8(math.Round(ratio * 255))
}
