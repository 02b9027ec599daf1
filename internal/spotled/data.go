package spotled

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// FrameData is one display frame: a packed bitmap with its dimensions.
type FrameData struct {
	Width  uint16
	Height uint16
	Bitmap []byte
}

// NewFrameData packs bitmap rows for a width x height frame.
func NewFrameData(width, height int, rows []string) (FrameData, error) {
	minLen := (width*height + 7) / 8
	bitmap, err := PackRows(rows, minLen)
	if err != nil {
		return FrameData{}, err
	}
	return FrameData{Width: uint16(width), Height: uint16(height), Bitmap: bitmap}, nil
}

func (f FrameData) Serialize() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, f.Width)
	binary.Write(buf, binary.BigEndian, f.Height)
	buf.Write(f.Bitmap)
	return buf.Bytes()
}

// AnimationData is an ordered frame sequence with its playback options.
// Speed is the per-frame time in milliseconds, StayTime the hold after the
// last frame.
type AnimationData struct {
	Frames   []FrameData
	Speed    uint16
	StayTime uint16
	Effect   Effect
}

func (a AnimationData) Serialize() ([]byte, error) {
	if len(a.Frames) == 0 {
		return nil, fmt.Errorf("animation has no frames")
	}
	if len(a.Frames) > 255 {
		return nil, fmt.Errorf("animation has %d frames, device limit is 255", len(a.Frames))
	}
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(len(a.Frames)))
	binary.Write(buf, binary.BigEndian, a.Speed)
	binary.Write(buf, binary.BigEndian, a.StayTime)
	buf.WriteByte(byte(a.Effect))
	for _, frame := range a.Frames {
		buf.Write(frame.Serialize())
	}
	return buf.Bytes(), nil
}

// TextData asks the device to render text with glyphs it already has, either
// builtin or previously uploaded as FontData. The text travels as UTF-16
// code units, the encoding the firmware's glyph table is keyed by.
type TextData struct {
	Text   string
	Speed  uint8
	Effect Effect
}

func (t TextData) Serialize() ([]byte, error) {
	if t.Text == "" {
		return nil, fmt.Errorf("text is empty")
	}
	units := utf16.Encode([]rune(t.Text))
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(t.Effect))
	buf.WriteByte(t.Speed)
	binary.Write(buf, binary.BigEndian, uint16(len(units)))
	for _, u := range units {
		binary.Write(buf, binary.BigEndian, u)
	}
	return buf.Bytes(), nil
}

// FontCharacter is one uploaded glyph bitmap.
type FontCharacter struct {
	Width  uint8
	Height uint8
	Char   rune
	Bitmap []byte
}

// NewFontCharacter packs glyph rows for a single character.
func NewFontCharacter(width, height int, char rune, rows []string) (FontCharacter, error) {
	minLen := (width*height + 7) / 8
	bitmap, err := PackRows(rows, minLen)
	if err != nil {
		return FontCharacter{}, err
	}
	return FontCharacter{Width: uint8(width), Height: uint8(height), Char: char, Bitmap: bitmap}, nil
}

// FontData is a custom glyph table upload. It must precede a TextData that
// references its characters.
type FontData struct {
	Chars []FontCharacter
}

func (f FontData) Serialize() ([]byte, error) {
	if len(f.Chars) == 0 {
		return nil, fmt.Errorf("font has no characters")
	}
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, uint16(len(f.Chars)))
	for _, ch := range f.Chars {
		units := utf16.Encode([]rune{ch.Char})
		if len(units) != 1 {
			return nil, fmt.Errorf("character %q is outside the basic multilingual plane", ch.Char)
		}
		buf.WriteByte(ch.Width)
		buf.WriteByte(ch.Height)
		binary.Write(buf, binary.BigEndian, units[0])
		buf.Write(ch.Bitmap)
	}
	return buf.Bytes(), nil
}
