package models

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	ProjectVersion = 1

	MinSpeed = 1
	MaxSpeed = 3500
)

// Editor tab indexes stored in the project file.
const (
	TabImage = 0
	TabText  = 1
)

// ValidationError reports a structurally invalid project document.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project %s: %s", e.Field, e.Reason)
}

// Project is the persistent form of an editing session. The JSON layout is
// the application's own schema: frame grids as '0'/'1' row strings plus the
// per-tab animation options.
type Project struct {
	Version      int          `json:"version"`
	Tab          int          `json:"tab"`
	CurrentFrame int          `json:"current_frame"`
	Image        ImageSection `json:"image"`
	Text         TextSection  `json:"text"`
}

type ImageSection struct {
	Frames [][]string `json:"frames"`
	Effect string     `json:"effect"`
	Speed  int        `json:"speed"`
}

type TextSection struct {
	Content  string `json:"content"`
	Effect   string `json:"effect"`
	Speed    int    `json:"speed"`
	TwoLines bool   `json:"two_lines"`
}

// EncodeFrames renders a frame list into the row-string form stored in the
// project file.
func EncodeFrames(frames []*Frame) [][]string {
	encoded := make([][]string, len(frames))
	for i, f := range frames {
		encoded[i] = f.Rows()
	}
	return encoded
}

// DecodeFrames parses row-string frames, validating grid dimensions. At
// least one frame is required.
func DecodeFrames(data [][]string) ([]*Frame, error) {
	if len(data) == 0 {
		return nil, &ValidationError{Field: "frames", Reason: "no frame data"}
	}
	frames := make([]*Frame, len(data))
	for i, rows := range data {
		f, err := FrameFromRows(rows)
		if err != nil {
			return nil, err
		}
		frames[i] = f
	}
	return frames, nil
}

// ClampSpeed forces a speed value into the device range.
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Save writes the project as indented JSON.
func (p *Project) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// LoadProject reads and validates a project document. Frames are checked for
// grid-dimension consistency; current frame and speeds are clamped into
// range rather than rejected.
func LoadProject(r io.Reader) (*Project, error) {
	var p Project
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}

	frames, err := DecodeFrames(p.Image.Frames)
	if err != nil {
		return nil, err
	}

	if p.CurrentFrame < 0 {
		p.CurrentFrame = 0
	}
	if p.CurrentFrame >= len(frames) {
		p.CurrentFrame = len(frames) - 1
	}
	if p.Tab != TabImage && p.Tab != TabText {
		p.Tab = TabImage
	}
	p.Image.Speed = ClampSpeed(p.Image.Speed)
	p.Text.Speed = ClampSpeed(p.Text.Speed)

	return &p, nil
}
