package models

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() *Project {
	frames := []*Frame{frameWithPixel(0, 0), frameWithPixel(47, 11)}
	return &Project{
		Version:      ProjectVersion,
		Tab:          TabText,
		CurrentFrame: 1,
		Image: ImageSection{
			Frames: EncodeFrames(frames),
			Effect: "SCROLL_LEFT",
			Speed:  250,
		},
		Text: TextSection{
			Content:  "HELLO\nWORLD",
			Effect:   "NONE",
			Speed:    1000,
			TwoLines: true,
		},
	}
}

func TestProjectRoundTrip(t *testing.T) {
	original := sampleProject()

	var buf bytes.Buffer
	require.NoError(t, original.Save(&buf))

	loaded, err := LoadProject(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestProjectSaveIsIndentedJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleProject().Save(&buf))
	assert.Contains(t, buf.String(), "\n  \"version\"")
}

func TestLoadProjectClampsOutOfRangeValues(t *testing.T) {
	p := sampleProject()
	p.CurrentFrame = 42
	p.Tab = 9
	p.Image.Speed = 99999
	p.Text.Speed = -3

	var buf bytes.Buffer
	require.NoError(t, p.Save(&buf))

	loaded, err := LoadProject(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.CurrentFrame)
	assert.Equal(t, TabImage, loaded.Tab)
	assert.Equal(t, MaxSpeed, loaded.Image.Speed)
	assert.Equal(t, MinSpeed, loaded.Text.Speed)
}

func TestLoadProjectRejectsBadFrames(t *testing.T) {
	var verr *ValidationError

	_, err := LoadProject(strings.NewReader(`{"version":1,"image":{"frames":[]}}`))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "frames", verr.Field)

	_, err = LoadProject(strings.NewReader(`{"version":1,"image":{"frames":[["10"]]}}`))
	require.ErrorAs(t, err, &verr)
}

func TestLoadProjectRejectsInvalidJSON(t *testing.T) {
	_, err := LoadProject(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode project")
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, MinSpeed, ClampSpeed(0))
	assert.Equal(t, 500, ClampSpeed(500))
	assert.Equal(t, MaxSpeed, ClampSpeed(MaxSpeed+1))
}

func TestDecodeFramesRoundTrip(t *testing.T) {
	frames := []*Frame{frameWithPixel(3, 3), NewFrame()}
	decoded, err := DecodeFrames(EncodeFrames(frames))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.True(t, decoded[0].Equal(frames[0]))
	assert.True(t, decoded[1].Equal(frames[1]))
}
