package spotled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDataSerialize(t *testing.T) {
	frame, err := NewFrameData(8, 2, []string{"11111111", "00000001"})
	require.NoError(t, err)

	data := frame.Serialize()
	assert.Equal(t, []byte{0x00, 0x08, 0x00, 0x02, 0xFF, 0x01}, data)
}

func TestNewFrameDataPadsBitmap(t *testing.T) {
	// 48x12 needs 72 bytes even when rows are short of a byte boundary.
	rows := make([]string, 12)
	for i := range rows {
		rows[i] = "000000000000000000000000000000000000000000000000"
	}
	frame, err := NewFrameData(48, 12, rows)
	require.NoError(t, err)
	assert.Len(t, frame.Bitmap, 72)
}

func TestAnimationDataSerialize(t *testing.T) {
	frame, err := NewFrameData(8, 1, []string{"10000001"})
	require.NoError(t, err)

	anim := AnimationData{
		Frames:   []FrameData{frame, frame},
		Speed:    500,
		StayTime: 0,
		Effect:   EffectScrollLeft,
	}
	data, err := anim.Serialize()
	require.NoError(t, err)

	assert.Equal(t, byte(2), data[0], "frame count")
	assert.Equal(t, []byte{0x01, 0xF4}, data[1:3], "speed big endian")
	assert.Equal(t, []byte{0x00, 0x00}, data[3:5], "stay time")
	assert.Equal(t, byte(EffectScrollLeft), data[5])
	assert.Equal(t, frame.Serialize(), data[6:6+len(frame.Serialize())])
	assert.Len(t, data, 6+2*len(frame.Serialize()))
}

func TestAnimationDataSerializeErrors(t *testing.T) {
	_, err := AnimationData{}.Serialize()
	require.Error(t, err)

	frame, _ := NewFrameData(8, 1, []string{"00000000"})
	frames := make([]FrameData, 256)
	for i := range frames {
		frames[i] = frame
	}
	_, err = AnimationData{Frames: frames}.Serialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "255")
}

func TestTextDataSerialize(t *testing.T) {
	data, err := TextData{Text: "AB", Speed: 3, Effect: EffectStack}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		byte(EffectStack), 3,
		0x00, 0x02, // unit count
		0x00, 'A',
		0x00, 'B',
	}, data)
}

func TestTextDataSerializeUTF16(t *testing.T) {
	data, err := TextData{Text: "Ż", Speed: 1}.Serialize() // Ż
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x01, 0x01, 0x7b}, data)
}

func TestTextDataSerializeEmpty(t *testing.T) {
	_, err := TextData{}.Serialize()
	require.Error(t, err)
}

func TestFontDataSerialize(t *testing.T) {
	glyph, err := NewFontCharacter(4, 2, 'A', []string{"1111", "1001"})
	require.NoError(t, err)

	data, err := FontData{Chars: []FontCharacter{glyph}}.Serialize()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x01, // glyph count
		4, 2, // width, height
		0x00, 'A',
		0xF9, // packed bitmap
	}, data)
}

func TestFontDataSerializeErrors(t *testing.T) {
	_, err := FontData{}.Serialize()
	require.Error(t, err)

	glyph, _ := NewFontCharacter(4, 2, '\U0001F600', []string{"0000", "0000"})
	_, err = FontData{Chars: []FontCharacter{glyph}}.Serialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basic multilingual plane")
}
