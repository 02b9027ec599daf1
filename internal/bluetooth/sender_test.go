package bluetooth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordigital/spotled-gui/internal/models"
)

func TestTextSpeedByteScalesProportionally(t *testing.T) {
	assert.Equal(t, uint8(0), textSpeedByte(models.MinSpeed))
	assert.Equal(t, uint8(255), textSpeedByte(models.MaxSpeed))

	// 500 ms sits at (500-1)/(3500-1) of the range.
	assert.Equal(t, uint8(36), textSpeedByte(500))

	// Distinct slider positions above 255 ms still map to distinct bytes.
	assert.NotEqual(t, textSpeedByte(1000), textSpeedByte(2000))
}

func TestTextSpeedByteClampsOutOfRange(t *testing.T) {
	assert.Equal(t, uint8(0), textSpeedByte(0))
	assert.Equal(t, uint8(0), textSpeedByte(-5))
	assert.Equal(t, uint8(255), textSpeedByte(9000))
}
