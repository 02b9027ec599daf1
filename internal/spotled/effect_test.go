package spotled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectRoundTrip(t *testing.T) {
	for _, name := range EffectNames() {
		assert.Equal(t, name, ParseEffect(name).String())
	}
}

func TestEffectWireValues(t *testing.T) {
	assert.Equal(t, Effect(0), EffectNone)
	assert.Equal(t, Effect(3), EffectScrollLeft)
	assert.Equal(t, Effect(7), EffectLaser)
}

func TestParseEffectUnknown(t *testing.T) {
	assert.Equal(t, EffectNone, ParseEffect("SPARKLE"))
	assert.Equal(t, EffectNone, ParseEffect(""))
}

func TestEffectStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Effect(42)", Effect(42).String())
}
