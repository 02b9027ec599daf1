// Package spotled builds the byte payloads a SpotLED BLE matrix display
// consumes: still frames, animations, text and font uploads, framed into the
// short write chunks the device's GATT characteristic accepts.
package spotled

import "fmt"

// Effect selects the hardware-side transition applied when content is shown.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectScrollUp
	EffectScrollDown
	EffectScrollLeft
	EffectScrollRight
	EffectStack
	EffectExpand
	EffectLaser
)

var effectNames = [...]string{
	"NONE",
	"SCROLL_UP",
	"SCROLL_DOWN",
	"SCROLL_LEFT",
	"SCROLL_RIGHT",
	"STACK",
	"EXPAND",
	"LASER",
}

// EffectNames lists every effect in wire order, for populating selectors.
func EffectNames() []string {
	names := make([]string, len(effectNames))
	copy(names, effectNames[:])
	return names
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("Effect(%d)", uint8(e))
}

// ParseEffect maps an effect name to its wire value. Unknown names fall back
// to EffectNone so stale project files still load.
func ParseEffect(name string) Effect {
	for i, n := range effectNames {
		if n == name {
			return Effect(i)
		}
	}
	return EffectNone
}
