package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ordigital/spotled-gui/internal/models"
	"github.com/ordigital/spotled-gui/internal/spotled"
)

// EffectRow pairs an effect selector with a speed slider. Both the image and
// text tabs carry one.
type EffectRow struct {
	container    *fyne.Container
	effectSelect *widget.Select
	speedSlider  *widget.Slider
	speedLabel   *widget.Label
}

func NewEffectRow(onChange func()) *EffectRow {
	er := &EffectRow{}

	er.effectSelect = widget.NewSelect(spotled.EffectNames(), func(string) {
		if onChange != nil {
			onChange()
		}
	})
	er.effectSelect.SetSelected(spotled.EffectNone.String())

	er.speedLabel = widget.NewLabel("500 ms")
	er.speedSlider = widget.NewSlider(models.MinSpeed, models.MaxSpeed)
	er.speedSlider.Step = 1
	er.speedSlider.SetValue(500)
	er.speedSlider.OnChanged = func(v float64) {
		er.speedLabel.SetText(fmt.Sprintf("%d ms", int(v)))
		if onChange != nil {
			onChange()
		}
	}

	er.container = container.NewBorder(
		nil, nil,
		container.NewHBox(widget.NewLabel("Effect:"), er.effectSelect, widget.NewLabel("Speed:")),
		er.speedLabel,
		er.speedSlider,
	)
	return er
}

func (er *EffectRow) GetContainer() *fyne.Container {
	return er.container
}

func (er *EffectRow) Effect() spotled.Effect {
	return spotled.ParseEffect(er.effectSelect.Selected)
}

func (er *EffectRow) SetEffect(effect spotled.Effect) {
	er.effectSelect.SetSelected(effect.String())
}

func (er *EffectRow) Speed() int {
	return models.ClampSpeed(int(er.speedSlider.Value))
}

func (er *EffectRow) SetSpeed(speed int) {
	speed = models.ClampSpeed(speed)
	er.speedSlider.SetValue(float64(speed))
	er.speedLabel.SetText(fmt.Sprintf("%d ms", speed))
}

func (er *EffectRow) SetLocked(locked bool) {
	if locked {
		er.effectSelect.Disable()
		er.speedSlider.Disable()
	} else {
		er.effectSelect.Enable()
		er.speedSlider.Enable()
	}
}
