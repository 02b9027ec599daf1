package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FrameBar navigates the frame sequence and drives playback. The slider
// jumps directly to a frame; prev/next step by one.
type FrameBar struct {
	container   *fyne.Container
	frameLabel  *widget.Label
	frameSlider *widget.Slider
	playButton  *widget.Button
	navButtons  []*widget.Button

	updating bool
}

func NewFrameBar(onSelectFrame func(index int), onPrevious, onNext, onAdd, onRemove, onPlayToggle func()) *FrameBar {
	fb := &FrameBar{
		frameLabel: widget.NewLabel("Frame 1/1"),
	}

	fb.frameSlider = widget.NewSlider(0, 0)
	fb.frameSlider.Step = 1
	fb.frameSlider.OnChanged = func(v float64) {
		if !fb.updating {
			onSelectFrame(int(v))
		}
	}

	prevButton := widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), onPrevious)
	nextButton := widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), onNext)
	addButton := widget.NewButtonWithIcon("", theme.ContentAddIcon(), onAdd)
	removeButton := widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), onRemove)
	fb.playButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), onPlayToggle)
	fb.navButtons = []*widget.Button{prevButton, nextButton, addButton, removeButton}

	controls := container.NewHBox(
		prevButton,
		fb.frameLabel,
		nextButton,
		widget.NewSeparator(),
		addButton,
		removeButton,
		widget.NewSeparator(),
		fb.playButton,
	)
	fb.container = container.NewBorder(nil, nil, controls, nil, fb.frameSlider)
	return fb
}

func (fb *FrameBar) GetContainer() *fyne.Container {
	return fb.container
}

// SetFrame syncs the counter and slider to the document without re-firing
// the selection callback.
func (fb *FrameBar) SetFrame(current, total int) {
	fb.frameLabel.SetText(fmt.Sprintf("Frame %d/%d", current+1, total))
	fb.updating = true
	fb.frameSlider.Max = float64(total - 1)
	fb.frameSlider.SetValue(float64(current))
	fb.updating = false
}

// SetPlaying flips the play button icon. Locking the navigation while the
// animation runs goes through SetLocked.
func (fb *FrameBar) SetPlaying(playing bool) {
	if playing {
		fb.playButton.SetIcon(theme.MediaStopIcon())
	} else {
		fb.playButton.SetIcon(theme.MediaPlayIcon())
	}
}

// SetLocked disables navigation and the slider; the play button stays live
// so a running preview can be stopped.
func (fb *FrameBar) SetLocked(locked bool) {
	for _, b := range fb.navButtons {
		setEnabled(b, !locked)
	}
	if locked {
		fb.frameSlider.Disable()
	} else {
		fb.frameSlider.Enable()
	}
}
