package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	toolLabelDraw = "Draw"
	toolLabelMove = "Move"
)

// EditToolbar holds the tool selector and the frame editing operations above
// the grid.
type EditToolbar struct {
	container  *fyne.Container
	toolRadio  *widget.RadioGroup
	undoButton *widget.Button
	redoButton *widget.Button
	buttons    []*widget.Button

	onUndo   func()
	onRedo   func()
	onClear  func()
	onInvert func()
	onMirrorH func()
	onMirrorV func()
	onCopyPrevious func()
	onShift  func(dx, dy int)
	onImport func()
}

func NewEditToolbar(
	onToolChange func(moveTool bool),
	onUndo, onRedo func(),
	onClear, onInvert, onMirrorH, onMirrorV, onCopyPrevious func(),
	onShift func(dx, dy int),
	onImport func()) *EditToolbar {

	tb := &EditToolbar{
		onUndo:         onUndo,
		onRedo:         onRedo,
		onClear:        onClear,
		onInvert:       onInvert,
		onMirrorH:      onMirrorH,
		onMirrorV:      onMirrorV,
		onCopyPrevious: onCopyPrevious,
		onShift:        onShift,
		onImport:       onImport,
	}

	tb.toolRadio = widget.NewRadioGroup([]string{toolLabelDraw, toolLabelMove}, func(selected string) {
		onToolChange(selected == toolLabelMove)
	})
	tb.toolRadio.Horizontal = true
	tb.toolRadio.Required = true
	// Assigned directly: SetSelected would fire the callback before the
	// handlers are wired up.
	tb.toolRadio.Selected = toolLabelDraw

	tb.undoButton = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), onUndo)
	tb.redoButton = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), onRedo)
	tb.undoButton.Disable()
	tb.redoButton.Disable()

	clearButton := widget.NewButton("Clear", onClear)
	invertButton := widget.NewButton("Invert", onInvert)
	mirrorHButton := widget.NewButton("Mirror H", onMirrorH)
	mirrorVButton := widget.NewButton("Mirror V", onMirrorV)
	copyButton := widget.NewButton("Copy prev", onCopyPrevious)

	leftButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { onShift(-1, 0) })
	rightButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { onShift(1, 0) })
	upButton := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { onShift(0, -1) })
	downButton := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { onShift(0, 1) })

	importButton := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), onImport)

	tb.buttons = []*widget.Button{
		clearButton, invertButton, mirrorHButton, mirrorVButton, copyButton,
		leftButton, rightButton, upButton, downButton, importButton,
	}

	tb.container = container.NewHBox(
		tb.toolRadio,
		widget.NewSeparator(),
		tb.undoButton, tb.redoButton,
		widget.NewSeparator(),
		clearButton, invertButton, mirrorHButton, mirrorVButton, copyButton,
		widget.NewSeparator(),
		leftButton, upButton, downButton, rightButton,
		widget.NewSeparator(),
		importButton,
	)
	return tb
}

func (tb *EditToolbar) GetContainer() *fyne.Container {
	return tb.container
}

// SetHistoryState enables the undo and redo buttons to match the history.
func (tb *EditToolbar) SetHistoryState(canUndo, canRedo bool) {
	setEnabled(tb.undoButton, canUndo)
	setEnabled(tb.redoButton, canRedo)
}

// SetLocked disables every editing control, used during playback. Undo and
// redo recover their history state on unlock via SetHistoryState.
func (tb *EditToolbar) SetLocked(locked bool) {
	for _, b := range tb.buttons {
		setEnabled(b, !locked)
	}
	if locked {
		tb.toolRadio.Disable()
		tb.undoButton.Disable()
		tb.redoButton.Disable()
	} else {
		tb.toolRadio.Enable()
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
