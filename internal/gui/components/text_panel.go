package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ordigital/spotled-gui/internal/fonts"
)

const builtinFontLabel = "Built-in font"

// FontOption is one entry of the font selector.
type FontOption struct {
	ID   string
	Name string
}

// TextPanel is the text tab: message entry, font choice, line mode and the
// shared effect row.
type TextPanel struct {
	container    *fyne.Container
	textEntry    *widget.Entry
	fontSelect   *widget.Select
	twoLineCheck *widget.Check
	effectRow    *EffectRow

	fontIDs map[string]string // label -> id
}

func NewTextPanel(onChange func(), onFontChange func(id string)) *TextPanel {
	tp := &TextPanel{
		effectRow: NewEffectRow(onChange),
		fontIDs:   map[string]string{builtinFontLabel: fonts.BuiltinID},
	}

	tp.textEntry = widget.NewMultiLineEntry()
	tp.textEntry.SetPlaceHolder("Text to display...")
	tp.textEntry.OnChanged = func(string) {
		if onChange != nil {
			onChange()
		}
	}

	tp.twoLineCheck = widget.NewCheck("Two lines", func(bool) {
		if onChange != nil {
			onChange()
		}
	})

	tp.fontSelect = widget.NewSelect([]string{builtinFontLabel}, func(label string) {
		// Only the device's builtin font can render two stacked lines.
		if tp.fontIDs[label] == fonts.BuiltinID {
			tp.twoLineCheck.Enable()
		} else {
			tp.twoLineCheck.SetChecked(false)
			tp.twoLineCheck.Disable()
		}
		if onFontChange != nil {
			onFontChange(tp.fontIDs[label])
		}
	})
	// Assigned directly: SetSelected would clobber the stored font
	// preference before it is restored.
	tp.fontSelect.Selected = builtinFontLabel

	tp.container = container.NewVBox(
		tp.textEntry,
		container.NewHBox(
			widget.NewLabel("Font:"),
			tp.fontSelect,
			tp.twoLineCheck,
		),
		tp.effectRow.GetContainer(),
	)
	return tp
}

func (tp *TextPanel) GetContainer() *fyne.Container {
	return tp.container
}

func (tp *TextPanel) EffectRow() *EffectRow {
	return tp.effectRow
}

func (tp *TextPanel) Text() string {
	return tp.textEntry.Text
}

func (tp *TextPanel) SetText(text string) {
	tp.textEntry.SetText(text)
}

func (tp *TextPanel) TwoLines() bool {
	return tp.twoLineCheck.Checked
}

func (tp *TextPanel) SetTwoLines(v bool) {
	tp.twoLineCheck.SetChecked(v)
}

// SetFonts replaces the selectable fonts, keeping the builtin entry first.
// The current selection survives when its id is still present.
func (tp *TextPanel) SetFonts(options []FontOption) {
	selected := tp.SelectedFontID()
	labels := []string{builtinFontLabel}
	tp.fontIDs = map[string]string{builtinFontLabel: fonts.BuiltinID}
	for _, opt := range options {
		labels = append(labels, opt.Name)
		tp.fontIDs[opt.Name] = opt.ID
	}
	tp.fontSelect.Options = labels
	tp.SelectFontID(selected)
}

func (tp *TextPanel) SelectedFontID() string {
	if id, ok := tp.fontIDs[tp.fontSelect.Selected]; ok {
		return id
	}
	return fonts.BuiltinID
}

func (tp *TextPanel) SelectFontID(id string) {
	for label, fontID := range tp.fontIDs {
		if fontID == id {
			tp.fontSelect.SetSelected(label)
			return
		}
	}
	tp.fontSelect.SetSelected(builtinFontLabel)
}

func (tp *TextPanel) SetLocked(locked bool) {
	if locked {
		tp.textEntry.Disable()
		tp.fontSelect.Disable()
		tp.twoLineCheck.Disable()
	} else {
		tp.textEntry.Enable()
		tp.fontSelect.Enable()
		if tp.SelectedFontID() == fonts.BuiltinID {
			tp.twoLineCheck.Enable()
		}
	}
	tp.effectRow.SetLocked(locked)
}
