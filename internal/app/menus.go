package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func buildMainMenu(h *Handlers) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", h.HandleNewProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Project...", h.HandleProjectLoad),
		fyne.NewMenuItem("Save Project...", h.HandleProjectSave),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Image...", h.HandleImageImport),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", h.HandleUndo),
		fyne.NewMenuItem("Redo", h.HandleRedo),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About",
				fmt.Sprintf("%s %s\nFrame animation editor for SpotLED displays.", AppName, AppVersion),
				h.window)
		}),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
}
