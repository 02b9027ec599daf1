package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DeviceBar selects the target display and carries the project and send
// actions. The address entry doubles as a dropdown of previously used
// devices.
type DeviceBar struct {
	container  *fyne.Container
	macEntry   *widget.SelectEntry
	scanButton *widget.Button
	sendButton *widget.Button
	loadButton *widget.Button
	saveButton *widget.Button
}

func NewDeviceBar(onScan, onSend, onLoadProject, onSaveProject func()) *DeviceBar {
	db := &DeviceBar{}

	db.macEntry = widget.NewSelectEntry(nil)
	db.macEntry.SetPlaceHolder("AA:BB:CC:DD:EE:FF")

	db.scanButton = widget.NewButtonWithIcon("Scan", theme.SearchIcon(), onScan)
	db.sendButton = widget.NewButtonWithIcon("Send", theme.MailSendIcon(), onSend)
	db.sendButton.Importance = widget.HighImportance
	db.loadButton = widget.NewButtonWithIcon("Load", theme.FolderOpenIcon(), onLoadProject)
	db.saveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), onSaveProject)

	db.container = container.NewBorder(
		nil, nil,
		container.NewHBox(db.loadButton, db.saveButton, widget.NewSeparator(), widget.NewLabel("Device:")),
		container.NewHBox(db.scanButton, db.sendButton),
		db.macEntry,
	)
	return db
}

func (db *DeviceBar) GetContainer() *fyne.Container {
	return db.container
}

func (db *DeviceBar) Address() string {
	return db.macEntry.Text
}

func (db *DeviceBar) SetAddress(mac string) {
	db.macEntry.SetText(mac)
}

// SetHistory replaces the dropdown entries.
func (db *DeviceBar) SetHistory(addresses []string) {
	db.macEntry.SetOptions(addresses)
}

// SetBusy disables the bar while a scan or send is in flight.
func (db *DeviceBar) SetBusy(busy bool) {
	if busy {
		db.macEntry.Disable()
		db.scanButton.Disable()
		db.sendButton.Disable()
	} else {
		db.macEntry.Enable()
		db.scanButton.Enable()
		db.sendButton.Enable()
	}
}
