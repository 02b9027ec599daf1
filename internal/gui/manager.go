// Package gui assembles the editor window: the LED grid, frame navigation,
// the text tab and the device bar.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ordigital/spotled-gui/internal/gui/components"
	"github.com/ordigital/spotled-gui/internal/logger"
	"github.com/ordigital/spotled-gui/internal/models"
)

// FontOption aliases the component type so callers outside the gui tree can
// populate the font selector.
type FontOption = components.FontOption

// Callbacks carries every handler the window needs. All fields must be set
// before NewManager.
type Callbacks struct {
	OnToolChange   func(moveTool bool)
	OnUndo         func()
	OnRedo         func()
	OnClear        func()
	OnInvert       func()
	OnMirrorH      func()
	OnMirrorV      func()
	OnCopyPrevious func()
	OnShift        func(dx, dy int)
	OnImport       func()

	OnSelectFrame   func(index int)
	OnPreviousFrame func()
	OnNextFrame     func()
	OnAddFrame      func()
	OnRemoveFrame   func()
	OnPlayToggle    func()

	OnStrokeStart    func()
	OnPaint          func(x, y int, erase bool)
	OnMove           func(dx, dy int)
	OnStrokeEnd      func()
	OnPlacementDrag  func(dx, dy int)
	OnPlacementClick func()

	OnSettingChange func()
	OnFontChange    func(id string)
	OnScan          func()
	OnSend          func()
	OnLoadProject   func()
	OnSaveProject   func()
}

type Manager struct {
	window fyne.Window
	log    logger.Logger

	grid      *GridEditor
	toolbar   *components.EditToolbar
	frameBar  *components.FrameBar
	imageRow  *components.EffectRow
	textPanel *components.TextPanel
	deviceBar *components.DeviceBar
	statusBar *components.StatusBar
	tabs      *container.AppTabs
}

func NewManager(window fyne.Window, cb Callbacks, log logger.Logger) *Manager {
	m := &Manager{
		window: window,
		log:    log,
	}

	m.grid = NewGridEditor()
	m.grid.OnStrokeStart = cb.OnStrokeStart
	m.grid.OnPaint = cb.OnPaint
	m.grid.OnMove = cb.OnMove
	m.grid.OnStrokeEnd = cb.OnStrokeEnd
	m.grid.OnPlacementDrag = cb.OnPlacementDrag
	m.grid.OnPlacementClick = cb.OnPlacementClick

	m.toolbar = components.NewEditToolbar(
		cb.OnToolChange,
		cb.OnUndo, cb.OnRedo,
		cb.OnClear, cb.OnInvert, cb.OnMirrorH, cb.OnMirrorV, cb.OnCopyPrevious,
		cb.OnShift,
		cb.OnImport,
	)
	m.frameBar = components.NewFrameBar(
		cb.OnSelectFrame,
		cb.OnPreviousFrame, cb.OnNextFrame, cb.OnAddFrame, cb.OnRemoveFrame, cb.OnPlayToggle,
	)
	m.imageRow = components.NewEffectRow(cb.OnSettingChange)
	m.textPanel = components.NewTextPanel(cb.OnSettingChange, cb.OnFontChange)
	m.deviceBar = components.NewDeviceBar(cb.OnScan, cb.OnSend, cb.OnLoadProject, cb.OnSaveProject)
	m.statusBar = components.NewStatusBar()

	imageTab := container.NewVBox(
		m.toolbar.GetContainer(),
		container.NewCenter(m.grid),
		container.NewHBox(m.frameBar.GetContainer(), m.imageRow.GetContainer()),
	)
	m.tabs = container.NewAppTabs(
		container.NewTabItem("Image", imageTab),
		container.NewTabItem("Text", m.textPanel.GetContainer()),
	)

	log.Info("GUI", "window assembled", map[string]interface{}{
		"grid_width":  models.GridWidth,
		"grid_height": models.GridHeight,
	})
	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		m.deviceBar.GetContainer(),
		m.statusBar.GetContainer(),
		nil, nil,
		m.tabs,
	)
}

func (m *Manager) GetWindow() fyne.Window { return m.window }

func (m *Manager) Grid() *GridEditor { return m.grid }

func (m *Manager) Toolbar() *components.EditToolbar { return m.toolbar }

func (m *Manager) FrameBar() *components.FrameBar { return m.frameBar }

func (m *Manager) ImageEffects() *components.EffectRow { return m.imageRow }

func (m *Manager) TextPanel() *components.TextPanel { return m.textPanel }

func (m *Manager) DeviceBar() *components.DeviceBar { return m.deviceBar }

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
}

// SelectedTab reports the project tab index, image first.
func (m *Manager) SelectedTab() int {
	return m.tabs.SelectedIndex()
}

func (m *Manager) SelectTab(index int) {
	if index >= 0 && index < len(m.tabs.Items) {
		m.tabs.SelectIndex(index)
	}
}

// SetLocked freezes editing while the animation preview runs. The device
// bar stays usable so playback can accompany a send.
func (m *Manager) SetLocked(locked bool) {
	m.grid.SetLocked(locked)
	m.toolbar.SetLocked(locked)
	m.frameBar.SetLocked(locked)
	m.imageRow.SetLocked(locked)
	m.textPanel.SetLocked(locked)
}
