// Package app wires the Fyne application: window, GUI manager, document
// state and the device handlers.
package app

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ordigital/spotled-gui/internal/config"
	"github.com/ordigital/spotled-gui/internal/fonts"
	"github.com/ordigital/spotled-gui/internal/gui"
	"github.com/ordigital/spotled-gui/internal/logger"
)

const (
	AppName    = "SpotLED GUI"
	AppID      = "com.ordigital.spotledgui"
	AppVersion = "1.0.0"

	// Delay before the silent startup scan, giving the window time to map.
	startupScanDelay = 800 * time.Millisecond
)

// FontsDir is where .slf font files are picked up from.
const FontsDir = "fonts"

type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	manager  *gui.Manager
	handlers *Handlers
	log      logger.Logger
}

// Options tweak startup behavior from the command line.
type Options struct {
	// Device preselects a MAC address, skipping the remembered one.
	Device string
	// NoStartupScan suppresses the silent scan after launch.
	NoStartupScan bool
}

func NewApplication(log logger.Logger, opts Options) *Application {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.SetMaster()

	settings := config.NewSettings(fyneApp.Preferences())
	library := fonts.LoadDir(FontsDir, log)

	handlers := NewHandlers(window, settings, library, log)
	manager := gui.NewManager(window, handlers.Callbacks(), log)
	handlers.Attach(manager)

	window.SetContent(manager.GetMainContainer())
	window.SetMainMenu(buildMainMenu(handlers))

	if opts.Device != "" {
		manager.DeviceBar().SetAddress(opts.Device)
	}

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		manager:  manager,
		handlers: handlers,
		log:      log,
	}

	if !opts.NoStartupScan {
		time.AfterFunc(startupScanDelay, handlers.HandleStartupScan)
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
		"fonts":   len(library.IDs()),
	})
	return application
}

func (a *Application) Run() {
	a.log.Info("Application", "entering main loop", nil)
	a.window.ShowAndRun()
	a.handlers.Shutdown()
	a.log.Info("Application", "main loop finished", nil)
}
