package app

import (
	"fyne.io/fyne/v2"

	"github.com/ordigital/spotled-gui/internal/config"
	"github.com/ordigital/spotled-gui/internal/fonts"
	"github.com/ordigital/spotled-gui/internal/gui"
	"github.com/ordigital/spotled-gui/internal/logger"
	"github.com/ordigital/spotled-gui/internal/models"
)

// Handlers owns the document, the undo history and all GUI event logic.
// Every method runs on the Fyne main goroutine unless noted.
type Handlers struct {
	window   fyne.Window
	gui      *gui.Manager
	settings *config.Settings
	library  *fonts.Library
	log      logger.Logger

	doc     *models.Document
	history *models.History

	overlay  *models.PixelBuffer
	overlayX int
	overlayY int

	projectPath string

	playback *playback
	busy     bool
}

func NewHandlers(window fyne.Window, settings *config.Settings, library *fonts.Library, log logger.Logger) *Handlers {
	return &Handlers{
		window:   window,
		settings: settings,
		library:  library,
		log:      log,
		doc:      models.NewDocument(),
		history:  models.NewHistory(),
	}
}

// Callbacks binds every GUI event to its handler.
func (h *Handlers) Callbacks() gui.Callbacks {
	return gui.Callbacks{
		OnToolChange:   h.HandleToolChange,
		OnUndo:         h.HandleUndo,
		OnRedo:         h.HandleRedo,
		OnClear:        h.frameOp(func(f *models.Frame) { f.Clear() }),
		OnInvert:       h.frameOp(func(f *models.Frame) { f.Invert() }),
		OnMirrorH:      h.frameOp(func(f *models.Frame) { f.MirrorHorizontal() }),
		OnMirrorV:      h.frameOp(func(f *models.Frame) { f.MirrorVertical() }),
		OnCopyPrevious: h.HandleCopyPrevious,
		OnShift:        h.HandleShift,
		OnImport:       h.HandleImageImport,

		OnSelectFrame:   h.HandleSelectFrame,
		OnPreviousFrame: h.HandlePreviousFrame,
		OnNextFrame:     h.HandleNextFrame,
		OnAddFrame:      h.HandleAddFrame,
		OnRemoveFrame:   h.HandleRemoveFrame,
		OnPlayToggle:    h.HandlePlayToggle,

		OnStrokeStart:    h.HandleStrokeStart,
		OnPaint:          h.HandlePaint,
		OnMove:           h.HandleMove,
		OnStrokeEnd:      h.HandleStrokeEnd,
		OnPlacementDrag:  h.HandlePlacementDrag,
		OnPlacementClick: h.HandlePlacementClick,

		OnSettingChange: func() {},
		OnFontChange:    h.HandleFontChange,
		OnScan:          h.HandleScan,
		OnSend:          h.HandleSend,
		OnLoadProject:   h.HandleProjectLoad,
		OnSaveProject:   h.HandleProjectSave,
	}
}

// Attach completes wiring once the GUI manager exists.
func (h *Handlers) Attach(manager *gui.Manager) {
	h.gui = manager

	options := make([]gui.FontOption, 0, len(h.library.IDs()))
	for _, id := range h.library.IDs() {
		options = append(options, gui.FontOption{ID: id, Name: h.library.Get(id).Name})
	}
	h.gui.TextPanel().SetFonts(options)
	h.gui.TextPanel().SelectFontID(h.settings.SelectedFont())

	history := h.settings.MACHistory()
	h.gui.DeviceBar().SetHistory(history)
	if len(history) > 0 {
		h.gui.DeviceBar().SetAddress(history[0])
	}

	h.refresh()
}

func (h *Handlers) Shutdown() {
	h.stopPlayback()
}

// refresh redraws the grid and every state-dependent control.
func (h *Handlers) refresh() {
	h.gui.Grid().SetFrame(h.doc.CurrentFrame(), h.doc.PreviousFrame())
	h.gui.FrameBar().SetFrame(h.doc.CurrentIndex(), h.doc.FrameCount())
	if h.playback == nil {
		h.gui.Toolbar().SetHistoryState(h.history.CanUndo(), h.history.CanRedo())
	}
}

// Painting. A stroke spans press to release and commits as one undo step.

func (h *Handlers) HandleStrokeStart() {
	h.history.Begin(h.doc.CurrentIndex(), h.doc.CurrentFrame().Clone())
}

func (h *Handlers) HandlePaint(x, y int, erase bool) {
	if h.doc.CurrentFrame().Set(x, y, !erase) {
		h.gui.Grid().Refresh()
	}
}

// HandleMove fires while the move tool drags the frame; the surrounding
// stroke callbacks make the whole drag one undo step.
func (h *Handlers) HandleMove(dx, dy int) {
	h.doc.CurrentFrame().Shift(dx, dy)
	h.gui.Grid().Refresh()
}

func (h *Handlers) HandleStrokeEnd() {
	h.history.Commit(h.doc.CurrentFrame().Clone())
	h.refresh()
}

func (h *Handlers) HandleToolChange(moveTool bool) {
	if moveTool {
		h.gui.Grid().SetTool(gui.ToolMove)
	} else {
		h.gui.Grid().SetTool(gui.ToolDraw)
	}
}

// frameOp wraps a whole-frame mutation into a single undoable action.
func (h *Handlers) frameOp(op func(*models.Frame)) func() {
	return func() {
		if h.refusePlacement() {
			return
		}
		frame := h.doc.CurrentFrame()
		h.history.Begin(h.doc.CurrentIndex(), frame.Clone())
		op(frame)
		h.history.Commit(frame.Clone())
		h.refresh()
	}
}

func (h *Handlers) HandleShift(dx, dy int) {
	h.frameOp(func(f *models.Frame) { f.Shift(dx, dy) })()
}

func (h *Handlers) HandleCopyPrevious() {
	prev := h.doc.PreviousFrame()
	if prev == nil {
		return
	}
	h.frameOp(func(f *models.Frame) { *f = *prev.Clone() })()
}

func (h *Handlers) HandleUndo() {
	if h.refusePlacement() {
		return
	}
	action, ok := h.history.Undo()
	if !ok {
		return
	}
	h.doc.SetCurrent(action.FrameIndex)
	h.doc.ReplaceFrame(action.FrameIndex, action.Before)
	h.refresh()
}

func (h *Handlers) HandleRedo() {
	if h.refusePlacement() {
		return
	}
	action, ok := h.history.Redo()
	if !ok {
		return
	}
	h.doc.SetCurrent(action.FrameIndex)
	h.doc.ReplaceFrame(action.FrameIndex, action.After)
	h.refresh()
}

// Frame navigation. A pending image placement blocks it, along with frame
// ops, undo/redo, send and project save; structural changes reset the
// history because action frame indices would no longer line up.

// refusePlacement reports whether an uncommitted placement blocks the
// action.
func (h *Handlers) refusePlacement() bool {
	if h.overlay == nil {
		return false
	}
	h.gui.UpdateStatus("Place the imported image first")
	return true
}

func (h *Handlers) HandleSelectFrame(index int) {
	if h.refusePlacement() {
		h.refresh()
		return
	}
	if h.doc.SetCurrent(index) {
		h.refresh()
	}
}

func (h *Handlers) HandlePreviousFrame() {
	h.HandleSelectFrame(h.doc.CurrentIndex() - 1)
}

func (h *Handlers) HandleNextFrame() {
	h.HandleSelectFrame(h.doc.CurrentIndex() + 1)
}

func (h *Handlers) HandleAddFrame() {
	if h.refusePlacement() {
		return
	}
	h.doc.AddFrame()
	h.history.Reset()
	h.refresh()
}

func (h *Handlers) HandleRemoveFrame() {
	if h.refusePlacement() {
		return
	}
	h.doc.RemoveCurrent()
	h.history.Reset()
	h.refresh()
}

// Image placement. The imported buffer floats over the grid until the user
// clicks it into the current frame.

func (h *Handlers) beginPlacement(buf *models.PixelBuffer) {
	h.overlay = buf
	h.overlayX = (models.GridWidth - buf.Width) / 2
	h.overlayY = (models.GridHeight - buf.Height) / 2
	h.gui.Grid().SetOverlay(buf, h.overlayX, h.overlayY)
	h.gui.UpdateStatus("Drag to position the image, click to place it")
}

func (h *Handlers) HandlePlacementDrag(dx, dy int) {
	if h.overlay == nil {
		return
	}
	h.overlayX += dx
	h.overlayY += dy
	h.gui.Grid().SetOverlay(h.overlay, h.overlayX, h.overlayY)
}

func (h *Handlers) HandlePlacementClick() {
	if h.overlay == nil {
		return
	}
	buf, x, y := h.overlay, h.overlayX, h.overlayY
	h.cancelPlacement()
	h.frameOp(func(f *models.Frame) { f.Blit(buf, x, y) })()
	h.gui.UpdateStatus("Image placed")
}

func (h *Handlers) cancelPlacement() {
	if h.overlay == nil {
		return
	}
	h.overlay = nil
	h.gui.Grid().ClearOverlay()
}

func (h *Handlers) HandleFontChange(id string) {
	h.settings.SetSelectedFont(id)
}
