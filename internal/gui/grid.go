package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ordigital/spotled-gui/internal/models"
)

// CellSize is the on-screen edge of one LED cell in pixels.
const CellSize = 16

var (
	colorBackground = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	colorOff        = color.Black
	colorOn         = color.NRGBA{R: 0x4e, G: 0xff, B: 0x00, A: 0xff}
	colorGhost      = color.NRGBA{R: 0x01, G: 0x16, B: 0x01, A: 0xff}
	colorOverlay    = color.NRGBA{R: 0xff, G: 0x99, B: 0x00, A: 0xff}
)

// Tool selects how mouse strokes act on the grid.
type Tool int

const (
	// ToolDraw paints single cells, the right button erasing.
	ToolDraw Tool = iota
	// ToolMove drags the whole frame, clipping at the edges.
	ToolMove
)

// GridEditor renders the LED matrix and turns mouse input into paint strokes,
// frame moves or placement moves. It holds no document state beyond what it
// displays; the handlers own the editing logic.
type GridEditor struct {
	widget.BaseWidget

	frame  *models.Frame
	ghost  *models.Frame
	tool   Tool
	locked bool

	overlay  *models.PixelBuffer
	overlayX int
	overlayY int

	// Stroke callbacks. A stroke is one press-move-release sequence; erase
	// reports the right button. With ToolMove active, OnMove fires instead
	// of OnPaint as the drag crosses cell boundaries.
	OnStrokeStart func()
	OnPaint       func(x, y int, erase bool)
	OnMove        func(dx, dy int)
	OnStrokeEnd   func()

	// Placement callbacks, active while an overlay is set. Dragging moves
	// the overlay by whole cells; a click without movement commits it.
	OnPlacementDrag  func(dx, dy int)
	OnPlacementClick func()

	erasing  bool
	dragged  bool
	dragAccX float32
	dragAccY float32
}

func NewGridEditor() *GridEditor {
	g := &GridEditor{frame: models.NewFrame()}
	g.ExtendBaseWidget(g)
	return g
}

// SetFrame updates the displayed pixels. ghost may be nil; lit ghost pixels
// show dimly behind the current frame as an onion skin.
func (g *GridEditor) SetFrame(frame, ghost *models.Frame) {
	g.frame = frame
	g.ghost = ghost
	g.Refresh()
}

// SetOverlay shows a pending image placement at the given cell offset.
func (g *GridEditor) SetOverlay(buf *models.PixelBuffer, x, y int) {
	g.overlay = buf
	g.overlayX = x
	g.overlayY = y
	g.Refresh()
}

func (g *GridEditor) ClearOverlay() {
	g.overlay = nil
	g.Refresh()
}

// SetLocked suspends input handling, used during playback.
func (g *GridEditor) SetLocked(locked bool) {
	g.locked = locked
}

func (g *GridEditor) SetTool(tool Tool) {
	g.tool = tool
}

func (g *GridEditor) cellAt(pos fyne.Position) (int, int, bool) {
	x := int(pos.X) / CellSize
	y := int(pos.Y) / CellSize
	if x < 0 || x >= models.GridWidth || y < 0 || y >= models.GridHeight {
		return 0, 0, false
	}
	return x, y, true
}

func (g *GridEditor) MouseDown(ev *desktop.MouseEvent) {
	if g.locked {
		return
	}
	g.dragged = false
	g.dragAccX, g.dragAccY = 0, 0
	if g.overlay != nil {
		return
	}

	g.erasing = ev.Button == desktop.MouseButtonSecondary
	if g.OnStrokeStart != nil {
		g.OnStrokeStart()
	}
	if g.tool == ToolMove {
		return
	}
	if x, y, ok := g.cellAt(ev.Position); ok && g.OnPaint != nil {
		g.OnPaint(x, y, g.erasing)
	}
}

func (g *GridEditor) MouseUp(ev *desktop.MouseEvent) {
	if g.locked {
		return
	}
	if g.overlay != nil {
		if !g.dragged && g.OnPlacementClick != nil {
			g.OnPlacementClick()
		}
		return
	}
	if g.OnStrokeEnd != nil {
		g.OnStrokeEnd()
	}
}

func (g *GridEditor) Dragged(ev *fyne.DragEvent) {
	if g.locked {
		return
	}
	g.dragged = true

	if g.overlay != nil {
		if dx, dy, ok := g.accumulateCells(ev.Dragged); ok && g.OnPlacementDrag != nil {
			g.OnPlacementDrag(dx, dy)
		}
		return
	}

	if g.tool == ToolMove {
		if dx, dy, ok := g.accumulateCells(ev.Dragged); ok && g.OnMove != nil {
			g.OnMove(dx, dy)
		}
		return
	}

	if x, y, ok := g.cellAt(ev.Position); ok && g.OnPaint != nil {
		g.OnPaint(x, y, g.erasing)
	}
}

// accumulateCells converts pixel drag deltas into whole-cell steps.
func (g *GridEditor) accumulateCells(delta fyne.Delta) (int, int, bool) {
	g.dragAccX += delta.DX
	g.dragAccY += delta.DY
	dx := int(g.dragAccX) / CellSize
	dy := int(g.dragAccY) / CellSize
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}
	g.dragAccX -= float32(dx * CellSize)
	g.dragAccY -= float32(dy * CellSize)
	return dx, dy, true
}

func (g *GridEditor) DragEnd() {}

func (g *GridEditor) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(colorBackground)
	cells := make([]*canvas.Rectangle, models.GridWidth*models.GridHeight)
	objects := make([]fyne.CanvasObject, 0, len(cells)+1)
	objects = append(objects, background)
	for i := range cells {
		cells[i] = canvas.NewRectangle(colorOff)
		objects = append(objects, cells[i])
	}
	return &gridRenderer{editor: g, background: background, cells: cells, objects: objects}
}

type gridRenderer struct {
	editor     *GridEditor
	background *canvas.Rectangle
	cells      []*canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *gridRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	for y := 0; y < models.GridHeight; y++ {
		for x := 0; x < models.GridWidth; x++ {
			cell := r.cells[y*models.GridWidth+x]
			cell.Move(fyne.NewPos(float32(x*CellSize)+1, float32(y*CellSize)+1))
			cell.Resize(fyne.NewSize(CellSize-1, CellSize-1))
		}
	}
}

func (r *gridRenderer) MinSize() fyne.Size {
	return fyne.NewSize(models.GridWidth*CellSize+1, models.GridHeight*CellSize+1)
}

func (r *gridRenderer) Refresh() {
	for y := 0; y < models.GridHeight; y++ {
		for x := 0; x < models.GridWidth; x++ {
			cell := r.cells[y*models.GridWidth+x]
			cell.FillColor = r.cellColor(x, y)
			cell.Refresh()
		}
	}
}

func (r *gridRenderer) cellColor(x, y int) color.Color {
	g := r.editor
	if g.overlay != nil {
		ox := x - g.overlayX
		oy := y - g.overlayY
		if ox >= 0 && ox < g.overlay.Width && oy >= 0 && oy < g.overlay.Height {
			if g.overlay.Pixels[oy][ox] {
				return colorOverlay
			}
			return colorOff
		}
	}
	if g.frame != nil && g.frame.Get(x, y) {
		return colorOn
	}
	if g.ghost != nil && g.ghost.Get(x, y) {
		return colorGhost
	}
	return colorOff
}

func (r *gridRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *gridRenderer) Destroy() {}
