package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordigital/spotled-gui/internal/models"
)

func mouseEvent(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func TestGridEditorPaintStroke(t *testing.T) {
	test.NewApp()
	g := NewGridEditor()

	var started, ended bool
	type paint struct {
		x, y  int
		erase bool
	}
	var paints []paint
	g.OnStrokeStart = func() { started = true }
	g.OnPaint = func(x, y int, erase bool) { paints = append(paints, paint{x, y, erase}) }
	g.OnStrokeEnd = func() { ended = true }

	g.MouseDown(mouseEvent(CellSize*2+3, CellSize+1, desktop.MouseButtonPrimary))
	g.MouseUp(mouseEvent(CellSize*2+3, CellSize+1, desktop.MouseButtonPrimary))

	assert.True(t, started)
	assert.True(t, ended)
	require.Len(t, paints, 1)
	assert.Equal(t, paint{2, 1, false}, paints[0])
}

func TestGridEditorRightButtonErases(t *testing.T) {
	test.NewApp()
	g := NewGridEditor()

	var erased bool
	g.OnPaint = func(x, y int, erase bool) { erased = erase }

	g.MouseDown(mouseEvent(0, 0, desktop.MouseButtonSecondary))
	assert.True(t, erased)
}

func TestGridEditorIgnoresOutOfBoundsAndLocked(t *testing.T) {
	test.NewApp()
	g := NewGridEditor()

	var paints int
	g.OnPaint = func(int, int, bool) { paints++ }

	g.MouseDown(mouseEvent(models.GridWidth*CellSize+5, 0, desktop.MouseButtonPrimary))
	assert.Zero(t, paints, "clicks past the grid edge do not paint")

	g.SetLocked(true)
	g.MouseDown(mouseEvent(1, 1, desktop.MouseButtonPrimary))
	assert.Zero(t, paints)
}

func TestGridEditorPlacementDragAccumulatesCells(t *testing.T) {
	test.NewApp()
	g := NewGridEditor()
	g.SetOverlay(models.NewPixelBuffer(4, 4), 0, 0)

	var moves [][2]int
	var committed bool
	g.OnPlacementDrag = func(dx, dy int) { moves = append(moves, [2]int{dx, dy}) }
	g.OnPlacementClick = func() { committed = true }

	g.MouseDown(mouseEvent(10, 10, desktop.MouseButtonPrimary))
	// Two half-cell drags add up to one cell step.
	g.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: CellSize / 2, DY: 0}})
	require.Empty(t, moves)
	g.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: CellSize / 2, DY: 0}})
	require.Equal(t, [][2]int{{1, 0}}, moves)

	g.MouseUp(mouseEvent(10, 10, desktop.MouseButtonPrimary))
	assert.False(t, committed, "a drag does not commit the placement")
}

func TestGridEditorPlacementClickCommits(t *testing.T) {
	test.NewApp()
	g := NewGridEditor()
	g.SetOverlay(models.NewPixelBuffer(4, 4), 0, 0)

	var committed bool
	g.OnPlacementClick = func() { committed = true }

	g.MouseDown(mouseEvent(10, 10, desktop.MouseButtonPrimary))
	g.MouseUp(mouseEvent(10, 10, desktop.MouseButtonPrimary))
	assert.True(t, committed)
}

func TestGridEditorMinSize(t *testing.T) {
	test.NewApp()
	g := NewGridEditor()
	size := g.MinSize()
	assert.Equal(t, float32(models.GridWidth*CellSize+1), size.Width)
	assert.Equal(t, float32(models.GridHeight*CellSize+1), size.Height)
}
