package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameWithPixel(x, y int) *Frame {
	f := NewFrame()
	f.Set(x, y, true)
	return f
}

func TestHistoryCommitAndUndo(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	before := NewFrame()
	after := frameWithPixel(1, 1)

	h.Begin(0, before)
	h.Commit(after)
	require.True(t, h.CanUndo())

	action, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, 0, action.FrameIndex)
	assert.True(t, action.Before.Equal(before))
	assert.True(t, action.After.Equal(after))
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())
}

func TestHistoryRedo(t *testing.T) {
	h := NewHistory()
	h.Begin(2, NewFrame())
	h.Commit(frameWithPixel(0, 0))

	_, ok := h.Undo()
	require.True(t, ok)

	action, ok := h.Redo()
	require.True(t, ok)
	assert.Equal(t, 2, action.FrameIndex)
	assert.True(t, action.After.Get(0, 0))
	assert.False(t, h.CanRedo())
	assert.True(t, h.CanUndo())
}

func TestHistoryDropsNoopGesture(t *testing.T) {
	h := NewHistory()
	f := frameWithPixel(5, 5)
	h.Begin(0, f)
	h.Commit(f.Clone())
	assert.False(t, h.CanUndo(), "a gesture that changed nothing records no action")
}

func TestHistoryCommitTruncatesRedoTail(t *testing.T) {
	h := NewHistory()
	h.Begin(0, NewFrame())
	h.Commit(frameWithPixel(0, 0))
	h.Begin(0, frameWithPixel(0, 0))
	h.Commit(frameWithPixel(1, 1))

	_, ok := h.Undo()
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Begin(0, frameWithPixel(0, 0))
	h.Commit(frameWithPixel(2, 2))
	assert.False(t, h.CanRedo(), "a new action after undo discards the redo tail")

	action, ok := h.Undo()
	require.True(t, ok)
	assert.True(t, action.After.Get(2, 2))
}

func TestHistoryNestedBeginIgnored(t *testing.T) {
	h := NewHistory()
	original := NewFrame()
	h.Begin(0, original)
	h.Begin(0, frameWithPixel(9, 9))
	h.Commit(frameWithPixel(1, 1))

	action, ok := h.Undo()
	require.True(t, ok)
	assert.True(t, action.Before.Equal(original), "the first Begin snapshot wins")
}

func TestHistoryCancel(t *testing.T) {
	h := NewHistory()
	h.Begin(0, NewFrame())
	h.Cancel()
	h.Commit(frameWithPixel(1, 1))
	assert.False(t, h.CanUndo())
}

func TestHistoryBeginSnapshotsState(t *testing.T) {
	h := NewHistory()
	f := NewFrame()
	h.Begin(0, f)
	f.Set(3, 3, true) // mutate after Begin, as a paint stroke does
	h.Commit(f)

	action, ok := h.Undo()
	require.True(t, ok)
	assert.False(t, action.Before.Get(3, 3), "Begin captured the pre-stroke state")
	assert.True(t, action.After.Get(3, 3))
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory()
	h.Begin(0, NewFrame())
	h.Commit(frameWithPixel(1, 1))
	_, _ = h.Undo()

	h.Reset()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
