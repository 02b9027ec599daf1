package models

// Action is one undoable edit: the state of a single frame before and after
// a gesture.
type Action struct {
	FrameIndex int
	Before     *Frame
	After      *Frame
}

// History is a linear undo stack. Edits between Begin and Commit form one
// action; committing truncates any redo tail. Structural changes to the
// document (adding or removing frames, loading a project) call Reset.
type History struct {
	actions []Action
	pos     int

	pendingBefore *Frame
	pendingFrame  int
	pendingActive bool
}

func NewHistory() *History {
	return &History{}
}

// Begin snapshots the frame a gesture is about to modify. Nested calls are
// ignored until the gesture is committed or canceled.
func (h *History) Begin(frameIndex int, before *Frame) {
	if h.pendingActive {
		return
	}
	h.pendingActive = true
	h.pendingFrame = frameIndex
	h.pendingBefore = before.Clone()
}

// Commit closes the pending gesture with the frame's final state. Gestures
// that did not change anything are dropped.
func (h *History) Commit(after *Frame) {
	if !h.pendingActive {
		return
	}
	before := h.pendingBefore
	frameIndex := h.pendingFrame
	h.pendingActive = false
	h.pendingBefore = nil

	if before.Equal(after) {
		return
	}
	h.actions = h.actions[:h.pos]
	h.actions = append(h.actions, Action{
		FrameIndex: frameIndex,
		Before:     before,
		After:      after.Clone(),
	})
	h.pos++
}

// Cancel drops the pending gesture without recording anything.
func (h *History) Cancel() {
	h.pendingActive = false
	h.pendingBefore = nil
}

func (h *History) CanUndo() bool {
	return h.pos > 0
}

func (h *History) CanRedo() bool {
	return h.pos < len(h.actions)
}

// Undo steps the cursor back and returns the action to revert. The caller
// applies Before to FrameIndex. Returns false when there is nothing to undo.
func (h *History) Undo() (Action, bool) {
	if h.pos == 0 {
		return Action{}, false
	}
	h.pos--
	h.Cancel()
	return h.actions[h.pos], true
}

// Redo re-applies the next undone action. The caller applies After to
// FrameIndex.
func (h *History) Redo() (Action, bool) {
	if h.pos >= len(h.actions) {
		return Action{}, false
	}
	action := h.actions[h.pos]
	h.pos++
	h.Cancel()
	return action, true
}

func (h *History) Reset() {
	h.actions = nil
	h.pos = 0
	h.Cancel()
}
