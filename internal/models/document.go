package models

// Document is the in-memory animation being edited: an ordered list of
// frames and the index of the one currently shown. A document always holds
// at least one frame.
type Document struct {
	frames  []*Frame
	current int
}

func NewDocument() *Document {
	return &Document{frames: []*Frame{NewFrame()}}
}

func (d *Document) FrameCount() int {
	return len(d.frames)
}

func (d *Document) CurrentIndex() int {
	return d.current
}

func (d *Document) CurrentFrame() *Frame {
	return d.frames[d.current]
}

func (d *Document) Frame(index int) *Frame {
	if index < 0 || index >= len(d.frames) {
		return nil
	}
	return d.frames[index]
}

// PreviousFrame returns the frame before the current one, or nil when the
// current frame is the first. The editor uses it as the ghost overlay.
func (d *Document) PreviousFrame() *Frame {
	if d.current == 0 {
		return nil
	}
	return d.frames[d.current-1]
}

// SetCurrent clamps index into range and reports whether the current frame
// changed.
func (d *Document) SetCurrent(index int) bool {
	if index < 0 {
		index = 0
	}
	if index >= len(d.frames) {
		index = len(d.frames) - 1
	}
	if index == d.current {
		return false
	}
	d.current = index
	return true
}

// ReplaceCurrent stores a copy of frame as the current frame.
func (d *Document) ReplaceCurrent(frame *Frame) {
	d.frames[d.current] = frame.Clone()
}

// ReplaceFrame stores a copy of frame at index; out-of-range indexes are
// ignored.
func (d *Document) ReplaceFrame(index int, frame *Frame) {
	if index < 0 || index >= len(d.frames) {
		return
	}
	d.frames[index] = frame.Clone()
}

// AddFrame inserts a blank frame after the current one and moves to it.
func (d *Document) AddFrame() {
	blank := NewFrame()
	d.frames = append(d.frames, nil)
	copy(d.frames[d.current+2:], d.frames[d.current+1:])
	d.frames[d.current+1] = blank
	d.current++
}

// RemoveCurrent deletes the current frame. When it is the only frame it is
// cleared instead, matching the editor behavior of never having zero frames.
func (d *Document) RemoveCurrent() {
	if len(d.frames) == 1 {
		d.frames[0] = NewFrame()
		return
	}
	d.frames = append(d.frames[:d.current], d.frames[d.current+1:]...)
	if d.current >= len(d.frames) {
		d.current = len(d.frames) - 1
	}
}

// Advance steps to the next frame, wrapping at the end. Used by playback.
func (d *Document) Advance() {
	d.current = (d.current + 1) % len(d.frames)
}

// Frames returns the frame list itself. Callers must treat it as read-only.
func (d *Document) Frames() []*Frame {
	return d.frames
}

// SetFrames replaces the whole frame list, cloning each frame. An empty list
// is ignored.
func (d *Document) SetFrames(frames []*Frame, current int) {
	if len(frames) == 0 {
		return
	}
	clones := make([]*Frame, len(frames))
	for i, f := range frames {
		clones[i] = f.Clone()
	}
	d.frames = clones
	d.current = 0
	d.SetCurrent(current)
}
