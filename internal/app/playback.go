package app

import (
	"time"

	"fyne.io/fyne/v2"
)

// minPlaybackInterval keeps very small speeds from saturating the main
// goroutine with redraws.
const minPlaybackInterval = 10 * time.Millisecond

// playback is one running preview loop.
type playback struct {
	stop chan struct{}
	done chan struct{}
}

// HandlePlayToggle starts or stops the in-editor animation preview. While it
// runs all editing is locked and the loop advances through frames at the
// image tab speed.
func (h *Handlers) HandlePlayToggle() {
	if h.playback != nil {
		h.stopPlayback()
		return
	}
	if h.doc.FrameCount() < 2 {
		h.gui.UpdateStatus("Add more frames to preview the animation")
		return
	}

	h.cancelPlacement()
	interval := time.Duration(h.gui.ImageEffects().Speed()) * time.Millisecond
	if interval < minPlaybackInterval {
		interval = minPlaybackInterval
	}

	h.playback = &playback{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	h.gui.SetLocked(true)
	h.gui.FrameBar().SetPlaying(true)
	h.gui.UpdateStatus("Playing...")
	h.log.Debug("Playback", "started", map[string]interface{}{
		"frames":      h.doc.FrameCount(),
		"interval_ms": interval.Milliseconds(),
	})

	go h.runPlayback(h.playback, interval)
}

// runPlayback runs off the main goroutine; every frame advance hops back via
// fyne.Do.
func (h *Handlers) runPlayback(p *playback, interval time.Duration) {
	defer close(p.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			fyne.Do(func() { h.playbackTick(p) })
		}
	}
}

// playbackTick advances one frame on the main goroutine. A tick queued just
// before the loop stopped belongs to no current playback and is dropped.
func (h *Handlers) playbackTick(p *playback) {
	if h.playback != p {
		return
	}
	h.doc.Advance()
	h.refresh()
}

func (h *Handlers) stopPlayback() {
	if h.playback == nil {
		return
	}
	close(h.playback.stop)
	<-h.playback.done
	h.playback = nil

	h.gui.SetLocked(false)
	h.gui.FrameBar().SetPlaying(false)
	h.refresh()
	h.gui.UpdateStatus("Ready")
	h.log.Debug("Playback", "stopped", nil)
}
