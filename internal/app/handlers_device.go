package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ordigital/spotled-gui/internal/bluetooth"
	"github.com/ordigital/spotled-gui/internal/fonts"
	"github.com/ordigital/spotled-gui/internal/models"
	"github.com/ordigital/spotled-gui/internal/spotled"
)

const (
	scanTimeout = 8 * time.Second
	sendTimeout = 20 * time.Second
)

// HandleScan runs a discovery scan and fills the device dropdown.
func (h *Handlers) HandleScan() {
	if h.busy {
		return
	}
	h.busy = true
	h.gui.DeviceBar().SetBusy(true)
	h.gui.UpdateStatus("Scanning for displays...")

	go func() {
		devices, err := h.scan()
		fyne.Do(func() {
			h.busy = false
			h.gui.DeviceBar().SetBusy(false)
			if err != nil {
				h.gui.UpdateStatus("Scan failed")
				h.showError("Scan Error", err)
				return
			}
			h.applyScanResults(devices)
		})
	}()
}

// HandleStartupScan is the silent variant run shortly after launch. Failures
// only reach the log.
func (h *Handlers) HandleStartupScan() {
	devices, err := h.scan()
	if err != nil {
		h.log.Debug("Bluetooth", "startup scan failed", map[string]interface{}{"error": err.Error()})
		return
	}
	fyne.Do(func() {
		if h.busy {
			return
		}
		h.applyScanResults(devices)
	})
}

// scan runs off the main goroutine.
func (h *Handlers) scan() ([]bluetooth.Device, error) {
	conn, err := bluetooth.SystemBus()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()
	return bluetooth.NewScanner(conn, h.log).Scan(ctx)
}

func (h *Handlers) applyScanResults(devices []bluetooth.Device) {
	if len(devices) == 0 {
		h.gui.UpdateStatus("No displays found")
		return
	}

	addresses := make([]string, 0, len(devices))
	for _, d := range devices {
		addresses = append(addresses, d.Address)
	}
	for _, remembered := range h.settings.MACHistory() {
		if !contains(addresses, remembered) {
			addresses = append(addresses, remembered)
		}
	}
	h.gui.DeviceBar().SetHistory(addresses)
	if h.gui.DeviceBar().Address() == "" {
		h.gui.DeviceBar().SetAddress(devices[0].Address)
	}
	h.gui.UpdateStatus(fmt.Sprintf("Found %d display(s)", len(devices)))
}

// HandleSend pushes the active tab's content to the selected display.
func (h *Handlers) HandleSend() {
	if h.busy || h.refusePlacement() {
		return
	}
	mac, err := bluetooth.NormalizeAddress(h.gui.DeviceBar().Address())
	if err != nil {
		h.showError("Send Error", err)
		return
	}

	push, err := h.buildPush()
	if err != nil {
		h.showError("Send Error", err)
		return
	}

	h.settings.AddMAC(mac)
	h.gui.DeviceBar().SetHistory(h.settings.MACHistory())

	h.busy = true
	h.gui.DeviceBar().SetBusy(true)
	h.gui.UpdateStatus("Sending to " + mac + "...")

	go func() {
		err := h.push(mac, push)
		fyne.Do(func() {
			h.busy = false
			h.gui.DeviceBar().SetBusy(false)
			if err != nil {
				h.gui.UpdateStatus("Send failed")
				h.showError("Send Error", err)
				return
			}
			h.gui.UpdateStatus("Sent to " + mac)
			dialog.ShowInformation("Send", "Sent to "+mac, h.window)
		})
	}()
}

// pushJob captures everything the send goroutine needs so it never touches
// GUI state.
type pushJob struct {
	frames [][]string
	text   string
	speed  int
	effect spotled.Effect
	font   *fonts.Font
}

func (h *Handlers) buildPush() (*pushJob, error) {
	if h.gui.SelectedTab() == models.TabText {
		panel := h.gui.TextPanel()
		text := strings.TrimRight(panel.Text(), "\n")
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("there is no text to send")
		}
		if !panel.TwoLines() {
			text = strings.ReplaceAll(text, "\n", " ")
		}
		return &pushJob{
			text:   text,
			speed:  panel.EffectRow().Speed(),
			effect: panel.EffectRow().Effect(),
			font:   h.library.Get(panel.SelectedFontID()),
		}, nil
	}

	return &pushJob{
		frames: models.EncodeFrames(h.doc.Frames()),
		speed:  h.gui.ImageEffects().Speed(),
		effect: h.gui.ImageEffects().Effect(),
	}, nil
}

// push runs off the main goroutine.
func (h *Handlers) push(mac string, job *pushJob) error {
	conn, err := bluetooth.SystemBus()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	link, err := bluetooth.Dial(ctx, conn, mac, h.log)
	if err != nil {
		return err
	}
	defer link.Close()

	sender := bluetooth.NewSender(link, h.log)
	if job.frames != nil {
		return sender.SendAnimation(ctx, job.frames, models.GridWidth, models.GridHeight, job.speed, job.effect)
	}
	return sender.SendText(ctx, job.text, job.speed, job.effect, job.font)
}

func (h *Handlers) showError(title string, err error) {
	h.log.Error("GUI", err, map[string]interface{}{"dialog": title})
	dialog.ShowError(err, h.window)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
