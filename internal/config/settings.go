// Package config persists user settings through the Fyne preferences store.
package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

const (
	keyMACHistory   = "device.mac_history"
	keyProjectDir   = "project.last_dir"
	keySelectedFont = "text.font"

	// MaxMACHistory caps the remembered device list.
	MaxMACHistory = 20
)

// Settings wraps the application preference store.
type Settings struct {
	prefs fyne.Preferences
}

func NewSettings(prefs fyne.Preferences) *Settings {
	return &Settings{prefs: prefs}
}

// MACHistory returns remembered device addresses, most recent first.
func (s *Settings) MACHistory() []string {
	return s.prefs.StringList(keyMACHistory)
}

// AddMAC moves the address to the front of the history, dropping duplicates
// and trimming the list to MaxMACHistory.
func (s *Settings) AddMAC(mac string) {
	mac = strings.ToUpper(strings.TrimSpace(mac))
	if mac == "" {
		return
	}
	history := []string{mac}
	for _, prev := range s.MACHistory() {
		if prev == mac {
			continue
		}
		history = append(history, prev)
		if len(history) == MaxMACHistory {
			break
		}
	}
	s.prefs.SetStringList(keyMACHistory, history)
}

// ProjectDir is the directory of the last opened or saved project.
func (s *Settings) ProjectDir() string {
	return s.prefs.String(keyProjectDir)
}

func (s *Settings) SetProjectDir(dir string) {
	if dir == "" {
		return
	}
	s.prefs.SetString(keyProjectDir, dir)
}

// SelectedFont is the id of the font chosen for text sending.
func (s *Settings) SelectedFont() string {
	return s.prefs.String(keySelectedFont)
}

func (s *Settings) SetSelectedFont(id string) {
	s.prefs.SetString(keySelectedFont, id)
}
