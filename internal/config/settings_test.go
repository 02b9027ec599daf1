package config

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestSettings() *Settings {
	return NewSettings(test.NewApp().Preferences())
}

func TestMACHistoryMostRecentFirst(t *testing.T) {
	s := newTestSettings()
	assert.Empty(t, s.MACHistory())

	s.AddMAC("AA:AA:AA:AA:AA:AA")
	s.AddMAC("BB:BB:BB:BB:BB:BB")
	assert.Equal(t, []string{"BB:BB:BB:BB:BB:BB", "AA:AA:AA:AA:AA:AA"}, s.MACHistory())
}

func TestAddMACDeduplicatesAndNormalizes(t *testing.T) {
	s := newTestSettings()
	s.AddMAC("AA:AA:AA:AA:AA:AA")
	s.AddMAC("BB:BB:BB:BB:BB:BB")
	s.AddMAC(" aa:aa:aa:aa:aa:aa ")

	assert.Equal(t, []string{"AA:AA:AA:AA:AA:AA", "BB:BB:BB:BB:BB:BB"}, s.MACHistory())

	s.AddMAC("   ")
	assert.Len(t, s.MACHistory(), 2, "blank addresses are ignored")
}

func TestAddMACCapsHistory(t *testing.T) {
	s := newTestSettings()
	for i := 0; i < MaxMACHistory+5; i++ {
		s.AddMAC(fmt.Sprintf("AA:AA:AA:AA:AA:%02X", i))
	}
	history := s.MACHistory()
	assert.Len(t, history, MaxMACHistory)
	assert.Equal(t, fmt.Sprintf("AA:AA:AA:AA:AA:%02X", MaxMACHistory+4), history[0])
}

func TestProjectDir(t *testing.T) {
	s := newTestSettings()
	assert.Empty(t, s.ProjectDir())

	s.SetProjectDir("/home/user/animations")
	assert.Equal(t, "/home/user/animations", s.ProjectDir())

	s.SetProjectDir("")
	assert.Equal(t, "/home/user/animations", s.ProjectDir(), "empty dir does not clobber")
}

func TestSelectedFont(t *testing.T) {
	s := newTestSettings()
	s.SetSelectedFont("tiny.slf")
	assert.Equal(t, "tiny.slf", s.SelectedFont())
}
