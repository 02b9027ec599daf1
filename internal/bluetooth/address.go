package bluetooth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/godbus/dbus/v5"
)

var macPattern = regexp.MustCompile(`^([0-9A-F]{2}:){5}[0-9A-F]{2}$`)

// NormalizeAddress upper-cases and trims a MAC address and validates its
// shape.
func NormalizeAddress(mac string) (string, error) {
	norm := strings.ToUpper(strings.TrimSpace(mac))
	if norm == "" {
		return "", fmt.Errorf("device address is empty")
	}
	if !macPattern.MatchString(norm) {
		return "", fmt.Errorf("invalid device address %q", mac)
	}
	return norm, nil
}

// devicePath is the BlueZ object path convention for a device under an
// adapter: <adapter>/dev_AA_BB_CC_DD_EE_FF.
func devicePath(adapter dbus.ObjectPath, mac string) dbus.ObjectPath {
	return dbus.ObjectPath(string(adapter) + "/dev_" + strings.ReplaceAll(mac, ":", "_"))
}
