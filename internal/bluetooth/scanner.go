package bluetooth

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/ordigital/spotled-gui/internal/logger"
)

// DefaultScanWindow bounds a discovery scan when the caller's context has no
// earlier deadline.
const DefaultScanWindow = 6 * time.Second

// Device is one discovered SpotLED display.
type Device struct {
	Address string
	Name    string
}

// Scanner discovers SpotLED displays via BlueZ adapter discovery.
type Scanner struct {
	conn *dbus.Conn
	log  logger.Logger
}

func NewScanner(conn *dbus.Conn, log logger.Logger) *Scanner {
	return &Scanner{conn: conn, log: log}
}

// Scan runs one discovery window and returns every device whose advertised
// name carries the SpotLED prefix, de-duplicated by address. The scan ends
// when ctx is done or DefaultScanWindow elapses, whichever is first.
func (s *Scanner) Scan(ctx context.Context) ([]Device, error) {
	adapterPath, err := findAdapter(s.conn)
	if err != nil {
		return nil, err
	}

	adapter := s.conn.Object(bluezBusName, adapterPath)
	s.log.Info("Bluetooth", "starting discovery", map[string]interface{}{"adapter": string(adapterPath)})
	if err := adapter.Call(adapterInterface+".StartDiscovery", 0).Store(); err != nil {
		// Discovery may already be running; cached devices are still
		// reported below.
		s.log.Warning("Bluetooth", "could not start discovery", map[string]interface{}{"error": err.Error()})
	} else {
		defer func() {
			if err := adapter.Call(adapterInterface+".StopDiscovery", 0).Store(); err != nil {
				s.log.Debug("Bluetooth", "could not stop discovery", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	window := time.NewTimer(DefaultScanWindow)
	defer window.Stop()
	select {
	case <-ctx.Done():
		if ctx.Err() == context.Canceled {
			return nil, ctx.Err()
		}
	case <-window.C:
	}

	objects, err := getManagedObjects(s.conn)
	if err != nil {
		return nil, err
	}

	devices := CollectDisplays(objects, adapterPath)
	s.log.Info("Bluetooth", "scan finished", map[string]interface{}{"found": len(devices)})
	return devices, nil
}

// CollectDisplays filters a BlueZ object dump down to SpotLED devices on the
// given adapter, sorted by address.
func CollectDisplays(objects managedObjectMap, adapterPath dbus.ObjectPath) []Device {
	seen := make(map[string]bool)
	var devices []Device
	for _, object := range objects {
		props, ok := object[deviceInterface]
		if !ok {
			continue
		}
		if adapter, ok := props["Adapter"].Value().(dbus.ObjectPath); !ok || adapter != adapterPath {
			continue
		}
		name := strings.TrimSpace(variantString(props, "Name"))
		if !strings.HasPrefix(strings.ToUpper(name), DeviceNamePrefix) {
			continue
		}
		addr := strings.ToUpper(strings.TrimSpace(variantString(props, "Address")))
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		devices = append(devices, Device{Address: addr, Name: name})
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Address < devices[j].Address })
	return devices
}
