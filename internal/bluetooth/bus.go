// Package bluetooth talks to SpotLED displays through BlueZ on the system
// D-Bus: adapter discovery, device scanning and chunked GATT writes.
package bluetooth

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

type managedObjectMap = map[dbus.ObjectPath]map[string]map[string]dbus.Variant

// SystemBus opens a connection to the system D-Bus where BlueZ lives.
func SystemBus() (*dbus.Conn, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system D-Bus: %w", err)
	}
	return conn, nil
}

func getManagedObjects(conn *dbus.Conn) (managedObjectMap, error) {
	var objects managedObjectMap
	root := conn.Object(bluezBusName, "/")
	err := root.Call("org.freedesktop.DBus.ObjectManager.GetManagedObjects", 0).Store(&objects)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate BlueZ objects: %w", err)
	}
	return objects, nil
}

func findAdapter(conn *dbus.Conn) (dbus.ObjectPath, error) {
	objects, err := getManagedObjects(conn)
	if err != nil {
		return "", err
	}
	for path, object := range objects {
		if _, ok := object[adapterInterface]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("bluetooth adapter not found")
}

func variantString(props map[string]dbus.Variant, key string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

func variantBool(props map[string]dbus.Variant, key string) bool {
	if v, ok := props[key]; ok {
		if b, ok := v.Value().(bool); ok {
			return b
		}
	}
	return false
}
