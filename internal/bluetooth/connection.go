package bluetooth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/ordigital/spotled-gui/internal/logger"
	"github.com/ordigital/spotled-gui/internal/spotled"
)

const servicesResolvedPoll = 100 * time.Millisecond

// Connection is a live GATT link to one SpotLED display. It writes framed
// command packets to the device's write characteristic.
type Connection struct {
	conn       *dbus.Conn
	devicePath dbus.ObjectPath
	writeChar  dbus.ObjectPath
	log        logger.Logger
}

// Dial connects to the display at the given MAC address and resolves its
// write characteristic. The device must already be known to BlueZ, which a
// prior scan guarantees.
func Dial(ctx context.Context, conn *dbus.Conn, mac string, log logger.Logger) (*Connection, error) {
	addr, err := NormalizeAddress(mac)
	if err != nil {
		return nil, err
	}

	adapterPath, err := findAdapter(conn)
	if err != nil {
		return nil, err
	}
	path := devicePath(adapterPath, addr)
	device := conn.Object(bluezBusName, path)

	log.Info("Bluetooth", "connecting", map[string]interface{}{"address": addr})
	call := device.CallWithContext(ctx, deviceInterface+".Connect", 0)
	if call.Err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, call.Err)
	}

	c := &Connection{conn: conn, devicePath: path, log: log}
	if err := c.waitServicesResolved(ctx, device); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.findWriteCharacteristic(); err != nil {
		c.Close()
		return nil, err
	}
	log.Info("Bluetooth", "connected", map[string]interface{}{"address": addr, "characteristic": string(c.writeChar)})
	return c, nil
}

func (c *Connection) waitServicesResolved(ctx context.Context, device dbus.BusObject) error {
	for {
		var resolved dbus.Variant
		if err := device.Call(propertiesInterface+".Get", 0, deviceInterface, "ServicesResolved").Store(&resolved); err != nil {
			return fmt.Errorf("read ServicesResolved: %w", err)
		}
		if v, ok := resolved.Value().(bool); ok && v {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for service discovery: %w", ctx.Err())
		case <-time.After(servicesResolvedPoll):
		}
	}
}

// findWriteCharacteristic walks the object tree under the device looking for
// the fff2 characteristic of the fff0 service.
func (c *Connection) findWriteCharacteristic() error {
	objects, err := getManagedObjects(c.conn)
	if err != nil {
		return err
	}

	var servicePath dbus.ObjectPath
	for path, object := range objects {
		props, ok := object[serviceInterface]
		if !ok || !strings.HasPrefix(string(path), string(c.devicePath)) {
			continue
		}
		if strings.EqualFold(variantString(props, "UUID"), ServiceUUID) {
			servicePath = path
			break
		}
	}
	if servicePath == "" {
		return fmt.Errorf("service %s not found on device", ServiceUUID)
	}

	for path, object := range objects {
		props, ok := object[characteristicInterface]
		if !ok {
			continue
		}
		if svc, ok := props["Service"].Value().(dbus.ObjectPath); !ok || svc != servicePath {
			continue
		}
		if strings.EqualFold(variantString(props, "UUID"), WriteCharUUID) {
			c.writeChar = path
			return nil
		}
	}
	return fmt.Errorf("characteristic %s not found on device", WriteCharUUID)
}

// Send frames the command and writes it to the display in MTU-sized packets.
func (c *Connection) Send(ctx context.Context, cmd *spotled.Command) error {
	packets, err := cmd.Packets(spotled.DefaultMTU)
	if err != nil {
		return err
	}

	char := c.conn.Object(bluezBusName, c.writeChar)
	options := map[string]dbus.Variant{}
	for i, packet := range packets {
		call := char.CallWithContext(ctx, characteristicInterface+".WriteValue", 0, packet, options)
		if call.Err != nil {
			return fmt.Errorf("write packet %d/%d: %w", i+1, len(packets), call.Err)
		}
	}
	c.log.Debug("Bluetooth", "command sent", map[string]interface{}{"packets": len(packets)})
	return nil
}

// Close disconnects from the display. Safe to call after a failed Dial.
func (c *Connection) Close() error {
	device := c.conn.Object(bluezBusName, c.devicePath)
	if err := device.Call(deviceInterface+".Disconnect", 0).Store(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}
