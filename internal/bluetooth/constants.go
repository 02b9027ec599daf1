package bluetooth

const (
	bluezBusName = "org.bluez"

	propertiesInterface     = "org.freedesktop.DBus.Properties"
	adapterInterface        = "org.bluez.Adapter1"
	deviceInterface         = "org.bluez.Device1"
	serviceInterface        = "org.bluez.GattService1"
	characteristicInterface = "org.bluez.GattCharacteristic1"

	// SpotLED displays advertise their name with this prefix.
	DeviceNamePrefix = "SPOTLED_"

	// GATT UUIDs of the display's vendor service.
	ServiceUUID    = "0000fff0-0000-1000-8000-00805f9b34fb"
	NotifyCharUUID = "0000fff1-0000-1000-8000-00805f9b34fb"
	WriteCharUUID  = "0000fff2-0000-1000-8000-00805f9b34fb"
)
