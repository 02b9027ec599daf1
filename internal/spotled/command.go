package spotled

import (
	"encoding/binary"
	"fmt"
)

// Command ids understood by the display firmware.
const (
	CmdSendData uint8 = 0x01
)

const (
	messageMagic = 0xA5

	// DefaultMTU is the usable ATT payload of the display's write
	// characteristic.
	DefaultMTU = 20

	packetHeaderSize = 2
	maxPackets       = 255
)

// Command is one framed message for the device: magic, command id, payload
// length, payload, additive checksum.
type Command struct {
	ID      uint8
	Payload []byte
}

// NewSendDataCommand frames a serialized payload (animation, text, font) for
// transmission.
func NewSendDataCommand(payload []byte) Command {
	return Command{ID: CmdSendData, Payload: payload}
}

// Marshal renders the full message.
func (c Command) Marshal() []byte {
	msg := make([]byte, 0, 4+len(c.Payload)+1)
	msg = append(msg, messageMagic, c.ID)
	msg = binary.BigEndian.AppendUint16(msg, uint16(len(c.Payload)))
	msg = append(msg, c.Payload...)
	msg = append(msg, Checksum(c.Payload))
	return msg
}

// Checksum is the additive checksum byte the firmware verifies.
func Checksum(payload []byte) byte {
	var sum byte
	for _, b := range payload {
		sum += b
	}
	return sum
}

// Packets splits the marshaled message into write-sized chunks. Each chunk
// carries [index, total] before its data so the firmware can reassemble
// sequential writes. mtu <= 0 selects DefaultMTU.
func (c Command) Packets(mtu int) ([][]byte, error) {
	if mtu <= 0 {
		mtu = DefaultMTU
	}
	if mtu <= packetHeaderSize {
		return nil, fmt.Errorf("mtu %d leaves no room for data", mtu)
	}
	msg := c.Marshal()
	chunk := mtu - packetHeaderSize
	total := (len(msg) + chunk - 1) / chunk
	if total > maxPackets {
		return nil, fmt.Errorf("payload needs %d packets, device limit is %d", total, maxPackets)
	}

	packets := make([][]byte, 0, total)
	for i := 0; i < total; i++ {
		start := i * chunk
		end := start + chunk
		if end > len(msg) {
			end = len(msg)
		}
		pkt := make([]byte, 0, end-start+packetHeaderSize)
		pkt = append(pkt, byte(i), byte(total))
		pkt = append(pkt, msg[start:end]...)
		packets = append(packets, pkt)
	}
	return packets, nil
}
