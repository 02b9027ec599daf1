package spotled

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandMarshal(t *testing.T) {
	cmd := NewSendDataCommand([]byte{0x10, 0x20, 0x30})
	msg := cmd.Marshal()

	assert.Equal(t, []byte{
		0xA5, CmdSendData,
		0x00, 0x03, // payload length
		0x10, 0x20, 0x30,
		0x60, // checksum
	}, msg)
}

func TestChecksumWraps(t *testing.T) {
	assert.Equal(t, byte(0), Checksum(nil))
	assert.Equal(t, byte(0xFE), Checksum([]byte{0xFF, 0xFF}))
}

func TestCommandPacketsSingle(t *testing.T) {
	cmd := NewSendDataCommand([]byte{1, 2, 3})
	packets, err := cmd.Packets(DefaultMTU)
	require.NoError(t, err)
	require.Len(t, packets, 1)

	assert.Equal(t, byte(0), packets[0][0], "index")
	assert.Equal(t, byte(1), packets[0][1], "total")
	assert.Equal(t, cmd.Marshal(), packets[0][2:])
}

func TestCommandPacketsChunking(t *testing.T) {
	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i)
	}
	cmd := NewSendDataCommand(payload)
	msg := cmd.Marshal()

	packets, err := cmd.Packets(DefaultMTU)
	require.NoError(t, err)

	// 105 message bytes over 18-byte chunks.
	require.Len(t, packets, 6)
	var reassembled []byte
	for i, pkt := range packets {
		assert.Equal(t, byte(i), pkt[0])
		assert.Equal(t, byte(len(packets)), pkt[1])
		assert.LessOrEqual(t, len(pkt), DefaultMTU)
		reassembled = append(reassembled, pkt[2:]...)
	}
	assert.True(t, bytes.Equal(msg, reassembled))
}

func TestCommandPacketsExactBoundary(t *testing.T) {
	// Message of exactly one chunk: 18 bytes means a 13-byte payload
	// (magic + id + length + checksum add 5).
	cmd := NewSendDataCommand(make([]byte, 13))
	packets, err := cmd.Packets(DefaultMTU)
	require.NoError(t, err)
	assert.Len(t, packets, 1)

	cmd = NewSendDataCommand(make([]byte, 14))
	packets, err = cmd.Packets(DefaultMTU)
	require.NoError(t, err)
	assert.Len(t, packets, 2)
	assert.Len(t, packets[1], 3)
}

func TestCommandPacketsMTUErrors(t *testing.T) {
	cmd := NewSendDataCommand([]byte{1})

	_, err := cmd.Packets(2)
	require.Error(t, err)

	packets, err := cmd.Packets(0)
	require.NoError(t, err, "non-positive mtu selects the default")
	assert.Len(t, packets, 1)
}

func TestCommandPacketsTooLarge(t *testing.T) {
	cmd := NewSendDataCommand(make([]byte, 18*256))
	_, err := cmd.Packets(DefaultMTU)
	require.Error(t, err)
}
