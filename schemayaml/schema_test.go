package schemayaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wkhan/candbc"
)

func TestLoad_Motohawk(t *testing.T) {
	db, err := Load("testdata/motohawk.yaml")
	require.NoError(t, err)

	msg, ok := db.GetMessage("ExampleMessage")
	require.True(t, ok)
	assert.Equal(t, uint32(0x1F0), msg.ID)
	assert.Equal(t, uint8(8), msg.Size)

	temp, ok := msg.GetSignal("Temperature")
	require.True(t, ok)
	assert.Equal(t, uint8(12), temp.Size)
	assert.Equal(t, candbc.BigEndian, temp.ByteOrder)
	assert.Equal(t, candbc.Signed, temp.ValueType)
	assert.InDelta(t, 0.01, temp.Factor, 1e-12)
	assert.InDelta(t, 250.0, temp.Offset, 1e-12)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestDecode_UnknownByteOrder(t *testing.T) {
	doc := `
messages:
  - name: Bad
    id: 1
    size: 8
    signals:
      - name: Weird
        start_bit: 0
        size: 4
        byte_order: middle_endian
        value_type: unsigned
        factor: 1
        offset: 0
`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	var schemaErr *candbc.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Weird", schemaErr.Signal)
}

// TestDecode_RoundTripsThroughLayout checks that the YAML-loaded schema
// decodes the motohawk golden frame the same way the Go-literal fixture
// does, exercising schemayaml end-to-end.
func TestDecode_RoundTripsThroughLayout(t *testing.T) {
	db, err := Load("testdata/motohawk.yaml")
	require.NoError(t, err)

	msg, _ := db.GetMessage("ExampleMessage")
	frame, err := candbc.NewFrame(0x1F0, []byte{0xA5, 0xB6, 0xD9, 0, 0, 0, 0, 0}, false)
	require.NoError(t, err)

	decoded, err := candbc.DecodeMessage(frame, msg)
	require.NoError(t, err)

	temp, _ := decoded.ValueAt("Temperature")
	assert.InDelta(t, 244.14, temp, 1e-9)
}
