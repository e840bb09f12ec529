package candbc

import "encoding/hex"

// frameFromHex builds a classical Frame the way a candump line would,
// without depending on the candump package from the root package's tests.
func frameFromHex(id uint32, dataHex string) Frame {
	data, err := hex.DecodeString(dataHex)
	if err != nil {
		panic(err)
	}
	f, err := NewFrame(id, data, false)
	if err != nil {
		panic(err)
	}
	return f
}

// motohawkDB mirrors the cantools "motohawk" fixture: one message, three
// signals packed into byte 0.
func motohawkDB() *Database {
	return &Database{
		Messages: []MessageSpec{
			{
				Name: "ExampleMessage",
				ID:   0x1F0,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "Temperature", StartBit: 0, Size: 12, ByteOrder: BigEndian, ValueType: Signed, Factor: 0.01, Offset: 250, Unit: "degC"},
					{Name: "AverageRadius", StartBit: 6, Size: 6, ByteOrder: BigEndian, ValueType: Unsigned, Factor: 0.1, Offset: 0, Unit: "m"},
					{Name: "Enable", StartBit: 7, Size: 1, ByteOrder: BigEndian, ValueType: Unsigned, Factor: 1, Offset: 0, Unit: ""},
				},
			},
		},
	}
}

// signedDB mirrors the cantools "signed" fixture: messages exercising
// signed decoding across widths 3, 7, 8, 9, 10, 32, 33, 63 and 64 in both
// byte orders. Message378910/Message64/Message64big and their bit
// positions reproduce the golden table; Message32/32big/33/33big/63/63big
// are supplemented fixtures for the widths the golden table does not
// cover, against the same payload. No test reads them.
func signedDB() *Database {
	return &Database{
		Messages: []MessageSpec{
			{
				Name: "Message378910",
				ID:   0x00A,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s8big", StartBit: 0, Size: 8, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s7big", StartBit: 7, Size: 7, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s9", StartBit: 17, Size: 9, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s8", StartBit: 26, Size: 8, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s3big", StartBit: 36, Size: 3, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s3", StartBit: 37, Size: 3, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s10big", StartBit: 40, Size: 10, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
					{Name: "s7", StartBit: 56, Size: 7, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message64",
				ID:   0x002,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s64", StartBit: 0, Size: 64, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message64big",
				ID:   0x003,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s64big", StartBit: 7, Size: 64, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message32",
				ID:   0x004,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s32", StartBit: 0, Size: 32, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message32big",
				ID:   0x005,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s32big", StartBit: 7, Size: 32, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message33",
				ID:   0x006,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s33", StartBit: 0, Size: 33, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message33big",
				ID:   0x007,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s33big", StartBit: 7, Size: 33, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message63",
				ID:   0x008,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s63", StartBit: 0, Size: 63, ByteOrder: LittleEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
			{
				Name: "Message63big",
				ID:   0x009,
				Size: 8,
				Signals: []SignalSpec{
					{Name: "s63big", StartBit: 7, Size: 63, ByteOrder: BigEndian, ValueType: Signed, Factor: 1, Offset: 0},
				},
			},
		},
	}
}

// signedGoldenData is the payload shared by Message378910, Message64,
// Message32(big), Message33(big) and Message63(big). Message64big uses a
// distinct payload ("8000000000000000") to hit its own golden value.
const signedGoldenData = "11223344FF667788"
