package candbc

// ByteOrder is the DBC signal byte order: Motorola (big-endian) or Intel
// (little-endian). See SignalLayout for the bit-numbering this controls.
type ByteOrder uint8

const (
	// BigEndian is DBC's "Motorola" byte order: StartBit names the signal's
	// most significant bit.
	BigEndian ByteOrder = iota
	// LittleEndian is DBC's "Intel" byte order: StartBit names the signal's
	// least significant bit.
	LittleEndian
)

// ValueType is whether a signal's raw bits are a two's-complement signed
// integer or a plain unsigned integer.
type ValueType uint8

const (
	// Unsigned signals use the raw bit pattern directly.
	Unsigned ValueType = iota
	// Signed signals are sign-extended from Size bits before scaling.
	Signed
)

// SignalSpec is a DBC signal description, read-only and owned by the
// Database that contains it.
type SignalSpec struct {
	Name      string
	StartBit  uint16
	Size      uint8
	ByteOrder ByteOrder
	ValueType ValueType
	Factor    float64
	Offset    float64
	Unit      string
}

// MessageSpec is a DBC message description: its identifier, declared byte
// length, and ordered signals.
type MessageSpec struct {
	Name    string
	ID      uint32
	Size    uint8
	Signals []SignalSpec
}

// GetSignal finds a signal by name via linear search, since DBC messages
// carry only a handful of signals. The bool is false when no signal with
// that name exists.
func (m *MessageSpec) GetSignal(name string) (*SignalSpec, bool) {
	for i := range m.Signals {
		if m.Signals[i].Name == name {
			return &m.Signals[i], true
		}
	}
	return nil, false
}

// Database is a read-only collection of message specs, the in-memory
// stand-in for a parsed DBC file.
type Database struct {
	Messages []MessageSpec
}

// GetMessage finds a message by name via linear search. The bool is false
// when no message with that name exists.
func (d *Database) GetMessage(name string) (*MessageSpec, bool) {
	for i := range d.Messages {
		if d.Messages[i].Name == name {
			return &d.Messages[i], true
		}
	}
	return nil, false
}

// GetMessageByID finds a message by its CAN identifier via linear search.
func (d *Database) GetMessageByID(id uint32) (*MessageSpec, bool) {
	for i := range d.Messages {
		if d.Messages[i].ID == id {
			return &d.Messages[i], true
		}
	}
	return nil, false
}
