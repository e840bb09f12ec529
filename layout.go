package candbc

// BitSpan describes one contiguous run of bits within a single payload byte:
// take NumBits consecutive bits starting at BitOffset in data[ByteIndex], and
// place them at ValueShift in the raw 64-bit value.
type BitSpan struct {
	ByteIndex  int
	BitOffset  uint8
	NumBits    uint8
	ValueShift uint8
}

// SignalLayout is the precomputed mapping from a DBC signal's bit position
// to frame data bytes. Built once via NewSignalLayout from a SignalSpec; the
// same spans drive both Extract (decode) and Pack (encode), so the two are
// inverses by construction.
type SignalLayout struct {
	Spans []BitSpan
	Width uint8
}

// NewSignalLayout builds a layout from a DBC signal specification. This is
// the single source of truth for how DBC StartBit + ByteOrder maps to byte
// and bit positions in the 64-byte payload.
//
// DBC numbers the 64 payload bits so that bit 8*b+k is bit k of byte b, with
// k=0 the least significant bit of that byte. For LittleEndian, StartBit is
// the signal's least significant bit and spans are gathered scanning upward
// within a byte (low to high); for BigEndian, StartBit is the signal's most
// significant bit and spans are gathered scanning downward (high to low).
func NewSignalLayout(spec SignalSpec) (SignalLayout, error) {
	if spec.Size == 0 || spec.Size > 64 {
		return SignalLayout{}, &SchemaError{Signal: spec.Name, Reason: "signal width must be 1..=64 bits"}
	}

	var spans []BitSpan
	byteIndex := int(spec.StartBit / 8)
	bitIndex := uint8(spec.StartBit % 8)
	remaining := spec.Size

	switch spec.ByteOrder {
	case BigEndian:
		for remaining > 0 {
			numBits := bitIndex + 1
			if uint8(numBits) > remaining {
				numBits = remaining
			}
			bitOffset := bitIndex + 1 - numBits
			remaining -= numBits
			if byteIndex >= MaxPayloadLen {
				return SignalLayout{}, &SchemaError{Signal: spec.Name, Reason: "signal span falls outside the 64-byte payload"}
			}
			spans = append(spans, BitSpan{
				ByteIndex:  byteIndex,
				BitOffset:  bitOffset,
				NumBits:    numBits,
				ValueShift: remaining,
			})
			byteIndex++
			bitIndex = 7
		}
	case LittleEndian:
		var valueShift uint8
		for remaining > 0 {
			numBits := 8 - bitIndex
			if numBits > remaining {
				numBits = remaining
			}
			if byteIndex >= MaxPayloadLen {
				return SignalLayout{}, &SchemaError{Signal: spec.Name, Reason: "signal span falls outside the 64-byte payload"}
			}
			spans = append(spans, BitSpan{
				ByteIndex:  byteIndex,
				BitOffset:  bitIndex,
				NumBits:    numBits,
				ValueShift: valueShift,
			})
			valueShift += numBits
			remaining -= numBits
			byteIndex++
			bitIndex = 0
		}
	}

	return SignalLayout{Spans: spans, Width: spec.Size}, nil
}

// Extract reads the raw unsigned value from the payload bytes.
func (l SignalLayout) Extract(data *[MaxPayloadLen]byte) uint64 {
	var result uint64
	for _, span := range l.Spans {
		mask := uint8((uint16(1) << span.NumBits) - 1)
		bits := (data[span.ByteIndex] >> span.BitOffset) & mask
		result |= uint64(bits) << span.ValueShift
	}
	return result
}

// Pack writes a raw unsigned value into the payload bytes, clearing the
// signal's target bits first so that packing multiple signals into the same
// frame composes without corrupting each other.
func (l SignalLayout) Pack(data *[MaxPayloadLen]byte, raw uint64) {
	for _, span := range l.Spans {
		mask := uint8((uint16(1) << span.NumBits) - 1)
		bits := uint8(raw>>span.ValueShift) & mask
		data[span.ByteIndex] &^= mask << span.BitOffset
		data[span.ByteIndex] |= bits << span.BitOffset
	}
}
