package candbc

// DecodedMessage holds the physical values of every signal in a message,
// decoded from one Frame.
type DecodedMessage struct {
	ID      uint32
	Name    string
	Signals []string
	Values  []float64
	Units   []string
}

// ValueAt returns the physical value for a signal name by linear search, the
// bool reporting whether that signal was present in the decoded message.
func (m DecodedMessage) ValueAt(name string) (float64, bool) {
	for i, n := range m.Signals {
		if n == name {
			return m.Values[i], true
		}
	}
	return 0, false
}

// DecodeMessage decodes every signal in msg out of frame, in declaration
// order.
func DecodeMessage(frame Frame, msg *MessageSpec) (DecodedMessage, error) {
	out := DecodedMessage{
		ID:      msg.ID,
		Name:    msg.Name,
		Signals: make([]string, 0, len(msg.Signals)),
		Values:  make([]float64, 0, len(msg.Signals)),
		Units:   make([]string, 0, len(msg.Signals)),
	}
	for _, sig := range msg.Signals {
		layout, err := NewSignalLayout(sig)
		if err != nil {
			return DecodedMessage{}, err
		}
		raw := layout.Extract(&frame.Data)
		value := DecodeRaw(raw, sig)

		out.Signals = append(out.Signals, sig.Name)
		out.Values = append(out.Values, value)
		out.Units = append(out.Units, sig.Unit)
	}
	return out, nil
}

// SignalValue is one (name, physical value) pair to encode into a message.
type SignalValue struct {
	Name  string
	Value float64
}

// EncodeMessage packs signals into a fresh frame with the given CAN
// identifier. The frame's Length is the message's declared byte size;
// signals not named in signals are left at zero. Returns an
// *UnknownSignalError naming the first signal not found in msg.
func EncodeMessage(msg *MessageSpec, signals []SignalValue, id uint32) (Frame, error) {
	frame := Frame{ID: id, Length: msg.Size}

	for _, sv := range signals {
		spec, ok := msg.GetSignal(sv.Name)
		if !ok {
			return Frame{}, &UnknownSignalError{Name: sv.Name}
		}
		layout, err := NewSignalLayout(*spec)
		if err != nil {
			return Frame{}, err
		}
		raw := EncodeRaw(sv.Value, *spec)
		layout.Pack(&frame.Data, raw)
	}

	return frame, nil
}

// FrameBuilder builds a Frame signal-by-signal. Go has no move semantics, so
// unlike a consuming Rust builder, FrameBuilder accumulates the first error
// encountered and every subsequent call becomes a no-op; call Build to
// retrieve the frame and that error.
type FrameBuilder struct {
	spec  *MessageSpec
	frame Frame
	err   error
}

// NewFrameBuilder starts building a frame for msg with the given CAN
// identifier; Length is pre-set to the message's declared byte size.
func NewFrameBuilder(msg *MessageSpec, id uint32) *FrameBuilder {
	return &FrameBuilder{
		spec:  msg,
		frame: Frame{ID: id, Length: msg.Size},
	}
}

// Set packs one signal by name. If name is not found in the message spec,
// the builder records an *UnknownSignalError and further calls are ignored.
func (b *FrameBuilder) Set(name string, value float64) *FrameBuilder {
	if b.err != nil {
		return b
	}
	spec, ok := b.spec.GetSignal(name)
	if !ok {
		b.err = &UnknownSignalError{Name: name}
		return b
	}
	layout, err := NewSignalLayout(*spec)
	if err != nil {
		b.err = err
		return b
	}
	raw := EncodeRaw(value, *spec)
	layout.Pack(&b.frame.Data, raw)
	return b
}

// Timestamp sets the frame's timestamp.
func (b *FrameBuilder) Timestamp(ts float64) *FrameBuilder {
	if b.err == nil {
		b.frame.Timestamp = ts
	}
	return b
}

// Channel sets the frame's channel name.
func (b *FrameBuilder) Channel(ch string) *FrameBuilder {
	if b.err == nil {
		b.frame.Channel = ch
	}
	return b
}

// Build returns the finished frame, or the first error recorded by Set.
func (b *FrameBuilder) Build() (Frame, error) {
	if b.err != nil {
		return Frame{}, b.err
	}
	return b.frame, nil
}
