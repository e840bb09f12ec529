package candbc

import (
	"errors"
	"fmt"
)

// ErrInvalidHeader indicates a Vector ASCII log is missing the `base hex|dec`
// header line.
var ErrInvalidHeader = errors.New("candbc: invalid or missing vector ascii header")

// ErrUnsupportedExtension indicates a log path's file extension does not map
// to a known format (.log or .asc).
var ErrUnsupportedExtension = errors.New("candbc: unsupported log file extension")

// SchemaError indicates a signal layout could not be derived from a
// SignalSpec: zero or out-of-range width, or a span that falls outside the
// payload capacity.
type SchemaError struct {
	Signal string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("candbc: schema error for signal %q: %s", e.Signal, e.Reason)
}

// ParseError indicates a single log line failed to parse. Stream readers
// (candump/vecascii/canlog) swallow this and move on to the next line; it is
// surfaced only from single-line helpers like candump.ParseLine.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("candbc: bad line %q: %s", e.Line, e.Reason)
}

// UnknownSignalError is returned by EncodeMessage/FrameBuilder.Set when a
// signal name is not present in the message spec.
type UnknownSignalError struct {
	Name string
}

func (e *UnknownSignalError) Error() string {
	return fmt.Sprintf("candbc: unknown signal %q", e.Name)
}
