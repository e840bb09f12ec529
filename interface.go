package candbc

// Sink accepts frames for writing to a log format and flushes them to the
// underlying destination. Implementations: candump.Writer.
type Sink interface {
	Write(Frame) error
	Flush() error
}

// FrameSource is a lazy, finite sequence of frames read from a log. Next
// returns (Frame{}, false) at the end of the sequence; internal parse
// errors are swallowed and do not end the sequence early (see ParseError
// and the candbc/canlog package). Implementations: candump.Reader,
// vecascii.Reader, canlog.LogReader.
type FrameSource interface {
	Next() (Frame, bool)
	Close() error
}
