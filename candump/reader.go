package candump

import (
	"bufio"
	"io"
	"strings"

	"github.com/wkhan/candbc"
)

// Reader is a candbc.FrameSource over a candump log. Lines that fail to
// parse are skipped silently, matching the source behaviour recorded as
// the default in the open questions around stream error handling.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewReader wraps r as a candump frame source. If r implements io.Closer,
// Close on the Reader closes it too.
func NewReader(r io.Reader) *Reader {
	closer, _ := r.(io.Closer)
	return &Reader{scanner: bufio.NewScanner(r), closer: closer}
}

// Next returns the next successfully parsed frame, skipping blank and
// unparseable lines. The bool is false once the underlying source is
// exhausted.
func (r *Reader) Next() (candbc.Frame, bool) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		frame, err := ParseLine(line)
		if err != nil {
			continue
		}
		return frame, true
	}
	return candbc.Frame{}, false
}

// Close closes the underlying reader, if it is closable.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

var _ candbc.FrameSource = (*Reader)(nil)
