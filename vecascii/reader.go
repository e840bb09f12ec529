package vecascii

import (
	"bufio"
	"io"
	"strings"

	"github.com/wkhan/candbc"
)

// Reader is a candbc.FrameSource over a Vector ASCII log. Construction
// consumes and validates the two header lines; Next then loops reading
// body lines until one parses or the source is exhausted, per §4.6.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	base    Base
}

// NewReader reads and validates the header from r, returning
// candbc.ErrInvalidHeader if it is missing or malformed.
func NewReader(r io.Reader) (*Reader, error) {
	closer, _ := r.(io.Closer)
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, candbc.ErrInvalidHeader
	}
	dateLine := scanner.Text()

	if !scanner.Scan() {
		return nil, candbc.ErrInvalidHeader
	}
	baseLine := scanner.Text()

	base, err := ParseHeader(dateLine, baseLine)
	if err != nil {
		return nil, err
	}

	return &Reader{scanner: scanner, closer: closer, base: base}, nil
}

// Next returns the next successfully parsed frame, skipping blank and
// unrecognized lines.
func (r *Reader) Next() (candbc.Frame, bool) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		frame, err := ParseLine(line, r.base)
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
