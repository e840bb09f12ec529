// Package canlog dispatches between the candump and Vector ASCII log
// formats, presenting either as a single candbc.FrameSource.
package canlog

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wkhan/candbc"
	"github.com/wkhan/candbc/candump"
	"github.com/wkhan/candbc/internal/utils"
	"github.com/wkhan/candbc/vecascii"
)

type format int

const (
	formatCandump format = iota
	formatVecASCII
)

// LogReader is a format-dispatching candbc.FrameSource. The format is
// chosen once, at construction, by file extension or by attempting the
// Vector ASCII header.
type LogReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	format  format
	base    vecascii.Base
	logger  *log.Logger
}

// Open builds a LogReader from a filesystem path. ".log" selects candump,
// ".asc" selects Vector ASCII; any other extension is
// candbc.ErrUnsupportedExtension.
func Open(path string, logger *log.Logger) (*LogReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".log":
		return &LogReader{scanner: bufio.NewScanner(f), closer: f, format: formatCandump, logger: logger}, nil
	case ".asc":
		r, err := newASCIIReader(f, f, logger)
		if err != nil {
			f.Close()
			return nil, err
		}
		return r, nil
	default:
		f.Close()
		return nil, candbc.ErrUnsupportedExtension
	}
}

// FromBuffer auto-detects the format of buf by attempting to read the
// Vector ASCII header; on failure it assumes candump.
func FromBuffer(buf []byte, logger *log.Logger) *LogReader {
	if r, err := newASCIIReader(bytes.NewReader(buf), nil, logger); err == nil {
		return r
	}
	return &LogReader{scanner: bufio.NewScanner(bytes.NewReader(buf)), format: formatCandump, logger: logger}
}

func newASCIIReader(r io.Reader, closer io.Closer, logger *log.Logger) (*LogReader, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, candbc.ErrInvalidHeader
	}
	dateLine := scanner.Text()

	if !scanner.Scan() {
		return nil, candbc.ErrInvalidHeader
	}
	baseLine := scanner.Text()

	base, err := vecascii.ParseHeader(dateLine, baseLine)
	if err != nil {
		return nil, err
	}

	return &LogReader{scanner: scanner, closer: closer, format: formatVecASCII, base: base, logger: logger}, nil
}

// Next reads and parses lines until one succeeds, skipping blank lines and
// logging (if a logger is attached) any that fail to parse, and returns
// false once the source is exhausted.
func (r *LogReader) Next() (candbc.Frame, bool) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var frame candbc.Frame
		var err error
		if r.format == formatCandump {
			frame, err = candump.ParseLine(line)
		} else {
			frame, err = vecascii.ParseLine(line, r.base)
		}
		if err != nil {
			if r.logger != nil {
				r.logger.Debug("skipping unparseable log line", "line", utils.FormatSpaces([]byte(line)), "error", err)
			}
			continue
		}
		return frame, true
	}
	return candbc.Frame{}, false
}

// Close closes the underlying source, if any.
func (r *LogReader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

var _ candbc.FrameSource = (*LogReader)(nil)
