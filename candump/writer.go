package candump

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/wkhan/candbc"
)

// FormatLine renders a frame as a candump line: uppercase hex, a minimum
// of 3 hex digits for the id, exactly 6 decimal digits of timestamp, and
// the FD flags digit hardcoded to 0. Formatting the frame ParseLine returns
// for a line already in this normalized form reproduces that line exactly.
func FormatLine(f candbc.Frame) string {
	sep := "#"
	if f.IsFD {
		sep = "##0"
	}
	idHex := fmt.Sprintf("%03X", f.ID)
	dataHex := strings.ToUpper(hex.EncodeToString(f.Bytes()))
	return fmt.Sprintf("(%.6f) %s %s%s%s", f.Timestamp, f.Channel, idHex, sep, dataHex)
}

// Writer is a candbc.Sink that appends candump lines to an underlying
// writer, one per Write call, buffering until Flush.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w for candump output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write formats and buffers one frame, followed by a newline.
func (wr *Writer) Write(f candbc.Frame) error {
	_, err := wr.w.WriteString(FormatLine(f) + "\n")
	return err
}

// Flush pushes any buffered lines to the underlying writer.
func (wr *Writer) Flush() error {
	return wr.w.Flush()
}

var _ candbc.Sink = (*Writer)(nil)
