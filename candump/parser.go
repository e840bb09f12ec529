// Package candump parses and writes the Linux can-utils textual log
// format: classical frames with a single `#` separator, CAN FD frames with
// `##`.
package candump

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/wkhan/candbc"
)

// ParseLine parses one candump log line, classical or FD. Whitespace
// separates the timestamp, channel and id#data token; the id#data token
// itself carries no internal whitespace.
func ParseLine(line string) (candbc.Frame, error) {
	raw := line
	line = strings.TrimRight(line, "\r\n")

	if len(line) == 0 || line[0] != '(' {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "missing leading '('"}
	}
	closeParen := strings.IndexByte(line, ')')
	if closeParen < 0 {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "missing closing ')'"}
	}

	ts, err := strconv.ParseFloat(line[1:closeParen], 64)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "bad timestamp: " + err.Error()}
	}

	fields := strings.Fields(line[closeParen+1:])
	if len(fields) != 2 {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "expected channel and id#data tokens"}
	}
	channel, idData := fields[0], fields[1]

	isFD := false
	var idHex, dataHex string
	if sep := strings.Index(idData, "##"); sep >= 0 {
		isFD = true
		idHex = idData[:sep]
		rest := idData[sep+2:]
		if len(rest) < 1 {
			return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "missing fd flags digit"}
		}
		dataHex = rest[1:] // one flags hex digit, discarded
	} else if sep := strings.IndexByte(idData, '#'); sep >= 0 {
		idHex = idData[:sep]
		dataHex = idData[sep+1:]
	} else {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "missing '#' separator"}
	}

	if len(idHex) == 0 || len(idHex) > 8 {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "id must be 1-8 hex digits"}
	}
	if len(dataHex)%2 != 0 || len(dataHex) > 128 {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "data must be 0-128 hex digits of even length"}
	}

	id, err := strconv.ParseUint(idHex, 16, 32)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "bad id: " + err.Error()}
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: "bad data: " + err.Error()}
	}

	frame, err := candbc.NewFrame(uint32(id), data, isFD)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: raw, Reason: err.Error()}
	}
	frame.Timestamp = ts
	frame.Channel = channel
	return frame, nil
}
