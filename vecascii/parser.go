// Package vecascii parses the Vector ASCII (.asc) log format emitted by
// CANoe/CANalyzer: a two-line header followed by classical and CAN FD body
// lines.
package vecascii

import (
	"strconv"
	"strings"

	"github.com/wkhan/candbc"
)

// Base is the numeric base Vector used to print payload byte tokens,
// recorded from the header and carried across every body line in the file.
type Base int

const (
	// Hex means payload bytes are printed as two hex digits, e.g. "FF".
	Hex Base = iota
	// Dec means payload bytes are printed as decimal, e.g. "255".
	Dec
)

// ParseHeader reads the two header lines ("date ...", "base hex|dec
// timestamps absolute|relative") and returns the recorded base. The date
// line's content is discarded; any header line that does not start with
// "base" in the expected position is candbc.ErrInvalidHeader.
func ParseHeader(dateLine, baseLine string) (Base, error) {
	if !strings.HasPrefix(strings.TrimSpace(dateLine), "date") {
		return 0, candbc.ErrInvalidHeader
	}

	fields := strings.Fields(baseLine)
	if len(fields) < 2 || fields[0] != "base" {
		return 0, candbc.ErrInvalidHeader
	}
	switch fields[1] {
	case "hex":
		return Hex, nil
	case "dec":
		return Dec, nil
	default:
		return 0, candbc.ErrInvalidHeader
	}
}

// ParseLine parses one body line (classical or CAN FD, given the header's
// base) into a Frame. Lines that are neither form return a *candbc.ParseError.
func ParseLine(line string, base Base) (candbc.Frame, error) {
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[1] == "CANFD" {
		return parseFD(line, fields, base)
	}
	return parseClassical(line, fields, base)
}

func parseDirection(text string) (candbc.Direction, bool) {
	switch text {
	case "Rx":
		return candbc.Received, true
	case "Tx":
		return candbc.Transmitted, true
	default:
		return 0, false
	}
}

func parseID(text string) (id uint32, err error) {
	text = strings.TrimSuffix(text, "x")
	v, err := strconv.ParseUint(text, 16, 32)
	return uint32(v), err
}

func parseDataTokens(tokens []string, base Base) ([]byte, error) {
	data := make([]byte, len(tokens))
	for i, tok := range tokens {
		var v uint64
		var err error
		if base == Hex {
			v, err = strconv.ParseUint(tok, 16, 8)
		} else {
			v, err = strconv.ParseUint(tok, 10, 8)
		}
		if err != nil {
			return nil, err
		}
		data[i] = byte(v)
	}
	return data, nil
}

// parseClassical handles: timestamp channel id_text direction kind [dlc data… extras…]
func parseClassical(line string, fields []string, base Base) (candbc.Frame, error) {
	if len(fields) < 5 {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "too few tokens for a classical ascii line"}
	}

	ts, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad timestamp: " + err.Error()}
	}
	channel := fields[1]

	id, err := parseID(fields[2])
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad id: " + err.Error()}
	}

	dir, ok := parseDirection(fields[3])
	if !ok {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "direction must be Rx or Tx"}
	}

	kind := fields[4]
	var data []byte
	switch kind {
	case "r":
		// remote frame: no payload
	case "d":
		if len(fields) < 6 {
			return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "missing dlc token"}
		}
		dlc, err := strconv.Atoi(fields[5])
		if err != nil || dlc < 0 {
			return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad dlc"}
		}
		if len(fields) < 6+dlc {
			return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "fewer data tokens than dlc"}
		}
		data, err = parseDataTokens(fields[6:6+dlc], base)
		if err != nil {
			return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad data byte: " + err.Error()}
		}
	default:
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "kind must be 'r' or 'd'"}
	}

	frame, err := candbc.NewFrame(id, data, false)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: err.Error()}
	}
	frame.Timestamp = ts
	frame.Channel = channel
	frame.Dir = dir
	return frame, nil
}

// parseFD handles: timestamp CANFD channel direction id_text flag1 flag2 kind dlc data… extras…
// Token positions are positional: dlc is fields[8], data starts at fields[9].
func parseFD(line string, fields []string, base Base) (candbc.Frame, error) {
	if len(fields) < 9 {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "too few tokens for an fd ascii line"}
	}

	ts, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad timestamp: " + err.Error()}
	}
	channel := fields[2]

	dir, ok := parseDirection(fields[3])
	if !ok {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "direction must be Rx or Tx"}
	}

	id, err := parseID(fields[4])
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad id: " + err.Error()}
	}

	kind := fields[7]
	if kind != "d" {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "fd remote frames are not defined"}
	}

	dlc, err := strconv.Atoi(fields[8])
	if err != nil || dlc < 0 {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad dlc"}
	}
	if len(fields) < 9+dlc {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "fewer data tokens than dlc"}
	}
	data, err := parseDataTokens(fields[9:9+dlc], base)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: "bad data byte: " + err.Error()}
	}

	frame, err := candbc.NewFrame(id, data, true)
	if err != nil {
		return candbc.Frame{}, &candbc.ParseError{Line: line, Reason: err.Error()}
	}
	frame.Timestamp = ts
	frame.Channel = channel
	frame.Dir = dir
	return frame, nil
}
