// Package schemayaml loads a candbc.Database from a small YAML schema
// document. DBC text parsing itself is an external collaborator; this
// package exists so tests and the demo CLI can describe a schema as data
// instead of Go literals.
package schemayaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wkhan/candbc"
)

type signalYAML struct {
	Name      string  `yaml:"name"`
	StartBit  uint16  `yaml:"start_bit"`
	Size      uint8   `yaml:"size"`
	ByteOrder string  `yaml:"byte_order"`
	ValueType string  `yaml:"value_type"`
	Factor    float64 `yaml:"factor"`
	Offset    float64 `yaml:"offset"`
	Unit      string  `yaml:"unit"`
}

type messageYAML struct {
	Name    string       `yaml:"name"`
	ID      uint32       `yaml:"id"`
	Size    uint8        `yaml:"size"`
	Signals []signalYAML `yaml:"signals"`
}

type databaseYAML struct {
	Messages []messageYAML `yaml:"messages"`
}

// Load reads a YAML schema file at path and converts it to a candbc.Database.
func Load(path string) (*candbc.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML schema document from r.
func Decode(r io.Reader) (*candbc.Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc databaseYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return toDatabase(doc)
}

func toDatabase(doc databaseYAML) (*candbc.Database, error) {
	db := &candbc.Database{Messages: make([]candbc.MessageSpec, 0, len(doc.Messages))}

	for _, m := range doc.Messages {
		spec := candbc.MessageSpec{
			Name:    m.Name,
			ID:      m.ID,
			Size:    m.Size,
			Signals: make([]candbc.SignalSpec, 0, len(m.Signals)),
		}
		for _, s := range m.Signals {
			order, err := parseByteOrder(s.ByteOrder)
			if err != nil {
				return nil, &candbc.SchemaError{Signal: s.Name, Reason: err.Error()}
			}
			valueType, err := parseValueType(s.ValueType)
			if err != nil {
				return nil, &candbc.SchemaError{Signal: s.Name, Reason: err.Error()}
			}
			spec.Signals = append(spec.Signals, candbc.SignalSpec{
				Name:      s.Name,
				StartBit:  s.StartBit,
				Size:      s.Size,
				ByteOrder: order,
				ValueType: valueType,
				Factor:    s.Factor,
				Offset:    s.Offset,
				Unit:      s.Unit,
			})
		}
		db.Messages = append(db.Messages, spec)
	}

	return db, nil
}

func parseByteOrder(s string) (candbc.ByteOrder, error) {
	switch s {
	case "big_endian":
		return candbc.BigEndian, nil
	case "little_endian":
		return candbc.LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte_order %q", s)
	}
}

func parseValueType(s string) (candbc.ValueType, error) {
	switch s {
	case "signed":
		return candbc.Signed, nil
	case "unsigned":
		return candbc.Unsigned, nil
	default:
		return 0, fmt.Errorf("unknown value_type %q", s)
	}
}
