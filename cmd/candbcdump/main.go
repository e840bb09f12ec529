// Command candbcdump is a non-normative demo: it reads a candump or Vector
// ASCII trace, decodes each frame against a YAML schema, and prints the
// decoded signal values. It is not part of the candbc API surface.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/wkhan/candbc"
	"github.com/wkhan/candbc/canlog"
	"github.com/wkhan/candbc/schemayaml"
)

func main() {
	logPath := pflag.String("log", "", "path to a candump (.log) or Vector ASCII (.asc) trace file")
	schemaPath := pflag.String("schema", "", "path to a YAML schema describing messages and signals")
	verbose := pflag.Bool("verbose", false, "log frames that fail to parse instead of silently skipping them")
	maxFrames := pflag.Int("max-frames", 0, "stop after this many decoded frames (0 means no limit)")
	pflag.Parse()

	if *logPath == "" || *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "# missing --log or --schema")
		pflag.Usage()
		os.Exit(2)
	}

	var logger *log.Logger
	if *verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}

	db, err := schemayaml.Load(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "# failed to load schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# loaded %d message definitions from %v\n", len(db.Messages), *schemaPath)

	source, err := canlog.Open(*logPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "# failed to open trace: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	frameCount := 0
	decodedCount := 0
	unknownIDs := map[uint32]uint64{}
	for {
		frame, ok := source.Next()
		if !ok {
			break
		}
		frameCount++

		msg, ok := db.GetMessageByID(frame.ID)
		if !ok {
			unknownIDs[frame.ID]++
			continue
		}

		decoded, err := candbc.DecodeMessage(frame, msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "# failed to decode %v (id 0x%X): %v\n", msg.Name, frame.ID, err)
			continue
		}
		decodedCount++

		fmt.Printf("%.6f %v 0x%03X %v:", frame.Timestamp, frame.Channel, frame.ID, decoded.Name)
		for i, name := range decoded.Signals {
			fmt.Printf(" %v=%g%v", name, decoded.Values[i], decoded.Units[i])
		}
		fmt.Println()

		if *maxFrames > 0 && decodedCount >= *maxFrames {
			break
		}
	}

	fmt.Printf("# read %d frames, decoded %d, %d distinct unknown identifiers\n", frameCount, decodedCount, len(unknownIDs))
}
