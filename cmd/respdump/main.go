/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/cmd/respdump/main.go
*/

// respdump reads a stream of RESP frames from stdin and re-encodes
// each one to stdout at a chosen wire version, exercising the Parser
// and Writer end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/respcore/internal/sequence"
	"github.com/akashmaji946/respcore/resp"
	"github.com/akashmaji946/respcore/resplog"
)

var logger = resplog.Default()

func main() {
	versionFlag := flag.String("version", "resp3", "wire version to re-encode output as: resp2 or resp3")
	flag.Parse()

	var version resp.Version
	switch *versionFlag {
	case "resp2":
		version = resp.RESP2
	case "resp3":
		version = resp.RESP3
	default:
		fmt.Fprintf(os.Stderr, "respdump: unknown -version %q, want resp2 or resp3\n", *versionFlag)
		os.Exit(2)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Errorf("respdump: reading stdin: %v", err)
		os.Exit(1)
	}

	parser := resp.NewDefaultParser()
	cursor := sequence.NewCursor(sequence.FromBytes(data))

	sink := resp.NewWriterSink(os.Stdout)
	writer := resp.NewWriter(sink, version)

	count := 0
	for cursor.Remaining() {
		val, ok, err := parser.TryParse(&cursor)
		if err != nil {
			logger.Errorf("respdump: frame %d: %v", count, err)
			os.Exit(1)
		}
		if !ok {
			logger.Errorf("respdump: truncated frame after %d complete frame(s)", count)
			os.Exit(1)
		}
		if err := writer.WriteValue(val); err != nil {
			logger.Errorf("respdump: encoding frame %d: %v", count, err)
			os.Exit(1)
		}
		count++
	}

	writer.Complete()
	if err := sink.Flush(); err != nil {
		logger.Errorf("respdump: flushing stdout: %v", err)
		os.Exit(1)
	}
}
