// Command prelude decodes a YAML or JSON document, runs a registered
// operation over it and prints the result.
//
//	prelude -op sum -in numbers.yaml
//	echo '[3, 1, 3]' | prelude -op nub
//	prelude -op take -args '[2]' -in list.json -format yaml
//	prelude -list
//
// Without -op the resolved variant and the decoded value are printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/ingest"
	"github.com/hasbyte1/go-prelude/prelude"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	op      string
	in      string
	args    string
	format  string
	verbose bool
	list    bool
}

func parseFlags(argv []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("prelude", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.op, "op", "", "Name of the registered operation to run. See -list.")
	fs.StringVar(&o.in, "in", "-", "Path of the input document, or - for stdin.")
	fs.StringVar(&o.args, "args", "", "Extra operation arguments as a YAML or JSON list, e.g. '[2]'.")
	fs.StringVar(&o.format, "format", "json", "Output format. One of {'json', 'yaml'}.")
	fs.BoolVar(&o.verbose, "v", false, "If true, log debug messages to stderr.")
	fs.BoolVar(&o.list, "list", false, "If true, print the registered operation names and exit.")
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.format != "json" && o.format != "yaml" {
		return o, fmt.Errorf("unknown -format %q", o.format)
	}
	return o, nil
}

func newLogger(stderr io.Writer, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := newLogger(stderr, o.verbose)

	if o.list {
		fmt.Fprintln(stdout, strings.Join(prelude.Ops(), "\n"))
		return 0
	}

	doc, err := readDocument(o.in, stdin)
	if err != nil {
		log.Error().Err(err).Str("in", o.in).Msg("Could not decode input")
		return 1
	}
	log.Debug().Str("in", o.in).Stringer("variant", doc.Variant()).Int("len", doc.Len()).Msg("Decoded document")

	var result any
	if o.op == "" {
		result = orderedDict{
			keys:   []string{"variant", "value"},
			values: []any{doc.Variant().String(), plain(doc)},
		}
	} else {
		args, err := parseArgs(o.args)
		if err != nil {
			log.Error().Err(err).Msg("Invalid -args")
			return 2
		}
		start := time.Now()
		out, err := prelude.CallOp(o.op, doc, args...)
		if err != nil {
			log.Error().Err(err).Str("op", o.op).Msg("Operation failed")
			return 1
		}
		log.Debug().Str("op", o.op).Dur("took", time.Since(start)).Msg("Ran operation")
		result = plain(out)
	}

	if err := write(stdout, o.format, result); err != nil {
		log.Error().Err(err).Msg("Could not write result")
		return 1
	}
	return 0
}

func readDocument(path string, stdin io.Reader) (algebra.Wrapper, error) {
	if path == "" || path == "-" {
		return ingest.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.Decode(f)
}

// parseArgs decodes the -args list. Scalars resolve as they do in documents.
func parseArgs(s string) ([]any, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	w, err := ingest.DecodeBytes([]byte(s))
	if err != nil {
		return nil, err
	}
	if w.Variant() != algebra.VariantList {
		return nil, fmt.Errorf("expected a list, got %s", w.Variant())
	}
	return w.Values(), nil
}
