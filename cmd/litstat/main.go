package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/score-law/litigation-analytics/internal"
	"github.com/score-law/litigation-analytics/internal/config"
	"github.com/score-law/litigation-analytics/internal/render"
	"github.com/score-law/litigation-analytics/specs"
)

func main() {
	cfg := config.FromEnv()

	rowsPath := flag.String("rows", "", "Path to the subject result page JSON (required)")
	baselinePath := flag.String("baseline", "", "Path to the baseline result page JSON; enables comparative mode")
	domain := flag.String("domain", domainDispositions, "Result domain: dispositions, sentences, bail, motions")
	tablesPath := flag.String("tables", cfg.TablesPath, "Path to extraction tables YAML (default: built-in tables)")
	format := flag.String("format", cfg.Format, "Output format: json, pretty, png, svg")
	scale := flag.String("scale", cfg.Scale, "Axis scaling: fixed, auto, dynamic")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	decode := flag.String("decode", "", "Decode a selection token and exit")
	encode := flag.String("encode", "", "Encode a JSON array of selections and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `litstat: litigation result charts

Usage:
  litstat -rows judge.json -domain dispositions
  litstat -rows judge.json -baseline court.json -domain motions -format pretty
  litstat -rows judge.json -domain bail -format png -out bail.png
  litstat -decode W3sidHlwZSI6Ikp1ZGdlcyIsInZhbHVlIjp7ImlkIjo0MiwibmFtZSI6IkouIFNtaXRoIn19XQ
  litstat -encode '[{"type":"Judges","value":{"id":42,"name":"J. Smith"}}]'

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  LITSTAT_TABLES      Default for -tables
  LITSTAT_LOG_LEVEL   debug, info, warn, error (default info)
  LITSTAT_SCALE       Default for -scale
  LITSTAT_FORMAT      Default for -format
`)
	}

	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	internal.SetLogger(log)

	writer := io.Writer(os.Stdout)
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	switch {
	case *decode != "":
		selections := internal.DecodeSelections(*decode)
		if err := writeJSON(writer, selections, true); err != nil {
			fatalf("Failed to write selections: %v", err)
		}
		return
	case *encode != "":
		var selections []*specs.SelectionSpec
		if err := json.Unmarshal([]byte(*encode), &selections); err != nil {
			fatalf("Failed to parse selections JSON: %v", err)
		}
		fmt.Fprintln(writer, internal.EncodeSelections(selections))
		return
	}

	if *rowsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -rows is required")
		flag.Usage()
		os.Exit(1)
	}

	tables := internal.DefaultExtractionConfigSpec()
	if *tablesPath != "" {
		loaded, err := internal.LoadExtractionConfigSpec(*tablesPath)
		if err != nil {
			fatalf("Failed to load tables: %v", err)
		}
		tables = loaded
	}

	fetched := ResultSetFetchedEvent{Domain: *domain}
	subject, err := readResultSet(*rowsPath)
	if err != nil {
		fatalf("Failed to read rows: %v", err)
	}
	fetched.Subject = subject
	if *baselinePath != "" {
		baseline, err := readResultSet(*baselinePath)
		if err != nil {
			fatalf("Failed to read baseline: %v", err)
		}
		fetched.Baseline = &baseline
	}

	out, err := newController(tables, *scale, log).Run(fetched)
	if err != nil {
		fatalf("Transform failed: %v", err)
	}

	if err := writeOutput(writer, out, *format); err != nil {
		fatalf("Failed to write output: %v", err)
	}
}

func readResultSet(path string) (resultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resultSet{}, err
	}
	var rows resultSet
	if err := json.Unmarshal(data, &rows); err != nil {
		return resultSet{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

func writeOutput(w io.Writer, out output, format string) error {
	switch format {
	case "json":
		return writeJSON(w, out, false)
	case "pretty":
		return writeJSON(w, out, true)
	default:
		f, err := render.ParseFormat(format)
		if err != nil {
			return err
		}
		return render.Bars(w, out.Chart, out.Domain, f)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
