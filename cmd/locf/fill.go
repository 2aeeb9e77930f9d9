package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/locf/codec"
	"github.com/katalvlaran/locf/fill"
	"github.com/katalvlaran/locf/internal/config"
	"github.com/katalvlaran/locf/internal/logging"
	"github.com/katalvlaran/locf/na"
)

type fillFlags struct {
	in, out    string
	format     string
	columns    string
	sheet      string
	policy     string
	configPath string
}

func runFill(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var ff fillFlags
	fs := flag.NewFlagSet("fill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&ff.in, "in", "", "input file (default: stdin)")
	fs.StringVar(&ff.out, "out", "", "output file (default: stdout)")
	fs.StringVar(&ff.format, "format", "", "json, csv, xlsx or bin (default: from -in extension, else json)")
	fs.StringVar(&ff.columns, "columns", "", "comma-separated CSV/XLSX columns to fill (default: every numeric column)")
	fs.StringVar(&ff.sheet, "sheet", "", "XLSX sheet (default: first sheet)")
	fs.StringVar(&ff.policy, "policy", "", "missing-value policy for bin input: nan, r or rna (default: from config)")
	fs.StringVar(&ff.configPath, "config", "", "optional YAML config file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := config.Load(ff.configPath)
	if err != nil {
		return err
	}
	cfg.Logging.Format = "text"
	logger := logging.New(cfg.Logging, stderr).With(slog.String("component", "fill"))

	format, err := resolveFormat(ff)
	if err != nil {
		return &usageError{err: err}
	}
	policy := cfg.Fill.ParsedPolicy()
	if ff.policy != "" {
		if policy, err = na.ParsePolicy(ff.policy); err != nil {
			return &usageError{err: err}
		}
	}

	switch format {
	case codec.JSON:
		return fillJSON(ff, stdin, stdout, logger)
	case codec.CSV:
		return fillCSV(ff, stdin, stdout, logger)
	case codec.XLSX:
		return fillXLSX(ff, logger)
	case codec.BIN:
		return fillBin(ff, policy, stdin, stdout, logger)
	}

	return fmt.Errorf("format %q: %w", format, codec.ErrUnknownFormat)
}

func resolveFormat(ff fillFlags) (codec.Format, error) {
	switch {
	case ff.format != "":
		return codec.ParseFormat(ff.format)
	case ff.in != "":
		return codec.FormatFromPath(ff.in)
	default:
		return codec.JSON, nil
	}
}

func fillJSON(ff fillFlags, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	r, closeIn, err := openInput(ff.in, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	xs, err := codec.DecodeJSON(r)
	if err != nil {
		return err
	}
	out, st := fill.LOCFWithStats(xs)
	logStats(logger, "values", st)

	return writeOutput(ff.out, stdout, func(w io.Writer) error {
		return codec.EncodeJSON(w, out)
	})
}

func fillCSV(ff fillFlags, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	r, closeIn, err := openInput(ff.in, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	tbl, err := codec.ReadCSV(r)
	if err != nil {
		return err
	}
	if err := fillTable(tbl, ff.columns, logger); err != nil {
		return err
	}

	return writeOutput(ff.out, stdout, func(w io.Writer) error {
		return codec.WriteCSV(w, tbl)
	})
}

func fillXLSX(ff fillFlags, logger *slog.Logger) error {
	if ff.in == "" || ff.out == "" {
		return &usageError{err: errors.New("xlsx needs both -in and -out")}
	}

	tbl, err := codec.ReadXLSX(ff.in, ff.sheet)
	if err != nil {
		return err
	}
	if err := fillTable(tbl, ff.columns, logger); err != nil {
		return err
	}

	return codec.WriteXLSX(ff.out, ff.sheet, tbl)
}

func fillBin(ff fillFlags, policy na.Policy, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	r, closeIn, err := openInput(ff.in, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	xs, err := codec.ReadFloat64s(r)
	if err != nil {
		return err
	}
	out := fill.Float64s(xs, fill.WithPolicy(policy))
	logger.Info("filled", slog.Int("len", len(xs)), slog.String("policy", policy.String()))

	return writeOutput(ff.out, stdout, func(w io.Writer) error {
		return codec.WriteFloat64s(w, out)
	})
}

func fillTable(tbl *codec.Table, columns string, logger *slog.Logger) error {
	var names []string
	if columns != "" {
		for _, c := range strings.Split(columns, ",") {
			if c = strings.TrimSpace(c); c != "" {
				names = append(names, c)
			}
		}
	}

	reports, err := tbl.FillColumns(names...)
	if err != nil {
		return err
	}
	for _, rep := range reports {
		logStats(logger, rep.Name, rep.Stats)
	}

	return nil
}

func logStats(logger *slog.Logger, column string, st fill.Stats) {
	logger.Info("filled",
		slog.String("column", column),
		slog.Int("len", st.Len),
		slog.Int("present", st.Present),
		slog.Int("filled", st.Filled),
		slog.Int("leading", st.Leading))
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
