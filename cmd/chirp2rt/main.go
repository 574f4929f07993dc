package main

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/config"
	"github.com/jrwynneiii/freqplantools/plan"
	"github.com/jrwynneiii/freqplantools/table"
)

const (
	RC_SUCCESS   = 0
	RC_IO_ERROR  = 1
	RC_BAD_ARGS  = 2
	RC_BAD_INPUT = 3
)

type cli struct {
	Files        []string `arg:"" optional:"" sep:"none" help:"CHIRP file to read, then RT Systems file to write. Omitted or - for stdin/stdout"`
	CommentMax   string   `help:"Truncate comments to this many characters (0-60)"`
	Verbose      bool     `short:"v" help:"Prints debug output"`
	ShowWarnings bool     `short:"w" help:"Prints warnings"`
	Config       string   `help:"HCL configuration file"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var c cli
	parser := kong.Must(&c,
		kong.Name("chirp2rt"),
		kong.Description("Convert a CHIRP CSV to an RT Systems import file for Yaesu radios."),
		kong.Writers(os.Stdout, stderr),
	)
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		var perr *kong.ParseError
		if errors.As(err, &perr) {
			_ = perr.Context.PrintUsage(true)
		}
		return RC_BAD_ARGS
	}
	if len(c.Files) > 2 {
		parser.Errorf("expected at most 2 files, got %d", len(c.Files))
		_ = ctx.PrintUsage(true)
		return RC_BAD_ARGS
	}

	logger := log.NewWithOptions(stderr, log.Options{Level: log.ErrorLevel})
	if c.ShowWarnings {
		logger.SetLevel(log.WarnLevel)
	}
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	conf, err := config.Load(c.Config)
	switch {
	case errors.Is(err, config.ErrInvalid):
		logger.Errorf("%s", err)
		return RC_BAD_ARGS
	case err != nil:
		logger.Errorf("%s", err)
		return RC_IO_ERROR
	}
	if raw := strings.TrimSpace(c.CommentMax); raw != "" {
		if conf.RT.CommentMax, err = strconv.Atoi(raw); err != nil {
			parser.Errorf("--comment-max: %q is not a number", raw)
			return RC_BAD_ARGS
		}
	}
	if _, err := plan.TruncateComment("", conf.RT.CommentMax); err != nil {
		parser.Errorf("%s", err)
		return RC_BAD_ARGS
	}

	in, out := table.Stdio, table.Stdio
	if len(c.Files) > 0 {
		in = c.Files[0]
	}
	if len(c.Files) > 1 {
		out = c.Files[1]
	}

	r, err := table.OpenInput(in)
	if err != nil {
		logger.Errorf("Could not open input file %s: %s", in, err)
		return RC_IO_ERROR
	}
	defer r.Close()

	w, err := table.CreateOutput(out)
	if err != nil {
		logger.Errorf("Could not open output file %s: %s", out, err)
		return RC_IO_ERROR
	}

	n, err := plan.ConvertRT(r, w, plan.NewRTMapper(conf.RT, conf.Chirp, logger))
	if cerr := w.Close(); err == nil && cerr != nil {
		logger.Errorf("Could not write %s: %s", out, cerr)
		return RC_IO_ERROR
	}
	switch {
	case table.IsMalformed(err):
		logger.Errorf("%s: %s", in, err)
		return RC_BAD_INPUT
	case err != nil:
		logger.Errorf("%s", err)
		return RC_IO_ERROR
	}

	logger.Printf("Wrote %d lines to %s", n, out)
	return RC_SUCCESS
}
