package main

import (
	"errors"
	"io"
	"os"

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
	Files         []string `arg:"" optional:"" sep:"none" help:"CHIRP file to read, then website table to write"`
	SkipFirstRows string   `short:"f" help:"Skip this many channels after the header (0-9)" default:"0"`
	Verbose       bool     `short:"v" help:"Prints debug output"`
	ShowWarnings  bool     `short:"w" help:"Prints warnings"`
	Config        string   `help:"HCL configuration file"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var c cli
	parser := kong.Must(&c,
		kong.Name("webtable"),
		kong.Description("Generate the frequency table published on the website from a CHIRP CSV."),
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
	if len(c.Files) != 2 {
		parser.Errorf("expected a CHIRP file and a target file, got %d files", len(c.Files))
		_ = ctx.PrintUsage(true)
		return RC_BAD_ARGS
	}
	in, out := c.Files[0], c.Files[1]

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
	skip := table.ClampSkip(c.SkipFirstRows, logger)

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

	n, err := plan.ConvertWeb(r, w, plan.NewWebMapper(conf.Web, logger), skip)
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
