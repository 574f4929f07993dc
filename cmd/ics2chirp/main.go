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
	"github.com/jrwynneiii/freqplantools/tone"
)

const (
	RC_SUCCESS         = 0
	RC_IO_ERROR        = 1
	RC_BAD_ARGS        = 2
	RC_BAD_INPUT       = 3
	RC_MALFORMED_TOKEN = 11
)

type cli struct {
	Files         []string `arg:"" optional:"" sep:"none" help:"ICS-217A export to read, then CHIRP file to write. Omitted or - for stdin/stdout"`
	SkipFirstRows string   `short:"f" help:"Skip this many leading lines of the export (0-9)" default:"0"`
	ControlCh     bool     `short:"c" name:"control-ch" help:"Bracket the plan with version token control channels"`
	Tone          string   `short:"t" help:"CTCSS tone for channels without one"`
	Verbose       bool     `short:"v" help:"Prints debug output"`
	ShowWarnings  bool     `short:"w" help:"Prints warnings"`
	TokenFile     string   `help:"Version token file, in place of the configured one"`
	Config        string   `help:"HCL configuration file"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var c cli
	parser := kong.Must(&c,
		kong.Name("ics2chirp"),
		kong.Description("Convert an ICS-217A radio communications plan export to a CHIRP CSV."),
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

	if c.Tone != "" {
		r := tone.Classifier{Logger: logger}.Classify(c.Tone)
		if r.Kind.IsCTCSS() {
			conf.Chirp.DefaultCTCSS = r.Value
		} else {
			logger.Warnf("Default tone %q is not a CTCSS tone. Keeping %s", c.Tone, conf.Chirp.DefaultCTCSS)
		}
	}

	opts := plan.ICSOptions{Skip: table.ClampSkip(c.SkipFirstRows, logger)}
	if c.ControlCh {
		path := conf.TokenFile
		if c.TokenFile != "" {
			path = c.TokenFile
		}
		opts.Token, err = plan.LoadVersionTokenFile(path)
		switch {
		case errors.Is(err, plan.ErrMalformedToken), errors.Is(err, plan.ErrNoToken):
			logger.Errorf("%s", err)
			return RC_MALFORMED_TOKEN
		case err != nil:
			logger.Errorf("Could not read version token file %s: %s", path, err)
			return RC_IO_ERROR
		}
		logger.Debugf("Using version token %s", opts.Token)
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

	n, err := plan.ConvertICS(r, w, plan.NewICSMapper(conf.Chirp, logger), opts)
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
