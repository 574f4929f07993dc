package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/config"
	"github.com/jrwynneiii/freqplantools/tui"
)

var cli struct {
	Dir     string `arg:"" optional:"" help:"Directory containing CHIRP plans" default:"."`
	Pattern string `help:"Glob selecting plan files, in place of the configured one"`
	LogFile string `help:"Write log output to this file while the UI runs"`
	Verbose bool   `short:"v" help:"Prints debug output"`
	Config  string `help:"HCL configuration file"`
}

func main() {
	_ = kong.Parse(&cli,
		kong.Name("planview"),
		kong.Description("Browse the CHIRP frequency plans in a directory."),
	)

	// The terminal belongs to the UI once it starts.
	var out io.Writer = io.Discard
	if cli.LogFile != "" {
		f, err := os.Create(cli.LogFile)
		if err != nil {
			log.Fatalf("Could not open log file %s: %s", cli.LogFile, err.Error())
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{Level: log.WarnLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	conf, err := config.Load(cli.Config)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	pattern := conf.Viewer.Pattern
	if cli.Pattern != "" {
		pattern = cli.Pattern
	}

	files, err := filepath.Glob(filepath.Join(cli.Dir, pattern))
	if err != nil {
		log.Fatalf("Error reading directory: %s", err.Error())
	}
	if len(files) == 0 {
		log.Fatalf("No plans matching %s found in %s", pattern, cli.Dir)
	}
	for idx, file := range files {
		files[idx] = filepath.Base(file)
	}

	if err := tui.StartPlanViewerUI(files, cli.Dir, logger); err != nil {
		log.Fatalf("%s", err.Error())
	}
}
