package main

import (
	"flag"
	"strings"

	"github.com/DjordjeVuckovic/track-loader/internal/track/loader"
)

// varFlags collects repeated -var key=value flags.
type varFlags []string

func (v *varFlags) String() string {
	return strings.Join(*v, ",")
}

func (v *varFlags) Set(value string) error {
	*v = append(*v, value)
	return nil
}

type cliConfig struct {
	TracksRoot string
	DataRoot   string
	Track      string
	TestMode   bool
	Challenge  string
	Vars       varFlags
	Output     string
	List       bool
}

func parseFlags(defaults loader.Config) cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.TracksRoot, "tracks-root", defaults.TracksRoot, "Directory holding one sub-directory per track")
	flag.StringVar(&cfg.DataRoot, "data-root", defaults.DataRoot, "Directory holding the document corpora")
	flag.StringVar(&cfg.Track, "track", "", "Name of the track to load")
	flag.BoolVar(&cfg.TestMode, "test-mode", false, "Shrink schedules for a quick smoke run")
	flag.StringVar(&cfg.Challenge, "challenge", "", "Challenge to print (default: all)")
	flag.Var(&cfg.Vars, "var", "Template variable as key=value (repeatable)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the resolved track as JSON")
	flag.BoolVar(&cfg.List, "list", false, "List available tracks and exit")

	flag.Parse()
	return cfg
}
