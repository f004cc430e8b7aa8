package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"time"
)

type Config struct {
	InputPath   string
	DenylistUrl string
	Timeout     time.Duration
	Debug       bool
}

const DefaultDenylistUrl = "https://www.cs.cmu.edu/~biglou/resources/bad-words.txt"
const DefaultTimeout time.Duration = 0

const Usage = "Provide file to clean as sole argument"

var ErrUsage = errors.New("expected exactly one file argument")

func ParseConfig(args []string, flagOutput io.Writer) (Config, error) {
	fs := flag.NewFlagSet("linecleaner", flag.ContinueOnError)
	fs.SetOutput(flagOutput)

	denylistUrl := fs.String("denylist", DefaultDenylistUrl, "url of the newline delimited denylist")
	timeout := fs.Duration("timeout", DefaultTimeout, "http timeout for fetching the denylist, 0 waits indefinitely")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		return Config{}, ErrUsage
	}

	return Config{InputPath: fs.Arg(0), DenylistUrl: *denylistUrl, Timeout: *timeout, Debug: *debug}, nil
}

// ConfigureLogging routes the global logger to debugOutput when debug is on
// and discards it otherwise.
func ConfigureLogging(config *Config, debugOutput io.Writer) {
	if config.Debug {
		log.SetOutput(debugOutput)
	} else {
		log.SetOutput(io.Discard)
	}
}
