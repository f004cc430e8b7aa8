package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status. Failures after argument parsing panic.
func run(args []string, stdout io.Writer, stderr io.Writer) int {

	config, err := ParseConfig(args, stderr)
	switch {
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(stdout, Usage)
		return 1
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		return 2
	}

	ConfigureLogging(&config, stderr)

	if err := Run(&config, stdout); err != nil {
		log.Panicf("Failed to clean file: %s", err)
	}

	return 0
}

// Run loads the denylist, filters the input file and prints the summary.
func Run(config *Config, stdout io.Writer) error {

	denylist, err := FetchDenylist(NewClient(config), config.DenylistUrl)
	if err != nil {
		return err
	}

	paths, err := ResolvePaths(config.InputPath)
	if err != nil {
		return err
	}

	summary, err := CleanFile(paths, denylist)
	if err != nil {
		return err
	}

	return Report(stdout, summary, paths)
}
