package main

import (
	"fmt"
	"path/filepath"
)

const CleanedSuffix = ".cleaned"

type Paths struct {
	Input  string
	Output string
}

func ResolvePaths(arg string) (Paths, error) {
	input, err := filepath.Abs(arg)
	if err != nil {
		return Paths{}, fmt.Errorf("resolving %s: %w", arg, err)
	}
	return Paths{Input: input, Output: input + CleanedSuffix}, nil
}
