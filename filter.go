package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
)

type Summary struct {
	Read int
	Kept int
}

func (s Summary) Removed() int {
	return s.Read - s.Kept
}

// FilterLines copies every line of in whose filter key is not in denylist to
// out. Lines are written with their original terminator, so an input with no
// denylisted lines is copied byte for byte.
func FilterLines(in io.Reader, out io.Writer, denylist mapset.Set[string]) (Summary, error) {

	var summary Summary
	r := bufio.NewReader(in)

	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			summary.Read++
			if !denylist.Contains(FilterKey(line)) {
				if _, werr := io.WriteString(out, line); werr != nil {
					return summary, werr
				}
				summary.Kept++
			}
		}
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		if err != nil {
			return summary, err
		}
	}
}

func CleanFile(paths Paths, denylist mapset.Set[string]) (summary Summary, err error) {

	inFile, err := os.Open(paths.Input)
	if err != nil {
		return summary, err
	}
	defer inFile.Close()

	outFile, err := os.Create(paths.Output)
	if err != nil {
		return summary, err
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log.Printf("Filtering %s into %s", paths.Input, paths.Output)

	w := bufio.NewWriter(outFile)

	summary, err = FilterLines(inFile, w, denylist)
	if err != nil {
		return summary, fmt.Errorf("filtering %s: %w", paths.Input, err)
	}

	if err = w.Flush(); err != nil {
		return summary, fmt.Errorf("writing %s: %w", paths.Output, err)
	}

	log.Printf("Read %d lines, kept %d", summary.Read, summary.Kept)

	return summary, nil
}
