package main

import (
	"fmt"
	"io"
	"path/filepath"
)

func Report(w io.Writer, summary Summary, paths Paths) error {
	_, err := fmt.Fprintf(w, "Removed %d words from %s.\nClean file saved to %s\n",
		summary.Removed(), filepath.Base(paths.Input), paths.Output)
	return err
}
