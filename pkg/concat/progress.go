// File: pkg/concat/progress.go
package concat

import (
	"fmt"
	"io"
)

// progress reports the per-file verbose stream: every discovered file starts
// a line with its relative path, and the line is finished with the reason it
// was skipped or a bare newline once its content has been handled.
type progress struct {
	w       io.Writer
	enabled bool
}

func newProgress(w io.Writer, enabled bool) *progress {
	return &progress{w: w, enabled: enabled}
}

func (p *progress) discovered(relPath string) {
	if p.enabled {
		fmt.Fprint(p.w, relPath)
	}
}

func (p *progress) notIncluded() {
	if p.enabled {
		fmt.Fprintln(p.w, ": not included.")
	}
}

func (p *progress) excluded() {
	if p.enabled {
		fmt.Fprintln(p.w, ": excluded.")
	}
}

func (p *progress) done() {
	if p.enabled {
		fmt.Fprintln(p.w)
	}
}
