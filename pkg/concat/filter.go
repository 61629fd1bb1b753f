// File: pkg/concat/filter.go
package concat

import (
	"fmt"
	"regexp"
)

// Verdict is the filter's decision for a single relative path.
type Verdict int

const (
	// Included means the path passed both pattern lists.
	Included Verdict = iota
	// NotIncluded means includes were given and none of them matched.
	NotIncluded
	// Excluded means an exclude pattern matched. Exclusion always wins.
	Excluded
)

// Filter matches relative paths against include and exclude pattern lists.
// Patterns use search semantics: a pattern matches if it is found anywhere in
// the path, so callers anchor explicitly when they want full-path matches.
type Filter struct {
	includes []*regexp.Regexp
	excludes []*regexp.Regexp
}

// NewFilter compiles both pattern lists eagerly so an invalid expression is
// reported before any traversal starts rather than mid-run.
func NewFilter(includes, excludes []string) (*Filter, error) {
	f := &Filter{}

	for _, expr := range includes {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", expr, err)
		}
		f.includes = append(f.includes, re)
	}

	for _, expr := range excludes {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}
		f.excludes = append(f.excludes, re)
	}

	return f, nil
}

// Decide returns the verdict for relPath. An empty include list means no
// include filter: every path passes the include step.
func (f *Filter) Decide(relPath string) Verdict {
	if len(f.includes) > 0 {
		matched := false
		for _, re := range f.includes {
			if re.MatchString(relPath) {
				matched = true
				break
			}
		}
		if !matched {
			return NotIncluded
		}
	}

	for _, re := range f.excludes {
		if re.MatchString(relPath) {
			return Excluded
		}
	}

	return Included
}
