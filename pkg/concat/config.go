// File: pkg/concat/config.go
package concat

// DefaultOutput is the output path used when none is given on the command line.
const DefaultOutput = "output.txt"

// Arguments holds the configuration options for a concatenation run.
type Arguments struct {
	Roots    []string // Directory paths to traverse, in the order given.
	Output   string   // Destination path for the concatenated output file.
	Tree     string   // Optional destination path for a rendered directory tree.
	Includes []string // Regular expressions a relative path must match to be emitted.
	Excludes []string // Regular expressions that reject a relative path outright.
	NoHeader bool     // If true, omits the per-file header line from the output.
	Verbose  bool     // If true, reports every discovered file on the diagnostic stream.
}

// Entry is a single file discovered during traversal. RelPath is the path
// relative to the entry's own root, slash-normalized; it is the value the
// filter matches against and the header displays.
type Entry struct {
	Path    string
	RelPath string
}
