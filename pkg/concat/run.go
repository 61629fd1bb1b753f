// File: pkg/concat/run.go
package concat

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Run executes one concatenation pass: compile the filter, create the output
// file, walk every root in order, and emit each accepted file. Per-file read
// errors are logged and skipped; an invalid pattern or an unwritable output
// path fails the run before or as traversal begins.
func Run(args Arguments, logger *zap.Logger) error {
	return run(args, logger, os.Stderr)
}

func run(args Arguments, logger *zap.Logger, diag io.Writer) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Debug("Starting concatenation",
		zap.Strings("roots", args.Roots),
		zap.String("output", args.Output))

	filter, err := NewFilter(args.Includes, args.Excludes)
	if err != nil {
		return err
	}

	outFile, err := os.Create(args.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", args.Output, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file",
				zap.String("file", args.Output),
				zap.Error(closeErr))
		}
	}()

	emitter := NewEmitter(outFile, args.NoHeader, logger)
	prog := newProgress(diag, args.Verbose)

	discovered := 0
	for _, root := range args.Roots {
		err := WalkRoot(root, logger, func(entry Entry) error {
			discovered++
			prog.discovered(entry.RelPath)

			switch filter.Decide(entry.RelPath) {
			case NotIncluded:
				prog.notIncluded()
				return nil
			case Excluded:
				prog.excluded()
				return nil
			}

			_, err := emitter.Emit(entry)
			prog.done()
			return err
		})
		if err != nil {
			return err
		}
	}

	if err := emitter.Flush(); err != nil {
		return err
	}

	if args.Tree != "" {
		treeContent, err := RenderTree(args.Roots, filter, logger)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args.Tree, []byte(treeContent), 0644); err != nil {
			return fmt.Errorf("failed to write tree file %s: %w", args.Tree, err)
		}
		logger.Debug("Wrote tree structure", zap.String("file", args.Tree))
	}

	logger.Info("Concatenation completed",
		zap.String("output", args.Output),
		zap.Int("discoveredFiles", discovered),
		zap.Int("emittedFiles", emitter.Files()),
		zap.String("contentWritten", humanize.Bytes(uint64(emitter.Bytes()))),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
