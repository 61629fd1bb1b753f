package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"foldercat/pkg/concat"
	"foldercat/pkg/logging"
)

// NewRootCmd creates the root command. Patterns are repeatable flags rather
// than comma-split lists because commas are meaningful inside regular
// expressions.
func NewRootCmd() *cobra.Command {
	args := concat.Arguments{}

	rootCmd := &cobra.Command{
		Use:   "foldercat [flags] dir [dir...]",
		Short: "Foldercat concatenates a directory tree's files into a single output file",
		Long: `Foldercat traverses one or more directory trees and concatenates the
content of each file into a single output file, annotating each file with a
header naming its path relative to its root. Include and exclude regular
expressions select which files are emitted; excludes always win.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			logger, err := logging.New(args.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer syncLogger(logger)

			args.Roots = positional
			return concat.Run(args, logger)
		},
	}

	rootCmd.Flags().StringArrayVarP(&args.Includes, "include", "i", nil,
		"regular expression a relative path must match to be emitted (repeatable)")
	rootCmd.Flags().StringArrayVarP(&args.Excludes, "exclude", "e", nil,
		"regular expression that rejects a relative path (repeatable)")
	rootCmd.Flags().StringVarP(&args.Output, "output", "o", concat.DefaultOutput,
		"file path where the concatenated output is written")
	rootCmd.Flags().StringVarP(&args.Tree, "tree", "t", "",
		"also write a rendered directory tree of the emitted files to this path")
	rootCmd.Flags().BoolVarP(&args.Verbose, "verbose", "v", false,
		"report every discovered file on standard error")
	rootCmd.Flags().BoolVarP(&args.NoHeader, "no-header", "n", false,
		"omit the header naming each file before its content")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and returns its error for main to report.
func Execute() error {
	return NewRootCmd().Execute()
}

// syncLogger flushes the logger, ignoring the "invalid argument" errors zap
// reports when stderr is neither a terminal nor a regular file.
func syncLogger(logger interface{ Sync() error }) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
