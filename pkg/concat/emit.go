// File: pkg/concat/emit.go
package concat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

// Emitter writes accepted files to the output sink, one block per file: an
// optional header line naming the relative path, the file's decoded content,
// and exactly one trailing newline beyond whatever the content contained.
type Emitter struct {
	w        *bufio.Writer
	noHeader bool
	logger   *zap.Logger

	files int
	bytes int64
}

// NewEmitter wraps w in a buffered writer. Call Flush when the run is done.
func NewEmitter(w io.Writer, noHeader bool, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{
		w:        bufio.NewWriter(w),
		noHeader: noHeader,
		logger:   logger,
	}
}

// Emit writes one file's block to the output. The header is written before
// the read is attempted, so a file that fails to read leaves a header with no
// content behind it.
//
// A read failure is logged and skipped (ok is false) and never fails the run.
// The returned error reports write failures on the output sink only, which
// are fatal to the caller.
func (e *Emitter) Emit(entry Entry) (ok bool, err error) {
	if !e.noHeader {
		// The path is written verbatim between the quotes, with no escaping
		// of embedded quote characters.
		if _, err := fmt.Fprintf(e.w, "---- File Name: \"%s\" ----\n", entry.RelPath); err != nil {
			return false, fmt.Errorf("writing header for %s: %w", entry.RelPath, err)
		}
	}

	raw, readErr := os.ReadFile(entry.Path)
	if readErr != nil {
		e.logger.Error("Failed to read file",
			zap.String("path", entry.Path),
			zap.Error(readErr))
		return false, nil
	}

	content := decodeText(raw)
	if _, err := e.w.WriteString(content); err != nil {
		return false, fmt.Errorf("writing content of %s: %w", entry.RelPath, err)
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return false, fmt.Errorf("writing content of %s: %w", entry.RelPath, err)
	}

	e.files++
	e.bytes += int64(len(content)) + 1
	return true, nil
}

// Flush flushes the buffered writer. Must be called once after the last Emit.
func (e *Emitter) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// Files reports how many file blocks were emitted.
func (e *Emitter) Files() int { return e.files }

// Bytes reports how many content bytes were emitted, headers excluded.
func (e *Emitter) Bytes() int64 { return e.bytes }

// decodeText interprets raw bytes as UTF-8 text. Invalid byte sequences are
// substituted with U+FFFD rather than failing the file.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		// The UTF-8 decoder substitutes rather than errors; string conversion
		// is the fallback of last resort.
		return string(raw)
	}
	return string(decoded)
}
