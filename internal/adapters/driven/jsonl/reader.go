// Package jsonl provides streaming line-delimited JSON IO adapters.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RecordReader = (*Reader)(nil)

// Line buffer sizing for bufio.Scanner. Training records can be long.
const (
	initialBufSize = 64 * 1024
	maxLineSize    = 10 * 1024 * 1024
)

// Reader streams JSONL files as parsed records, one pass, line order.
type Reader struct{}

// NewReader creates a new JSONL reader.
func NewReader() *Reader {
	return &Reader{}
}

// ForEach reads path line by line and invokes fn per non-blank line.
// Line numbers are 1-based physical lines: blank lines advance the
// count but are skipped silently.
func (r *Reader) ForEach(ctx context.Context, path string, fn func(domain.Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, initialBufSize), maxLineSize)

	line := 0
	for sc.Scan() {
		line++

		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var value any
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return &domain.ParseError{Path: path, Line: line, Err: err}
		}

		if err := fn(domain.Record{Line: line, Value: value}); err != nil {
			if err == driven.ErrStopIteration {
				return nil
			}
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
