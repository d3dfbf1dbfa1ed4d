package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.RecordWriter = (*Writer)(nil)

// Writer serialises records back to a line-delimited JSON file.
type Writer struct{}

// NewWriter creates a new JSONL writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write creates (or truncates) path and writes one compact JSON object
// per line, in slice order.
func (w *Writer) Write(ctx context.Context, path string, records []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			f.Close()
			return err
		}

		data, err := json.Marshal(rec.Value)
		if err != nil {
			f.Close()
			return fmt.Errorf("encoding record from line %d: %w", rec.Line, err)
		}
		if _, err := bw.Write(data); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
