// internal/dataset/record.go

// Package dataset generates prompt/response records, stores them as CSV and
// summarizes them.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// DateLayout is the format of the Generation Date column.
const DateLayout = "2006-01-02"

// Header is the first row of every output file.
var Header = []string{"Prompt", "Response", "Generation Date"}

// ErrBadHeader reports a CSV file whose first row is not Header.
var ErrBadHeader = errors.New("unexpected csv header")

// Record is one generated prompt with its response and backdated generation date.
type Record struct {
	Prompt   string
	Response string
	Date     time.Time
}

// Row returns the record as CSV fields.
func (r Record) Row() []string {
	return []string{r.Prompt, r.Response, r.Date.Format(DateLayout)}
}

// Writer streams records to CSV, header first.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
	header bool
	count  int
}

// NewWriter wraps w. The caller owns w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Create truncates or creates path and returns a Writer that closes the file
// on Close.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", path, err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// Write appends a record, emitting the header before the first one.
func (w *Writer) Write(r Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.csv.Write(r.Row()); err != nil {
		return fmt.Errorf("write record %d: %w", w.count+1, err)
	}
	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int { return w.count }

// Close writes the header if nothing was written, flushes, and closes the
// underlying file when the Writer owns it.
func (w *Writer) Close() error {
	err := w.writeHeader()
	w.csv.Flush()
	if err == nil {
		err = w.csv.Error()
	}
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		w.closer = nil
	}
	return err
}

func (w *Writer) writeHeader() error {
	if w.header {
		return nil
	}
	if err := w.csv.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	w.header = true
	return nil
}

// Read parses CSV produced by Writer.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrBadHeader)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range Header {
		if head[i] != Header[i] {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, head[i], Header[i])
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(records)+1, err)
		}
		date, err := time.Parse(DateLayout, row[2])
		if err != nil {
			return nil, fmt.Errorf("record %d: bad date %q: %w", len(records)+1, row[2], err)
		}
		records = append(records, Record{Prompt: row[0], Response: row[1], Date: date})
	}
	return records, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
