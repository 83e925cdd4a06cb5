package listview

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
)

// ErrNothingToExport is returned when the filtered set is empty; the export
// control is disabled in that case.
var ErrNothingToExport = errors.New("listview: nothing to export")

// Column is one CSV column: a header and how to stringify a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Filename is "<resource>-export.csv".
func (s Spec[T]) Filename() string {
	return s.Resource + "-export.csv"
}

// WriteCSV writes a header row and one row per record. Fields containing a
// comma, quote or newline are quoted.
func (s Spec[T]) WriteCSV(w io.Writer, records []T) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}
	cw := csv.NewWriter(w)

	header := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = c.Header
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(s.Columns))
	for _, r := range records {
		for i, c := range s.Columns {
			row[i] = c.Value(r)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV is WriteCSV into memory.
func (s Spec[T]) CSV(records []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
