package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes a header of column labels followed by one line per record.
// Fields holding commas, quotes or line breaks are quoted.
func WriteCSV(w io.Writer, records []map[string]any, cols []Column) error {
	if len(records) == 0 {
		return ErrNoData
	}
	cw := csv.NewWriter(w)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(row(rec, cols)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
