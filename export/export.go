// Package export renders list screens as downloadable CSV and PDF files.
// Both formats read records in their stored shape and write nothing back.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrNoData = errors.New("no data to export")

// Column selects one record field and the header it is printed under.
type Column struct {
	Field string
	Label string
}

// Filename builds "<base>_<YYYY-MM-DD>.<ext>".
func Filename(base, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", base, now.Format("2006-01-02"), ext)
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func row(rec map[string]any, cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = cell(rec[c.Field])
	}
	return out
}
