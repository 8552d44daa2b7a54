package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []Column{
	{Field: "name", Label: "Name"},
	{Field: "note", Label: "Note"},
	{Field: "price", Label: "Price"},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []map[string]any{
		{"name": "Smith, John", "note": `says "hi"`, "price": json.Number("150")},
		{"name": "Jane", "note": "line\nbreak", "price": 99.5},
		{"name": "Missing"},
	}, cols)
	require.NoError(t, err)

	want := "Name,Note,Price\n" +
		"\"Smith, John\",\"says \"\"hi\"\"\",150\n" +
		"Jane,\"line\nbreak\",99.5\n" +
		"Missing,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_NoData(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteCSV(&buf, nil, cols), ErrNoData)
	assert.Zero(t, buf.Len())
}

func TestWritePDF(t *testing.T) {
	records := make([]map[string]any, 0, 60)
	for i := 0; i < 60; i++ {
		records = append(records, map[string]any{"name": fmt.Sprintf("Guest %d", i), "price": i})
	}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Clients Report", records, cols, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	assert.ErrorIs(t, WritePDF(&buf, "Empty", nil, cols, time.Now()), ErrNoData)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "clients_2025-01-02.csv", Filename("clients", "csv", time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)))
}
