package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CSVOption configures a CSVConverter.
type CSVOption func(*CSVConverter)

// WithDelimiter sets the field separator. Defaults to ','.
func WithDelimiter(d rune) CSVOption {
	return func(c *CSVConverter) { c.delimiter = d }
}

// WithoutHeader treats the first row as data; column names are synthesized
// as col_0, col_1, ...
func WithoutHeader() CSVOption {
	return func(c *CSVConverter) { c.hasHeader = false }
}

// CSVConverter converts CSV input into one Document per data row. The first
// row is treated as a header unless WithoutHeader is given.
type CSVConverter struct {
	delimiter rune
	hasHeader bool
}

// NewCSVConverter creates a CSVConverter.
func NewCSVConverter(opts ...CSVOption) *CSVConverter {
	c := &CSVConverter{
		delimiter: ',',
		hasHeader: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format returns "csv".
func (c *CSVConverter) Format() string { return "csv" }

// Convert parses CSV and emits one Document per row, with the header values
// as field keys and the joined row as content.
func (c *CSVConverter) Convert(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = c.delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("convert: parsing csv: %w", err)
	}
	if len(rows) == 0 {
		return marshalDocuments([]Document{})
	}

	var header []string
	if c.hasHeader {
		header = rows[0]
		rows = rows[1:]
	} else {
		for i := range rows[0] {
			header = append(header, fmt.Sprintf("col_%d", i))
		}
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		fields := make(map[string]any, len(row))
		for i, cell := range row {
			key := fmt.Sprintf("col_%d", i)
			if i < len(header) {
				key = header[i]
			}
			fields[key] = cell
		}
		docs = append(docs, Document{
			ID:      uuid.NewString(),
			Content: strings.Join(row, " "),
			Fields:  fields,
		})
	}
	return marshalDocuments(docs)
}
