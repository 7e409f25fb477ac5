package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"barescript/internal/value"
)

// ParseCSV parses CSV text into a validated data array. The first record is
// the header; short records leave the missing fields null.
func ParseCSV(text string) (*value.Array, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return value.NewArray(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse CSV header: %w", err)
	}

	rows := value.NewArray()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse CSV: %w", err)
		}

		row := value.NewObject()
		for ix, name := range header {
			if ix < len(record) {
				row.Set(name, value.NewString(record[ix]))
			} else {
				row.Set(name, value.NIL)
			}
		}
		rows.Elements = append(rows.Elements, row)
	}

	if _, err := Validate(rows.Elements, true); err != nil {
		return nil, err
	}
	return rows, nil
}
