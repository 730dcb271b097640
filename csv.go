package wui

import (
	"encoding/csv"
	"errors"
	"io"
)

// ReadDelimited parses comma-separated (or, with comma set to '\t',
// tab-separated) records from r into structured rows. Records may have
// different field counts; FormatTable pads them.
func ReadDelimited(r io.Reader, comma rune) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, Cells(record...))
	}
}
