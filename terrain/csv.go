// csv.go — decoder for the canonical tabular terrain format:
//
//	code,terrain,base_cost,ascent_cost,descent_cost,diagonal_factor,passable
//
// A header row is recognized by its first field being "code" and skipped.
package terrain

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvFieldCount is the expected number of columns per record.
const csvFieldCount = 7

// ReadCSV decodes terrain records from r and builds an immutable Table.
// Missing or malformed rows are configuration faults (ErrMalformedRecord
// with row context), never skipped.
// Complexity: O(rows).
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = csvFieldCount
	reader.TrimLeadingSpace = true

	var records []Cost
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRecord, row, err)
		}
		if row == 1 && strings.EqualFold(strings.TrimSpace(fields[0]), "code") {
			continue // header row
		}

		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRecord, row, err)
		}
		records = append(records, rec)
	}

	return NewTable(records)
}

// decodeRecord converts one CSV row into a Cost record.
func decodeRecord(fields []string) (Cost, error) {
	code := strings.TrimSpace(fields[0])
	if len(code) != 1 {
		return Cost{}, fmt.Errorf("code must be a single character, got %q", code)
	}

	base, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Cost{}, fmt.Errorf("base_cost: %v", err)
	}
	ascent, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return Cost{}, fmt.Errorf("ascent_cost: %v", err)
	}
	descent, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return Cost{}, fmt.Errorf("descent_cost: %v", err)
	}
	diagonal, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return Cost{}, fmt.Errorf("diagonal_factor: %v", err)
	}
	passable, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(fields[6])))
	if err != nil {
		return Cost{}, fmt.Errorf("passable: %v", err)
	}

	return Cost{
		Code:           code[0],
		Name:           strings.TrimSpace(fields[1]),
		Base:           base,
		Ascent:         ascent,
		Descent:        descent,
		DiagonalFactor: diagonal,
		Passable:       passable,
	}, nil
}
