// Package importer parses question files supplied by the operator into
// loosely-typed records. Field-name normalization happens later, in the
// question service's bulk import; this layer only deals with file formats.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawRecord is one imported row keyed by whatever header names the source
// file used.
type RawRecord = map[string]string

// Parse dispatches on file extension. Supported: .json, .csv, .xlsx.
func Parse(filename string, r io.Reader) ([]RawRecord, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".json"):
		return ParseJSON(r)
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return ParseCSV(r)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported import format: %s", filename)
	}
}

// ParseJSON accepts either a bare array of records or an object with a
// "questions" array.
func ParseJSON(r io.Reader) ([]RawRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import payload: %w", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(raw, &objects); err != nil {
		var wrapper struct {
			Questions []map[string]any `json:"questions"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("import payload is not valid JSON: %w", err)
		}
		objects = wrapper.Questions
	}

	records := make([]RawRecord, 0, len(objects))
	for _, obj := range objects {
		record := RawRecord{}
		for k, v := range obj {
			record[k] = stringify(v)
		}
		records = append(records, record)
	}
	return records, nil
}

// ParseCSV treats the first row as headers, lowercased. Quoted fields and
// embedded commas follow standard CSV rules.
func ParseCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return []RawRecord{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return rowsToRecords(headers, rows[1:]), nil
}

// ParseXLSX reads the first sheet of a workbook, first row as headers.
func ParseXLSX(r io.Reader) ([]RawRecord, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return []RawRecord{}, nil
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []RawRecord{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return rowsToRecords(headers, rows[1:]), nil
}

func rowsToRecords(headers []string, rows [][]string) []RawRecord {
	records := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		empty := true
		record := RawRecord{}
		for i, header := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[header] = value
			if value != "" {
				empty = false
			}
		}
		if !empty {
			records = append(records, record)
		}
	}
	return records
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", value), ".0")
	default:
		return fmt.Sprintf("%v", value)
	}
}
