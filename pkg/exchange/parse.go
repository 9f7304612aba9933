package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/logger"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
)

// Format identifies an exchange file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a user-supplied name ("json", "CSV") to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", &models.FormatError{Reason: fmt.Sprintf("invalid export format: %q", name)}
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch Format(ext) {
	case FormatJSON, FormatCSV:
		return Format(ext), nil
	}
	return "", &models.FormatError{Reason: "Unsupported file format. Please use JSON or CSV files."}
}

// ParseResult holds the records recovered from a file and the rows that were skipped.
type ParseResult struct {
	Records []models.RawRecord
	Skipped []*models.PartialRecordError
}

// SkippedCount returns the number of skipped rows.
func (r *ParseResult) SkippedCount() int {
	return len(r.Skipped)
}

// ParseFile reads path and parses it according to its extension.
func ParseFile(path string) (*ParseResult, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return Parse(format, string(data))
}

// Parse dispatches to the parser for format.
func Parse(format Format, text string) (*ParseResult, error) {
	switch format {
	case FormatJSON:
		records, err := ParseStructured(text)
		if err != nil {
			return nil, err
		}
		return &ParseResult{Records: records}, nil
	case FormatCSV:
		return ParseDelimited(text)
	}
	return nil, &models.FormatError{Reason: fmt.Sprintf("unsupported format %q", format)}
}

// ParseStructured parses a JSON array of objects. Non-string scalar values are
// kept in their JSON text form; null values are treated as absent.
func ParseStructured(text string) ([]models.RawRecord, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, &models.FormatError{Reason: "Invalid JSON format. Expected an array of password objects."}
		}
		return nil, &models.FormatError{Reason: fmt.Sprintf("Invalid JSON format: %v", err)}
	}
	if items == nil {
		return nil, &models.FormatError{Reason: "Invalid JSON format. Expected an array of password objects."}
	}

	records := make([]models.RawRecord, 0, len(items))
	for i, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, &models.FormatError{Reason: fmt.Sprintf("Invalid JSON format: element %d is not an object", i)}
		}
		rec := make(models.RawRecord, len(obj))
		for k, v := range obj {
			if s, ok := scalarString(v); ok {
				rec[k] = s
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func scalarString(v json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, true
	}
	switch trimmed[0] {
	case '{', '[':
		return "", false
	}
	return string(trimmed), true
}

// ParseDelimited parses CSV text with a header row. Rows whose field count
// differs from the header are skipped and reported in the result.
func ParseDelimited(text string) (*ParseResult, error) {
	var lines []string
	var lineNos []int
	for _, rec := range splitRecords(text) {
		if strings.TrimSpace(rec.text) == "" {
			continue
		}
		lines = append(lines, rec.text)
		lineNos = append(lineNos, rec.line)
	}
	if len(lines) < 2 {
		return nil, &models.FormatError{Reason: "CSV file must contain a header row and at least one data row."}
	}

	header := ParseLine(lines[0])
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	for _, required := range models.RequiredFields {
		if !contains(header, required) {
			return nil, &models.FormatError{Reason: fmt.Sprintf("CSV is missing required column: %s", required)}
		}
	}

	result := &ParseResult{}
	for i, line := range lines[1:] {
		values := ParseLine(line)
		if len(values) != len(header) {
			skip := &models.PartialRecordError{
				Row:    lineNos[i+1],
				Reason: fmt.Sprintf("column count mismatch: expected %d, got %d", len(header), len(values)),
			}
			logger.Warn("Skipping CSV row", map[string]interface{}{"row": skip.Row, "reason": skip.Reason})
			result.Skipped = append(result.Skipped, skip)
			continue
		}
		rec := make(models.RawRecord, len(header))
		for j, column := range header {
			rec[column] = values[j]
		}
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 {
		return nil, &models.FormatError{Reason: "No valid password entries found in the CSV file."}
	}
	return result, nil
}

// ParseLine splits one CSV record into fields. Inside a quoted section a
// doubled quote is a literal quote; any other quote toggles quoting. Commas
// split fields only outside quotes.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	return append(fields, current.String())
}

type record struct {
	text string
	line int
}

// splitRecords breaks text at line endings that fall outside quoted fields,
// so a quoted value may carry embedded newlines.
func splitRecords(text string) []record {
	var out []record
	start, line, startLine := 0, 1, 1
	inQuotes := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if !inQuotes {
				out = append(out, record{text: strings.TrimSuffix(text[start:i], "\r"), line: startLine})
				start = i + 1
				startLine = line + 1
			}
			line++
		}
	}
	if start < len(text) {
		out = append(out, record{text: strings.TrimSuffix(text[start:], "\r"), line: startLine})
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
