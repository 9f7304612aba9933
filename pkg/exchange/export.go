package exchange

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
)

// Default file names for exported files.
const (
	JSONFileName = "passwords_export.json"
	CSVFileName  = "passwords_export.csv"
)

// FileName returns the default export file name for format.
func FileName(format Format) string {
	if format == FormatCSV {
		return CSVFileName
	}
	return JSONFileName
}

// exportEntry fixes the key order of structured exports. Optional fields are
// emitted as null when empty.
type exportEntry struct {
	Website    string  `json:"website"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	WebsiteURL *string `json:"website_url"`
	Notes      *string `json:"notes"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Encode serializes records in the given format.
func Encode(format Format, records []models.ExportRecord) (string, error) {
	switch format {
	case FormatJSON:
		return ToStructured(records)
	case FormatCSV:
		return ToDelimited(records), nil
	}
	return "", &models.FormatError{Reason: fmt.Sprintf("invalid export format: %q", format)}
}

// ToStructured renders records as a pretty-printed JSON array. Records whose
// secret fields could not be decrypted must be filtered out by the caller;
// their failed arms are written as empty strings.
func ToStructured(records []models.ExportRecord) (string, error) {
	entries := make([]exportEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, exportEntry{
			Website:    r.Website,
			Username:   r.Username.Value(""),
			Password:   r.Password.Value(""),
			WebsiteURL: optional(r.WebsiteURL),
			Notes:      optional(r.Notes),
		})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	return string(data), nil
}

// ToDelimited renders records as CSV with a fixed header row.
func ToDelimited(records []models.ExportRecord) string {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, strings.Join(models.ExchangeFields, ","))
	for _, r := range records {
		values := []string{
			r.Website,
			r.Username.Value(""),
			r.Password.Value(""),
			r.WebsiteURL,
			r.Notes,
		}
		for i, v := range values {
			values[i] = escapeField(v)
		}
		rows = append(rows, strings.Join(values, ","))
	}
	return strings.Join(rows, "\n")
}

func escapeField(v string) string {
	v = strings.ReplaceAll(v, `"`, `""`)
	if strings.ContainsAny(v, ",\"\r\n") {
		return `"` + v + `"`
	}
	return v
}
