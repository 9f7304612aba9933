package exchange

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{name: "Plain fields", line: "a,b,c", expected: []string{"a", "b", "c"}},
		{name: "Quoted comma", line: `a,"b,c",d`, expected: []string{"a", "b,c", "d"}},
		{name: "Doubled quote", line: `a,"b""c",d`, expected: []string{"a", `b"c`, "d"}},
		{name: "Trailing empty field", line: "a,", expected: []string{"a", ""}},
		{name: "Empty line", line: "", expected: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseLine(%q) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestParseDelimited(t *testing.T) {
	text := "website,username,password,website_url,notes\r\n" +
		"GitHub,octo,pa55,https://github.com,\r\n" +
		"\r\n" +
		"broken,row\r\n" +
		"Mail,\"me,you\",secret,,\"said \"\"hi\"\"\"\r\n"

	result, err := ParseDelimited(text)
	if err != nil {
		t.Fatalf("ParseDelimited() error = %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(result.Records))
	}
	if result.SkippedCount() != 1 {
		t.Errorf("Expected 1 skipped row, got %d", result.SkippedCount())
	}
	if result.Skipped[0].Row != 4 {
		t.Errorf("Expected skipped row 4, got %d", result.Skipped[0].Row)
	}
	if got := result.Records[1]["username"]; got != "me,you" {
		t.Errorf("Expected username 'me,you', got %q", got)
	}
	if got := result.Records[1]["notes"]; got != `said "hi"` {
		t.Errorf("Expected notes with quotes, got %q", got)
	}
}

func TestParseDelimitedErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		contain string
	}{
		{name: "Header only", text: "website,username,password\n\n", contain: "header row"},
		{name: "Missing column", text: "website,user,password\na,b,c", contain: "missing required column: username"},
		{name: "No usable rows", text: "website,username,password\na,b", contain: "No valid password entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDelimited(tt.text)
			var fe *models.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected FormatError, got %v", err)
			}
			if !strings.Contains(fe.Error(), tt.contain) {
				t.Errorf("Expected error containing %q, got %q", tt.contain, fe.Error())
			}
		})
	}
}

func TestParseStructured(t *testing.T) {
	text := `[
		{"website": "GitHub", "username": "octo", "password": "pa55", "notes": null},
		{"website": "Bank", "username": "me", "password": 1234}
	]`
	records, err := ParseStructured(text)
	if err != nil {
		t.Fatalf("ParseStructured() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if _, ok := records[0]["notes"]; ok {
		t.Error("Expected null notes to be absent")
	}
	if records[1]["password"] != "1234" {
		t.Errorf("Expected numeric password to be kept as text, got %q", records[1]["password"])
	}

	for _, bad := range []string{`{"website": "x"}`, `not json`, `null`, `[1, 2]`} {
		if _, err := ParseStructured(bad); err == nil {
			t.Errorf("Expected FormatError for %q", bad)
		}
	}
}

func TestRoundTripDelimited(t *testing.T) {
	records := []models.ExportRecord{
		{Website: "Plain", Username: models.Okay("user"), Password: models.Okay("pw")},
		{Website: "Comma, Inc", Username: models.Okay("a,b"), Password: models.Okay("x"), WebsiteURL: "https://c.example"},
		{Website: `Quote "Co"`, Username: models.Okay(`say "hi"`), Password: models.Okay(`""`), Notes: "n"},
		{Website: "Lines", Username: models.Okay("u"), Password: models.Okay("p"), Notes: "first\nsecond,\"third\""},
	}

	result, err := ParseDelimited(ToDelimited(records))
	if err != nil {
		t.Fatalf("ParseDelimited() error = %v", err)
	}
	if len(result.Records) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(result.Records))
	}
	for i, r := range records {
		want := models.RawRecord{
			"website":     r.Website,
			"username":    r.Username.Ok,
			"password":    r.Password.Ok,
			"website_url": r.WebsiteURL,
			"notes":       r.Notes,
		}
		if !reflect.DeepEqual(result.Records[i], want) {
			t.Errorf("Record %d = %q, want %q", i, result.Records[i], want)
		}
	}
}

func TestToStructured(t *testing.T) {
	out, err := ToStructured([]models.ExportRecord{
		{Website: "GitHub", Username: models.Okay("octo"), Password: models.Okay("pw"), WebsiteURL: "https://github.com"},
	})
	if err != nil {
		t.Fatalf("ToStructured() error = %v", err)
	}
	order := []string{`"website"`, `"username"`, `"password"`, `"website_url"`, `"notes": null`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		if idx <= last {
			t.Fatalf("Expected %s after previous key in %s", key, out)
		}
		last = idx
	}

	records, err := ParseStructured(out)
	if err != nil {
		t.Fatalf("ParseStructured() error = %v", err)
	}
	if records[0]["website_url"] != "https://github.com" {
		t.Errorf("Unexpected round trip: %v", records[0])
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "export.CSV")
	if err := os.WriteFile(csvPath, []byte("website,username,password\na,b,c\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	result, err := ParseFile(csvPath)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(result.Records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(result.Records))
	}

	txtPath := filepath.Join(dir, "export.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	var fe *models.FormatError
	if _, err := ParseFile(txtPath); !errors.As(err, &fe) {
		t.Errorf("Expected FormatError for unsupported extension, got %v", err)
	}
}
