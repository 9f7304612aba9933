package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/exchange"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
)

func minimal() models.RawRecord {
	return models.RawRecord{"website": "GitHub", "username": "octo", "password": "pw"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(models.RawRecord)
		wantField string
	}{
		{name: "Minimal record", mutate: func(models.RawRecord) {}},
		{name: "Empty username", mutate: func(r models.RawRecord) { r["username"] = "" }, wantField: "username"},
		{name: "Whitespace website", mutate: func(r models.RawRecord) { r["website"] = "   " }, wantField: "website"},
		{name: "Long website", mutate: func(r models.RawRecord) { r["website"] = strings.Repeat("w", 101) }, wantField: "website"},
		{name: "Long username", mutate: func(r models.RawRecord) { r["username"] = strings.Repeat("u", 41) }, wantField: "username"},
		{name: "Long password", mutate: func(r models.RawRecord) { r["password"] = strings.Repeat("p", 61) }, wantField: "password"},
		{name: "Long notes", mutate: func(r models.RawRecord) { r["notes"] = strings.Repeat("n", 251) }, wantField: "notes"},
		{name: "Notes at bound", mutate: func(r models.RawRecord) { r["notes"] = strings.Repeat("n", 250) }},
		{name: "Relative URL", mutate: func(r models.RawRecord) { r["website_url"] = "github.com" }, wantField: "website_url"},
		{name: "Absolute URL", mutate: func(r models.RawRecord) { r["website_url"] = "https://github.com/login" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimal()
			tt.mutate(raw)
			_, err := Validate(raw)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Expected field %s, got %s", tt.wantField, ve.Field)
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	text := "website,username,password\n" +
		"a,b,c\n" +
		"d,e,f\n" +
		"g,,i\n" +
		"j,k,l\n"
	parsed, err := exchange.ParseDelimited(text)
	if err != nil {
		t.Fatalf("ParseDelimited() error = %v", err)
	}

	batch, err := ValidateBatch(parsed.Records)
	if err != nil {
		t.Fatalf("ValidateBatch() error = %v", err)
	}
	if batch.RejectedCount != 1 {
		t.Errorf("Expected 1 rejected record, got %d", batch.RejectedCount)
	}
	if len(batch.Accepted) != 3 {
		t.Errorf("Expected 3 accepted records, got %d", len(batch.Accepted))
	}

	_, err = ValidateBatch([]models.RawRecord{{"website": "x"}})
	if !errors.Is(err, ErrNoValidRecords) {
		t.Errorf("Expected ErrNoValidRecords, got %v", err)
	}
}
