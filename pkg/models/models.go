package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Field names shared by both exchange formats, in export order.
const (
	FieldWebsite    = "website"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldWebsiteURL = "website_url"
	FieldNotes      = "notes"
)

// ExchangeFields is the fixed column order of exported files.
var ExchangeFields = []string{FieldWebsite, FieldUsername, FieldPassword, FieldWebsiteURL, FieldNotes}

// RequiredFields must be present and non-empty in every imported record.
var RequiredFields = []string{FieldWebsite, FieldUsername, FieldPassword}

// RawRecord is a parsed but not yet validated record, keyed by field name.
type RawRecord map[string]string

// Credential is a record that has passed validation.
type Credential struct {
	Website    string
	Username   string
	Password   string
	WebsiteURL string
	Notes      string
}

// FieldResult carries a decrypted secret field. Exactly one arm is set:
// Ok holds the plaintext, Err describes why the field could not be decrypted.
type FieldResult struct {
	Ok  string
	Err string
}

// Failed reports whether the field could not be decrypted.
func (f FieldResult) Failed() bool {
	return f.Err != ""
}

// Value returns the plaintext, or fallback if the field failed.
func (f FieldResult) Value(fallback string) string {
	if f.Failed() {
		return fallback
	}
	return f.Ok
}

// Okay wraps a successfully decrypted value.
func Okay(v string) FieldResult { return FieldResult{Ok: v} }

// Failure wraps a decryption failure.
func Failure(reason string) FieldResult { return FieldResult{Err: reason} }

type fieldResultJSON struct {
	Ok  *string `json:"Ok,omitempty"`
	Err *string `json:"Err,omitempty"`
}

// MarshalJSON encodes the result in the tagged {"Ok": v} / {"Err": e} shape.
func (f FieldResult) MarshalJSON() ([]byte, error) {
	if f.Failed() {
		return json.Marshal(fieldResultJSON{Err: &f.Err})
	}
	return json.Marshal(fieldResultJSON{Ok: &f.Ok})
}

// UnmarshalJSON accepts the tagged shape or a bare string.
func (f *FieldResult) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*f = Okay(plain)
		return nil
	}
	var tagged fieldResultJSON
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	switch {
	case tagged.Err != nil:
		*f = Failure(*tagged.Err)
	case tagged.Ok != nil:
		*f = Okay(*tagged.Ok)
	default:
		return errors.New("field result has neither Ok nor Err")
	}
	return nil
}

// ExportRecord is a stored credential as returned by the store.
type ExportRecord struct {
	ID         string      `json:"id"`
	Website    string      `json:"website"`
	Username   FieldResult `json:"username"`
	Password   FieldResult `json:"password"`
	WebsiteURL string      `json:"website_url,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Undecryptable reports whether any secret field failed to decrypt.
func (r ExportRecord) Undecryptable() bool {
	return r.Username.Failed() || r.Password.Failed()
}

// SearchPage is one page of browse or search results.
type SearchPage struct {
	Entries    []ExportRecord
	Page       int
	TotalPages int
	// Total is the number of matching records across all pages.
	Total int
}

// ImportResult is the aggregate outcome reported by the store for a batch.
type ImportResult struct {
	Success      bool
	SuccessCount int
	ErrorCount   int
	Message      string
}

// ExportSelection is the decrypted data prepared for an export file.
type ExportSelection struct {
	Success bool
	Data    []ExportRecord
}
