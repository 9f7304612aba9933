package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
)

// Length bounds shared by manual entry and batch import, in characters.
const (
	MaxWebsite  = 100
	MaxUsername = 40
	MaxPassword = 60
	MaxNotes    = 250
)

// ErrNoValidRecords is returned when a batch has no acceptable record.
var ErrNoValidRecords = errors.New("no valid password entries found")

// Batch is the outcome of validating a parsed file.
type Batch struct {
	Accepted      []models.Credential
	RejectedCount int
	// Rejections holds one reason per rejected record, in input order.
	Rejections []*models.ValidationError
}

// Validate checks a raw record. Website, username and notes are trimmed;
// the password is kept verbatim.
func Validate(raw models.RawRecord) (models.Credential, error) {
	c := models.Credential{
		Website:    strings.TrimSpace(raw[models.FieldWebsite]),
		Username:   strings.TrimSpace(raw[models.FieldUsername]),
		Password:   raw[models.FieldPassword],
		WebsiteURL: strings.TrimSpace(raw[models.FieldWebsiteURL]),
		Notes:      strings.TrimSpace(raw[models.FieldNotes]),
	}
	if err := ValidateEntry(c); err != nil {
		return models.Credential{}, err
	}
	return c, nil
}

// ValidateEntry applies the rules in order and returns the first failure as a
// *models.ValidationError. It is used directly by the manual entry form.
func ValidateEntry(c models.Credential) error {
	required := []struct{ field, value string }{
		{models.FieldWebsite, c.Website},
		{models.FieldUsername, c.Username},
		{models.FieldPassword, c.Password},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &models.ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	bounds := []struct {
		field string
		value string
		max   int
	}{
		{models.FieldWebsite, c.Website, MaxWebsite},
		{models.FieldUsername, c.Username, MaxUsername},
		{models.FieldPassword, c.Password, MaxPassword},
		{models.FieldNotes, c.Notes, MaxNotes},
	}
	for _, b := range bounds {
		if utf8.RuneCountInString(b.value) > b.max {
			return &models.ValidationError{Field: b.field, Reason: fmt.Sprintf("exceeds maximum length of %d", b.max)}
		}
	}

	if c.WebsiteURL != "" && !IsValidURL(c.WebsiteURL) {
		return &models.ValidationError{Field: models.FieldWebsiteURL, Reason: "must be a valid URL"}
	}
	return nil
}

// IsValidURL reports whether s is an absolute URL with a scheme and host.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ValidateBatch validates every record. It fails only when nothing is accepted.
func ValidateBatch(records []models.RawRecord) (*Batch, error) {
	batch := &Batch{}
	for _, raw := range records {
		c, err := Validate(raw)
		if err != nil {
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				return nil, err
			}
			batch.RejectedCount++
			batch.Rejections = append(batch.Rejections, ve)
			continue
		}
		batch.Accepted = append(batch.Accepted, c)
	}
	if len(batch.Accepted) == 0 {
		return batch, ErrNoValidRecords
	}
	return batch, nil
}
