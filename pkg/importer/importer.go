// Package importer turns a parsed file into one confirmed submission to the store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/logger"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/exchange"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/validator"
)

// PreviewLimit is the number of rows shown before confirmation.
const PreviewLimit = 10

var (
	// ErrBusy is returned while a submission is already in flight.
	ErrBusy = errors.New("an import is already in progress")
	// ErrNotConfirmed is returned when the acknowledged count does not match the batch.
	ErrNotConfirmed = errors.New("import not confirmed")
	// ErrEmptyBatch is returned when there is nothing to import.
	ErrEmptyBatch = errors.New("no passwords to import, please select a file first")
)

// Submission is a validated batch awaiting confirmation.
type Submission struct {
	Records       []models.Credential
	SkippedRows   int
	RejectedCount int
}

// Count is the number of records that will be sent.
func (s *Submission) Count() int {
	return len(s.Records)
}

// ConfirmPrompt is the question the user must accept.
func (s *Submission) ConfirmPrompt() string {
	return fmt.Sprintf("Are you sure you want to import %d passwords?", s.Count())
}

// PreviewRow is a masked record for display.
type PreviewRow struct {
	Website  string
	Username string
	Password string
}

// Preview returns up to PreviewLimit masked rows and the number not shown.
func (s *Submission) Preview() ([]PreviewRow, int) {
	n := min(len(s.Records), PreviewLimit)
	rows := make([]PreviewRow, 0, n)
	for _, c := range s.Records[:n] {
		rows = append(rows, PreviewRow{
			Website:  orNA(c.Website),
			Username: orNA(c.Username),
			Password: mask(c.Password),
		})
	}
	return rows, len(s.Records) - n
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func mask(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.Repeat("*", 8)
}

// Prepare parses and validates a file into a submission.
func Prepare(path string) (*Submission, error) {
	parsed, err := exchange.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return FromParsed(parsed)
}

// FromParsed validates parsed records into a submission.
func FromParsed(parsed *exchange.ParseResult) (*Submission, error) {
	batch, err := validator.ValidateBatch(parsed.Records)
	if err != nil {
		return nil, &models.FormatError{Reason: "No valid password entries found in the file."}
	}
	for _, r := range batch.Rejections {
		logger.Warn("Rejected import record", map[string]interface{}{"reason": r.Error()})
	}
	return &Submission{
		Records:       batch.Accepted,
		SkippedRows:   parsed.SkippedCount(),
		RejectedCount: batch.RejectedCount,
	}, nil
}

// Outcome is the aggregate result of a submission.
type Outcome struct {
	SuccessCount int
	ErrorCount   int
	Message      string
}

// Orchestrator submits confirmed batches one at a time.
type Orchestrator struct {
	store   remote.BatchImporter
	timeout time.Duration
	busy    atomic.Bool
}

// New creates an orchestrator. A zero timeout leaves the caller's deadline in charge.
func New(store remote.BatchImporter, timeout time.Duration) *Orchestrator {
	return &Orchestrator{store: store, timeout: timeout}
}

// Busy reports whether a submission is in flight; the submit control is
// disabled while it is true.
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Submit sends the whole batch in one call. acknowledged must equal the
// batch size the user was shown.
func (o *Orchestrator) Submit(ctx context.Context, sub *Submission, acknowledged int, key remote.EncKey) (*Outcome, error) {
	if sub == nil || sub.Count() == 0 {
		return nil, ErrEmptyBatch
	}
	if acknowledged != sub.Count() {
		return nil, ErrNotConfirmed
	}
	if !o.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer o.busy.Store(false)

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	logger.Info("Submitting import batch", map[string]interface{}{"count": sub.Count()})
	result, err := o.store.ImportBatch(ctx, sub.Records, key)
	if err != nil {
		logger.Error("Import failed", err, map[string]interface{}{"count": sub.Count()})
		return nil, &models.BackendError{Op: "import", Err: err}
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "Import failed"
		}
		return nil, &models.BackendError{Op: "import", Err: errors.New(msg)}
	}

	out := &Outcome{SuccessCount: result.SuccessCount, ErrorCount: result.ErrorCount}
	out.Message = fmt.Sprintf("Successfully imported %d passwords", out.SuccessCount)
	if out.ErrorCount > 0 {
		out.Message += fmt.Sprintf(" with %d errors", out.ErrorCount)
	}
	return out, nil
}
