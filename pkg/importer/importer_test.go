package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/exchange"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote/mock_remote"
	"github.com/golang/mock/gomock"
)

const testKey = remote.EncKey("session-key")

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestPrepare(t *testing.T) {
	path := writeFile(t, "passwords.csv", "website,username,password\n"+
		"a,b,c\n"+
		"d,e,f\n"+
		"g,h\n"+
		"j,k,l\n")

	sub, err := Prepare(path)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if sub.Count() != 3 || sub.SkippedRows != 1 {
		t.Errorf("Expected 3 records and 1 skipped row, got %d and %d", sub.Count(), sub.SkippedRows)
	}
	if sub.ConfirmPrompt() != "Are you sure you want to import 3 passwords?" {
		t.Errorf("Unexpected prompt %q", sub.ConfirmPrompt())
	}
}

func TestFromParsedRejects(t *testing.T) {
	parsed := &exchange.ParseResult{Records: []models.RawRecord{
		{"website": "a", "username": "b", "password": "c"},
		{"website": "d", "username": "e", "password": "f"},
		{"website": "g", "username": "", "password": "i"},
		{"website": "j", "username": "k", "password": "l"},
	}}
	sub, err := FromParsed(parsed)
	if err != nil {
		t.Fatalf("FromParsed() error = %v", err)
	}
	if sub.RejectedCount != 1 || sub.Count() != 3 {
		t.Errorf("Expected 1 rejected and 3 accepted, got %d and %d", sub.RejectedCount, sub.Count())
	}

	_, err = FromParsed(&exchange.ParseResult{Records: []models.RawRecord{{"website": "x"}}})
	var fe *models.FormatError
	if !errors.As(err, &fe) {
		t.Errorf("Expected FormatError for an all-invalid batch, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	sub := &Submission{}
	for i := 0; i < 12; i++ {
		sub.Records = append(sub.Records, models.Credential{Website: "w", Username: "u", Password: "secret"})
	}
	rows, more := sub.Preview()
	if len(rows) != PreviewLimit || more != 2 {
		t.Errorf("Expected %d rows and 2 more, got %d and %d", PreviewLimit, len(rows), more)
	}
	if rows[0].Password != "********" {
		t.Errorf("Expected masked password, got %q", rows[0].Password)
	}
}

func testSubmission() *Submission {
	return &Submission{Records: []models.Credential{
		{Website: "a", Username: "b", Password: "c"},
		{Website: "d", Username: "e", Password: "f"},
		{Website: "j", Username: "k", Password: "l"},
	}}
}

func TestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_remote.NewMockBatchImporter(ctrl)

	sub := testSubmission()
	store.EXPECT().
		ImportBatch(gomock.Any(), sub.Records, testKey).
		Return(&models.ImportResult{Success: true, SuccessCount: 2, ErrorCount: 1}, nil)

	o := New(store, time.Second)
	out, err := o.Submit(context.Background(), sub, 3, testKey)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if out.SuccessCount != 2 || out.ErrorCount != 1 {
		t.Errorf("Unexpected outcome %+v", out)
	}
	if out.Message != "Successfully imported 2 passwords with 1 errors" {
		t.Errorf("Unexpected message %q", out.Message)
	}
	if o.Busy() {
		t.Error("Expected submit control to be re-enabled")
	}
}

func TestSubmitRequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	o := New(mock_remote.NewMockBatchImporter(ctrl), 0)

	if _, err := o.Submit(context.Background(), testSubmission(), 2, testKey); !errors.Is(err, ErrNotConfirmed) {
		t.Errorf("Expected ErrNotConfirmed, got %v", err)
	}
	if _, err := o.Submit(context.Background(), &Submission{}, 0, testKey); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Expected ErrEmptyBatch, got %v", err)
	}
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name   string
		result *models.ImportResult
		err    error
	}{
		{name: "Transport failure", err: errors.New("connection reset")},
		{name: "Rejected by store", result: &models.ImportResult{Success: false, Message: "No valid passwords found in the import data"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_remote.NewMockBatchImporter(ctrl)
			store.EXPECT().ImportBatch(gomock.Any(), gomock.Any(), testKey).Return(tt.result, tt.err).Times(1)

			o := New(store, 0)
			_, err := o.Submit(context.Background(), testSubmission(), 3, testKey)
			var be *models.BackendError
			if !errors.As(err, &be) {
				t.Fatalf("Expected BackendError, got %v", err)
			}
			if o.Busy() {
				t.Error("Expected submit control to be re-enabled after failure")
			}
		})
	}
}

func TestSubmitSingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_remote.NewMockBatchImporter(ctrl)

	o := New(store, 0)
	started := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().ImportBatch(gomock.Any(), gomock.Any(), testKey).DoAndReturn(
		func(context.Context, []models.Credential, remote.EncKey) (*models.ImportResult, error) {
			close(started)
			<-release
			return &models.ImportResult{Success: true, SuccessCount: 3}, nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := o.Submit(context.Background(), testSubmission(), 3, testKey)
		done <- err
	}()

	<-started
	if !o.Busy() {
		t.Error("Expected orchestrator to be busy during the call")
	}
	if _, err := o.Submit(context.Background(), testSubmission(), 3, testKey); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy for concurrent submit, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Errorf("Submit() error = %v", err)
	}
}
