// Package remote defines the contract of the credential store that sits
// behind the client. Every call either succeeds or returns an error; callers
// wrap failures as *models.BackendError.
package remote

import (
	"context"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
)

// EncKey is opaque session key material.
type EncKey string

//go:generate mockgen -destination=mock_remote/mock_remote.go -package=mock_remote github.com/BlankTuber/Tauri-PwdMngr/pkg/remote PageFetcher,BatchImporter,ExportSource

// PageFetcher serves browse and search queries.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int, key EncKey) (*models.SearchPage, error)
	SearchPage(ctx context.Context, term string, page int, key EncKey) (*models.SearchPage, error)
}

// BatchImporter accepts a validated batch in one call.
type BatchImporter interface {
	ImportBatch(ctx context.Context, records []models.Credential, key EncKey) (*models.ImportResult, error)
}

// ExportSource returns decrypted records for export.
type ExportSource interface {
	FetchAllForExport(ctx context.Context, key EncKey) ([]models.ExportRecord, error)
	PrepareExportSelection(ctx context.Context, key EncKey, ids []string) (*models.ExportSelection, error)
}

// Store is the full remote contract.
type Store interface {
	PageFetcher
	BatchImporter
	ExportSource

	CreateCredential(ctx context.Context, c models.Credential, key EncKey) (string, error)
	UpdateCredential(ctx context.Context, id string, c models.Credential, key EncKey) (string, error)
	DeleteCredential(ctx context.Context, id string) (string, error)
	FetchCredentialDetail(ctx context.Context, id string, key EncKey) (*models.ExportRecord, error)
}
