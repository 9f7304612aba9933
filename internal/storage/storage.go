package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no credential row has the requested ID
var ErrNotFound = errors.New("credential not found")

// Row is a stored credential. Username and Password are sealed; the other
// fields are kept in plaintext so they can be searched.
type Row struct {
	ID         string
	Website    string
	WebsiteURL string
	Username   []byte
	Password   []byte
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VaultStore defines the interface for vault persistence
type VaultStore interface {
	// Initialize opens the database and applies the schema
	Initialize() error

	// Close closes the storage connection
	Close() error

	// GetSalt retrieves the key derivation salt
	GetSalt(ctx context.Context) ([]byte, error)

	// SaveSalt saves the key derivation salt
	SaveSalt(ctx context.Context, salt []byte) error

	// GetTestVector retrieves the test vector for master password verification
	GetTestVector(ctx context.Context) ([]byte, error)

	// SaveTestVector saves the master password test vector
	SaveTestVector(ctx context.Context, vector []byte) error

	// Count returns the number of stored credentials
	Count(ctx context.Context) (int, error)

	// List returns one window of credentials, most recently updated first
	List(ctx context.Context, limit, offset int) ([]Row, error)

	// CountMatching returns the number of credentials whose website, URL or
	// notes contain term
	CountMatching(ctx context.Context, term string) (int, error)

	// Search returns one window of matching credentials, most recently updated first
	Search(ctx context.Context, term string, limit, offset int) ([]Row, error)

	// Get retrieves a credential by ID
	Get(ctx context.Context, id string) (*Row, error)

	// Insert adds a new credential
	Insert(ctx context.Context, row *Row) error

	// Update replaces the fields of an existing credential
	Update(ctx context.Context, row *Row) error

	// Delete removes a credential
	Delete(ctx context.Context, id string) error

	// SelectByIDs returns the given credentials ordered by website; no IDs selects all
	SelectByIDs(ctx context.Context, ids []string) ([]Row, error)
}

// NewVaultStore creates a new instance of the default vault store
func NewVaultStore(dbPath string) VaultStore {
	return newSQLiteStore(dbPath)
}
