package manager

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/crypto"
	"github.com/BlankTuber/Tauri-PwdMngr/internal/logger"
	"github.com/BlankTuber/Tauri-PwdMngr/internal/storage"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/validator"
)

// PageSize is the number of credentials per browse or search page
const PageSize = 6

var (
	// ErrInvalidMasterPassword is returned when the master password does not match the vault
	ErrInvalidMasterPassword = errors.New("invalid master password")

	// ErrNotInitialized is returned when no master password has been created yet
	ErrNotInitialized = errors.New("no master password found, please run init first")

	// ErrAlreadyInitialized is returned when creating a master password twice
	ErrAlreadyInitialized = errors.New("vault already has a master password")

	// ErrEmptySelection is returned when an export selection names no passwords
	ErrEmptySelection = errors.New("No passwords selected for export")
)

// Vault is the local credential store. It implements remote.Store; every
// call takes the session key explicitly and holds no key state of its own.
type Vault struct {
	storage storage.VaultStore
	crypto  crypto.FieldCipher
	newID   func() string
}

var _ remote.Store = (*Vault)(nil)

// New creates a vault over an initialized store
func New(store storage.VaultStore, cipher crypto.FieldCipher) *Vault {
	return &Vault{
		storage: store,
		crypto:  cipher,
		newID:   uuid.NewString,
	}
}

// Open opens the SQLite vault at dbPath
func Open(dbPath string) (*Vault, error) {
	store := storage.NewVaultStore(dbPath)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return New(store, crypto.NewFieldCipher()), nil
}

// Close closes the underlying storage
func (v *Vault) Close() error {
	return v.storage.Close()
}

// Initialized reports whether a master password has been created
func (v *Vault) Initialized(ctx context.Context) (bool, error) {
	salt, err := v.storage.GetSalt(ctx)
	if err != nil {
		return false, err
	}
	return salt != nil, nil
}

// CreateMasterPassword sets up a new master password and returns the session key
func (v *Vault) CreateMasterPassword(ctx context.Context, masterPassword string) (remote.EncKey, error) {
	initialized, err := v.Initialized(ctx)
	if err != nil {
		return "", err
	}
	if initialized {
		return "", ErrAlreadyInitialized
	}

	salt, err := v.crypto.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key, err := v.crypto.DeriveKey(masterPassword, salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	vector, err := crypto.NewTestVector(v.crypto, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt test vector: %w", err)
	}

	if err := v.storage.SaveTestVector(ctx, vector); err != nil {
		return "", fmt.Errorf("failed to save test vector: %w", err)
	}
	if err := v.storage.SaveSalt(ctx, salt); err != nil {
		return "", fmt.Errorf("failed to save salt: %w", err)
	}

	logger.Info("Master password created", nil)
	return remote.EncKey(crypto.EncodeKey(key)), nil
}

// Unlock verifies the master password and returns the session key
func (v *Vault) Unlock(ctx context.Context, masterPassword string) (remote.EncKey, error) {
	salt, err := v.storage.GetSalt(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get salt: %w", err)
	}
	if salt == nil {
		return "", ErrNotInitialized
	}

	key, err := v.crypto.DeriveKey(masterPassword, salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	vector, err := v.storage.GetTestVector(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get test vector: %w", err)
	}
	if !v.crypto.VerifyKey(key, vector) {
		return "", ErrInvalidMasterPassword
	}

	return remote.EncKey(crypto.EncodeKey(key)), nil
}

// FetchPage returns one page of credentials, most recently updated first
func (v *Vault) FetchPage(ctx context.Context, page int, key remote.EncKey) (*models.SearchPage, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return nil, err
	}
	page = max(page, 1)

	total, err := v.storage.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count passwords: %w", err)
	}
	rows, err := v.storage.List(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passwords: %w", err)
	}

	return &models.SearchPage{
		Entries:    v.openAll(rows, raw),
		Page:       page,
		TotalPages: totalPages(total),
		Total:      total,
	}, nil
}

// SearchPage returns one page of credentials whose website, URL or notes
// contain term. Within the page, entries whose username also contains the
// term come first.
func (v *Vault) SearchPage(ctx context.Context, term string, page int, key remote.EncKey) (*models.SearchPage, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return nil, err
	}
	term = strings.TrimSpace(term)
	page = max(page, 1)

	total, err := v.storage.CountMatching(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}
	rows, err := v.storage.Search(ctx, term, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search passwords: %w", err)
	}

	entries := v.openAll(rows, raw)
	needle := strings.ToLower(term)
	sort.SliceStable(entries, func(i, j int) bool {
		return usernameMatches(entries[i], needle) && !usernameMatches(entries[j], needle)
	})

	return &models.SearchPage{
		Entries:    entries,
		Page:       page,
		TotalPages: totalPages(total),
		Total:      total,
	}, nil
}

// FetchCredentialDetail returns a single decrypted credential
func (v *Vault) FetchCredentialDetail(ctx context.Context, id string, key remote.EncKey) (*models.ExportRecord, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return nil, err
	}
	row, err := v.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	record := v.open(*row, raw)
	return &record, nil
}

// CreateCredential validates and stores a new credential
func (v *Vault) CreateCredential(ctx context.Context, c models.Credential, key remote.EncKey) (string, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return "", err
	}
	if err := validator.ValidateEntry(c); err != nil {
		return "", err
	}
	if _, err := v.insert(ctx, c, raw); err != nil {
		return "", fmt.Errorf("failed to create password: %w", err)
	}
	return "Password successfully saved!", nil
}

// UpdateCredential validates and replaces an existing credential
func (v *Vault) UpdateCredential(ctx context.Context, id string, c models.Credential, key remote.EncKey) (string, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return "", err
	}
	if err := validator.ValidateEntry(c); err != nil {
		return "", err
	}

	row, err := v.seal(id, c, raw)
	if err != nil {
		return "", err
	}
	if err := v.storage.Update(ctx, row); err != nil {
		return "", fmt.Errorf("failed to update password: %w", err)
	}
	return "Password successfully updated!", nil
}

// DeleteCredential removes a credential
func (v *Vault) DeleteCredential(ctx context.Context, id string) (string, error) {
	if err := v.storage.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete password: %w", err)
	}
	return "Password successfully deleted!", nil
}

// ImportBatch stores each valid credential independently and reports
// aggregate counts. Invalid or failing records are counted, not fatal.
func (v *Vault) ImportBatch(ctx context.Context, records []models.Credential, key remote.EncKey) (*models.ImportResult, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no passwords data provided")
	}

	var successCount, errorCount int
	for i, c := range records {
		if err := validator.ValidateEntry(c); err != nil {
			errorCount++
			logger.Warn("Skipping invalid import record", map[string]interface{}{"index": i, "reason": err.Error()})
			continue
		}
		if _, err := v.insert(ctx, c, raw); err != nil {
			errorCount++
			logger.Error("Failed to import record", err, map[string]interface{}{"index": i})
			continue
		}
		successCount++
	}

	logger.Info("Import batch stored", map[string]interface{}{"imported": successCount, "errors": errorCount})
	return &models.ImportResult{
		Success:      successCount > 0,
		SuccessCount: successCount,
		ErrorCount:   errorCount,
		Message:      fmt.Sprintf("Imported %d passwords with %d errors", successCount, errorCount),
	}, nil
}

// FetchAllForExport returns every credential decrypted, ordered by website
func (v *Vault) FetchAllForExport(ctx context.Context, key remote.EncKey) ([]models.ExportRecord, error) {
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return nil, err
	}
	rows, err := v.storage.SelectByIDs(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passwords: %w", err)
	}
	return v.openAll(rows, raw), nil
}

// PrepareExportSelection returns the selected credentials decrypted. An
// empty selection is refused.
func (v *Vault) PrepareExportSelection(ctx context.Context, key remote.EncKey, ids []string) (*models.ExportSelection, error) {
	if len(ids) == 0 {
		return &models.ExportSelection{Success: false}, ErrEmptySelection
	}
	raw, err := crypto.DecodeKey(string(key))
	if err != nil {
		return nil, err
	}
	rows, err := v.storage.SelectByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passwords: %w", err)
	}
	return &models.ExportSelection{Success: true, Data: v.openAll(rows, raw)}, nil
}

func (v *Vault) insert(ctx context.Context, c models.Credential, key []byte) (string, error) {
	row, err := v.seal(v.newID(), c, key)
	if err != nil {
		return "", err
	}
	if err := v.storage.Insert(ctx, row); err != nil {
		return "", err
	}
	return row.ID, nil
}

func (v *Vault) seal(id string, c models.Credential, key []byte) (*storage.Row, error) {
	username, err := v.crypto.Seal(c.Username, key, id)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt username: %w", err)
	}
	password, err := v.crypto.Seal(c.Password, key, id)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}
	return &storage.Row{
		ID:         id,
		Website:    c.Website,
		WebsiteURL: c.WebsiteURL,
		Username:   username,
		Password:   password,
		Notes:      c.Notes,
	}, nil
}

func (v *Vault) open(row storage.Row, key []byte) models.ExportRecord {
	return models.ExportRecord{
		ID:         row.ID,
		Website:    row.Website,
		Username:   v.openField(row.Username, key, row.ID),
		Password:   v.openField(row.Password, key, row.ID),
		WebsiteURL: row.WebsiteURL,
		Notes:      row.Notes,
		UpdatedAt:  row.UpdatedAt,
	}
}

func (v *Vault) openAll(rows []storage.Row, key []byte) []models.ExportRecord {
	records := make([]models.ExportRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, v.open(row, key))
	}
	return records
}

func (v *Vault) openField(sealed []byte, key []byte, id string) models.FieldResult {
	plaintext, err := v.crypto.Open(sealed, key, id)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.Okay(plaintext)
}

func usernameMatches(r models.ExportRecord, needle string) bool {
	return !r.Username.Failed() && strings.Contains(strings.ToLower(r.Username.Ok), needle)
}

func totalPages(total int) int {
	return int(math.Ceil(float64(total) / PageSize))
}
