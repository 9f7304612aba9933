package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const rowColumns = `id, website, website_url, encrypted_username, encrypted_password, notes, created_at, updated_at`

const matchClause = `website LIKE ? OR website_url LIKE ? OR notes LIKE ?`

// sqliteStore implements VaultStore using SQLite
type sqliteStore struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// newSQLiteStore creates a new SQLite vault store
func newSQLiteStore(dbPath string) *sqliteStore {
	return &sqliteStore{
		dbPath: dbPath,
		now:    time.Now,
	}
}

// Initialize initializes the database connection and tables
func (s *sqliteStore) Initialize() error {
	if dir := filepath.Dir(s.dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.initializeSchema(); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *sqliteStore) getConfig(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return value, err
}

func (s *sqliteStore) setConfig(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, "INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetSalt retrieves the salt; a nil salt means no master password exists yet
func (s *sqliteStore) GetSalt(ctx context.Context) ([]byte, error) {
	return s.getConfig(ctx, "salt")
}

// SaveSalt saves a salt to the database
func (s *sqliteStore) SaveSalt(ctx context.Context, salt []byte) error {
	return s.setConfig(ctx, "salt", salt)
}

// GetTestVector retrieves the test vector for master password verification
func (s *sqliteStore) GetTestVector(ctx context.Context) ([]byte, error) {
	return s.getConfig(ctx, "test_vector")
}

// SaveTestVector saves a test vector to the database
func (s *sqliteStore) SaveTestVector(ctx context.Context, vector []byte) error {
	return s.setConfig(ctx, "test_vector", vector)
}

// Count returns the number of stored credentials
func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM passwords").Scan(&n)
	return n, err
}

// List returns one window of credentials ordered by last update
func (s *sqliteStore) List(ctx context.Context, limit, offset int) ([]Row, error) {
	return s.query(ctx, `
		SELECT `+rowColumns+`
		FROM passwords
		ORDER BY updated_at DESC, rowid DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
}

func likeArgs(term string) []any {
	pattern := "%" + term + "%"
	return []any{pattern, pattern, pattern}
}

// CountMatching counts credentials matching term
func (s *sqliteStore) CountMatching(ctx context.Context, term string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM passwords WHERE "+matchClause, likeArgs(term)...).Scan(&n)
	return n, err
}

// Search returns one window of credentials matching term
func (s *sqliteStore) Search(ctx context.Context, term string, limit, offset int) ([]Row, error) {
	args := append(likeArgs(term), limit, offset)
	return s.query(ctx, `
		SELECT `+rowColumns+`
		FROM passwords
		WHERE `+matchClause+`
		ORDER BY updated_at DESC, rowid DESC
		LIMIT ? OFFSET ?
	`, args...)
}

// Get retrieves a credential by ID
func (s *sqliteStore) Get(ctx context.Context, id string) (*Row, error) {
	rows, err := s.query(ctx, "SELECT "+rowColumns+" FROM passwords WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Insert adds a new credential, stamping both timestamps
func (s *sqliteStore) Insert(ctx context.Context, row *Row) error {
	now := s.now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO passwords (`+rowColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, row.ID, row.Website, row.WebsiteURL, row.Username, row.Password, row.Notes, now.UnixNano(), now.UnixNano())
	if err != nil {
		return err
	}
	row.CreatedAt, row.UpdatedAt = now, now
	return nil
}

// Update replaces an existing credential and refreshes updated_at
func (s *sqliteStore) Update(ctx context.Context, row *Row) error {
	now := s.now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE passwords
		SET website = ?, website_url = ?, encrypted_username = ?, encrypted_password = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, row.Website, row.WebsiteURL, row.Username, row.Password, row.Notes, now.UnixNano(), row.ID)
	if err != nil {
		return err
	}
	if err := requireAffected(result); err != nil {
		return err
	}
	row.UpdatedAt = now
	return nil
}

// Delete removes a credential
func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM passwords WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// SelectByIDs returns the selected credentials ordered by website
func (s *sqliteStore) SelectByIDs(ctx context.Context, ids []string) ([]Row, error) {
	query := "SELECT " + rowColumns + " FROM passwords"
	args := make([]any, 0, len(ids))
	if len(ids) > 0 {
		query += " WHERE id IN (" + strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",") + ")"
		for _, id := range ids {
			args = append(args, id)
		}
	}
	query += " ORDER BY website ASC"
	return s.query(ctx, query, args...)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		var createdAt, updatedAt int64
		err := rows.Scan(&row.ID, &row.Website, &row.WebsiteURL, &row.Username, &row.Password,
			&row.Notes, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		row.CreatedAt = time.Unix(0, createdAt).UTC()
		row.UpdatedAt = time.Unix(0, updatedAt).UTC()
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
