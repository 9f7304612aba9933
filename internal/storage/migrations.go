package storage

// schema is applied in order on every Initialize
var schema = []string{
	`CREATE TABLE IF NOT EXISTS config (
		key TEXT PRIMARY KEY,
		value BLOB
	)`,
	`CREATE TABLE IF NOT EXISTS passwords (
		id TEXT PRIMARY KEY,
		website TEXT NOT NULL,
		website_url TEXT NOT NULL DEFAULT '',
		encrypted_username BLOB NOT NULL,
		encrypted_password BLOB NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_passwords_updated_at ON passwords(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_passwords_website ON passwords(website)`,
}

// initializeSchema sets up the necessary database tables
func (s *sqliteStore) initializeSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
