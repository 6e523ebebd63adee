// Package sqlite persists the fetch manifest: one row per mirrored
// document path recording the outcome of the latest fetch attempt.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"regstub/internal/domain"
	"regstub/internal/ports"
)

const schemaVersion = "1"

// Manifest implements ports.FetchIndex using SQLite
type Manifest struct {
	db     *sql.DB
	dbPath string
}

// Ensure Manifest implements FetchIndex
var _ ports.FetchIndex = (*Manifest)(nil)

// NewManifest creates a new SQLite manifest
func NewManifest() *Manifest {
	return &Manifest{}
}

// Open initializes the manifest database under the stub base
func (m *Manifest) Open(stubBase string) error {
	m.dbPath = databasePath(stubBase)

	if err := os.MkdirAll(filepath.Dir(m.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	db, err := sql.Open("sqlite3", m.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open manifest database: %w", err)
	}
	m.db = db

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS fetches (
			path TEXT PRIMARY KEY,
			regulation TEXT NOT NULL DEFAULT '',
			notice TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			bytes INTEGER NOT NULL DEFAULT 0,
			fetched_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_fetches_regulation ON fetches(regulation);
		CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches(fetched_at);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup manifest database: %w", err)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to update manifest metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (m *Manifest) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// databasePath returns the manifest location inside the stub base
func databasePath(stubBase string) string {
	return filepath.Join(stubBase, ".regstub", "manifest.db")
}

// Record upserts the outcome of a fetch attempt, keyed by path
func (m *Manifest) Record(rec domain.FetchRecord) error {
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = time.Now()
	}

	_, err := m.db.Exec(`
		INSERT OR REPLACE INTO fetches (path, regulation, notice, status, detail, bytes, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.Path, rec.Regulation, rec.Notice, rec.Status, rec.Detail, rec.Bytes, rec.FetchedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record fetch of %s: %w", rec.Path, err)
	}
	return nil
}

// Recent returns up to limit records, newest first
func (m *Manifest) Recent(limit int) ([]domain.FetchRecord, error) {
	return m.query(`
		SELECT path, regulation, notice, status, detail, bytes, fetched_at
		FROM fetches ORDER BY fetched_at DESC, path LIMIT ?
	`, limit)
}

// ByRegulation returns up to limit records for one regulation, newest first
func (m *Manifest) ByRegulation(part string, limit int) ([]domain.FetchRecord, error) {
	return m.query(`
		SELECT path, regulation, notice, status, detail, bytes, fetched_at
		FROM fetches WHERE regulation = ? ORDER BY fetched_at DESC, path LIMIT ?
	`, part, limit)
}

func (m *Manifest) query(q string, args ...any) ([]domain.FetchRecord, error) {
	rows, err := m.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.FetchRecord
	for rows.Next() {
		var rec domain.FetchRecord
		var fetchedAt int64
		if err := rows.Scan(&rec.Path, &rec.Regulation, &rec.Notice, &rec.Status, &rec.Detail, &rec.Bytes, &fetchedAt); err != nil {
			return nil, err
		}
		rec.FetchedAt = time.Unix(fetchedAt, 0)
		records = append(records, rec)
	}

	return records, rows.Err()
}
