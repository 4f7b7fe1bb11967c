package catalogstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinefuse/internal/movie"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog_movies (
    catalog_id           INTEGER PRIMARY KEY,
    title                TEXT NOT NULL,
    release_year         INTEGER,
    original_language    TEXT NOT NULL DEFAULT '',
    genres_json          TEXT NOT NULL DEFAULT '[]',
    runtime_minutes      INTEGER,
    companies_json       TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_catalog_release_year ON catalog_movies(release_year);
`

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database and applies the
// schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import upserts catalog records in one transaction. A file lock
// serializes concurrent importers against the same database.
func (s *Store) Import(ctx context.Context, records []movie.CatalogRecord) (int, error) {
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return 0, fmt.Errorf("acquire import lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO catalog_movies (
            catalog_id, title, release_year, original_language,
            genres_json, runtime_minutes, companies_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(catalog_id) DO UPDATE SET
            title = excluded.title,
            release_year = excluded.release_year,
            original_language = excluded.original_language,
            genres_json = excluded.genres_json,
            runtime_minutes = excluded.runtime_minutes,
            companies_json = excluded.companies_json`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	imported := 0
	for _, record := range records {
		genres, err := json.Marshal(stringsOrEmpty(record.Genres))
		if err != nil {
			return imported, fmt.Errorf("marshal genres for %d: %w", record.CatalogID, err)
		}
		companies, err := json.Marshal(stringsOrEmpty(record.ProductionCompanies))
		if err != nil {
			return imported, fmt.Errorf("marshal companies for %d: %w", record.CatalogID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			record.CatalogID,
			record.Title,
			nullableInt(record.ReleaseYear),
			record.OriginalLanguage,
			string(genres),
			nullableInt(record.RuntimeMinutes),
			string(companies),
		); err != nil {
			return imported, fmt.Errorf("insert catalog id %d: %w", record.CatalogID, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return imported, fmt.Errorf("commit import: %w", err)
	}
	return imported, nil
}

// List returns every catalog record ordered by catalog id.
func (s *Store) List(ctx context.Context) ([]movie.CatalogRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT catalog_id, title, release_year, original_language,
               genres_json, runtime_minutes, companies_json
        FROM catalog_movies
        ORDER BY catalog_id`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var records []movie.CatalogRecord
	for rows.Next() {
		var (
			record        movie.CatalogRecord
			year, runtime sql.NullInt64
			genres        string
			companies     string
		)
		if err := rows.Scan(&record.CatalogID, &record.Title, &year, &record.OriginalLanguage, &genres, &runtime, &companies); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		record.ReleaseYear = int(year.Int64)
		record.RuntimeMinutes = int(runtime.Int64)
		if err := json.Unmarshal([]byte(genres), &record.Genres); err != nil {
			return nil, fmt.Errorf("unmarshal genres for %d: %w", record.CatalogID, err)
		}
		if err := json.Unmarshal([]byte(companies), &record.ProductionCompanies); err != nil {
			return nil, fmt.Errorf("unmarshal companies for %d: %w", record.CatalogID, err)
		}
		if len(record.Genres) == 0 {
			record.Genres = nil
		}
		if len(record.ProductionCompanies) == 0 {
			record.ProductionCompanies = nil
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count reports the number of stored catalog records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return n, nil
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
