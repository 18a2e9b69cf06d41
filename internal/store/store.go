// Package store persists interpreted transaction effects: one row per
// balance-change record, keyed by transaction hash, so past
// interpretations can be queried per account without re-reading ledger
// metadata.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ChangeRecord is one persisted balance-change row.
type ChangeRecord struct {
	Hash       string
	CTID       string
	Account    string
	Currency   string
	Issuer     string
	Value      string
	Action     string
	RecordedAt time.Time
}

// Filter narrows a history query. Zero values match everything.
type Filter struct {
	Account  string
	Currency string
	Hash     string
	Limit    int
}

// Store is the sqlite-backed history store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at dbPath and migrates the schema.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is required")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS tx_changes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hash TEXT NOT NULL,
			ctid TEXT NOT NULL DEFAULT '',
			account TEXT NOT NULL,
			currency TEXT NOT NULL,
			issuer TEXT NOT NULL DEFAULT '',
			value TEXT NOT NULL,
			action TEXT NOT NULL,
			recorded_at INTEGER NOT NULL,
			UNIQUE(hash, account, currency, issuer, action)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tx_changes_account ON tx_changes(account)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertChanges writes one transaction's balance-change rows. Re-running
// the same transaction is a no-op per row.
func (s *Store) InsertChanges(ctx context.Context, records []ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tx_changes (hash, ctid, account, currency, issuer, value, action, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash, account, currency, issuer, action) DO NOTHING`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		recordedAt := rec.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx, rec.Hash, rec.CTID, rec.Account, rec.Currency, rec.Issuer, rec.Value, rec.Action, recordedAt.Unix()); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ChangesByAccount returns an account's recorded balance changes, newest
// first.
func (s *Store) ChangesByAccount(ctx context.Context, filter Filter) ([]ChangeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	clauses := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if filter.Account != "" {
		clauses = append(clauses, "account = ?")
		args = append(args, filter.Account)
	}
	if filter.Currency != "" {
		clauses = append(clauses, "currency = ?")
		args = append(args, filter.Currency)
	}
	if filter.Hash != "" {
		clauses = append(clauses, "hash = ?")
		args = append(args, filter.Hash)
	}

	query := `SELECT hash, ctid, account, currency, issuer, value, action, recorded_at FROM tx_changes`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY recorded_at DESC, id DESC LIMIT ?"

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ChangeRecord
	for rows.Next() {
		var rec ChangeRecord
		var recordedAt int64
		if err := rows.Scan(&rec.Hash, &rec.CTID, &rec.Account, &rec.Currency, &rec.Issuer, &rec.Value, &rec.Action, &recordedAt); err != nil {
			return nil, err
		}
		rec.RecordedAt = time.Unix(recordedAt, 0).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
