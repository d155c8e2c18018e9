package progress

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Gulur101/quran-toolkit/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS participants (
	id           INTEGER PRIMARY KEY,
	name         TEXT    NOT NULL,
	current_page INTEGER NOT NULL,
	position     INTEGER NOT NULL
)`

// SQLite stores the list in a single table. Row order is kept in the
// position column.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// the list is rewritten as a whole, one connection is enough
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]model.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, current_page FROM participants ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []model.Participant{}
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.CurrentPage); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}
	return participants, nil
}

// Save replaces the table contents in one transaction.
func (s *SQLite) Save(ctx context.Context, participants []model.Participant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM participants`); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO participants (id, name, current_page, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range participants {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.CurrentPage, i); err != nil {
			return fmt.Errorf("failed to insert participant %d: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit participants: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
