package store

import (
	"context"
	"database/sql"
	"time"

	"pastepad/pkg/domain"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 5
	defaultQueryTimeout = 5 * time.Second
)

// SQLite stores pastes in a single table keyed by id.
type SQLite struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func NewSQLite(path string, maxOpenConns, maxIdleConns int, queryTimeout time.Duration) (*SQLite, error) {
	if maxOpenConns <= 0 {
		maxOpenConns = defaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = defaultMaxIdleConns
	}
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping db")
	}
	s := &SQLite{db: db, queryTimeout: queryTimeout}
	if err := s.migrate(); err != nil {
		return nil, errors.Wrap(err, "migration failed")
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return errors.Wrap(err, "enable WAL mode")
	}
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return errors.Wrap(err, "set busy timeout")
	}
	query := `
	CREATE TABLE IF NOT EXISTS pastes (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_created_at ON pastes(created_at);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLite) Put(ctx context.Context, p *domain.Paste) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	q := `
	INSERT INTO pastes (id, content, title, description, created_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		content = excluded.content,
		title = excluded.title,
		description = excluded.description,
		created_at = excluded.created_at
	`
	_, err := s.db.ExecContext(queryCtx, q, p.ID, p.Content, p.Title, p.Description, p.CreatedAt)
	return errors.Wrap(err, "db put")
}

func (s *SQLite) Get(ctx context.Context, id string) (*domain.Paste, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	q := `SELECT id, content, title, description, created_at FROM pastes WHERE id = ?`
	var p domain.Paste
	err := s.db.QueryRowContext(queryCtx, q, id).Scan(&p.ID, &p.Content, &p.Title, &p.Description, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPasteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "db get")
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]*domain.Paste, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	q := `SELECT id, content, title, description, created_at FROM pastes`
	rows, err := s.db.QueryContext(queryCtx, q)
	if err != nil {
		return nil, errors.Wrap(err, "db list")
	}
	defer rows.Close()
	var pastes []*domain.Paste
	for rows.Next() {
		var p domain.Paste
		if err := rows.Scan(&p.ID, &p.Content, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		pastes = append(pastes, &p)
	}
	return pastes, errors.Wrap(rows.Err(), "iterate rows")
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
