// Package archive keeps a SQLite history of finished games.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
	_ "modernc.org/sqlite"
)

const winnersSep = "\x1f"

// Store persists finished games in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the archive at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	const op = "archive.open"
	if strings.TrimSpace(path) == "" {
		return nil, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("archive path is required: %w", domain.ErrInvalidConfig)}
	}

	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: clean, Err: err}
	}

	dsn := clean + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: clean, Err: fmt.Errorf("open sqlite db: %w", err)}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: clean, Err: fmt.Errorf("ping sqlite db: %w", err)}
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: clean, Err: fmt.Errorf("run migrations: %w", err)}
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ ports.GameArchive = (*Store)(nil)

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores rec. A missing ID or timestamp is filled in and the stored
// record is returned.
func (s *Store) Record(ctx context.Context, rec domain.GameRecord) (domain.GameRecord, error) {
	const op = "archive.record"
	if len(rec.Players) == 0 {
		return rec, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("game has no players: %w", domain.ErrInvalidPlayers)}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = s.now()
	}
	rec.FinishedAt = rec.FinishedAt.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return rec, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO games (id, finished_at, winners) VALUES (?, ?, ?)`,
		rec.ID, rec.FinishedAt.UnixMilli(), strings.Join(rec.Winners, winnersSep),
	); err != nil {
		return rec, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	for seat, p := range rec.Players {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO game_players (game_id, seat, name, score) VALUES (?, ?, ?, ?)`,
			rec.ID, seat, p.Name, p.Score,
		); err != nil {
			return rec, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return rec, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	return rec, nil
}

// Recent returns the latest games, newest first. limit <= 0 means all.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	const op = "archive.recent"
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, finished_at, winners FROM games ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	var out []domain.GameRecord
	for rows.Next() {
		var (
			rec     domain.GameRecord
			ms      int64
			winners string
		)
		if err := rows.Scan(&rec.ID, &ms, &winners); err != nil {
			_ = rows.Close()
			return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
		}
		rec.FinishedAt = time.UnixMilli(ms).UTC()
		if winners != "" {
			rec.Winners = strings.Split(winners, winnersSep)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	_ = rows.Close()

	for i := range out {
		players, err := s.players(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Players = players
	}
	return out, nil
}

func (s *Store) players(ctx context.Context, gameID string) ([]domain.HighScore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score FROM game_players WHERE game_id = ? ORDER BY seat`, gameID)
	if err != nil {
		return nil, &domain.OpError{Op: "archive.players", Kind: domain.KindExecution, Err: err}
	}
	defer rows.Close()

	var out []domain.HighScore
	for rows.Next() {
		var p domain.HighScore
		if err := rows.Scan(&p.Name, &p.Score); err != nil {
			return nil, &domain.OpError{Op: "archive.players", Kind: domain.KindExecution, Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.OpError{Op: "archive.players", Kind: domain.KindExecution, Err: err}
	}
	return out, nil
}
