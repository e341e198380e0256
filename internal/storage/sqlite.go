// Package storage provides the SQLite episode journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Episode is one finished (or abandoned) run.
type Episode struct {
	ID          string // UUID; generated by SaveEpisode when empty
	Variant     string
	Player      string // local user or SSH user
	Difficulty  string
	Seed        int64
	Status      string // won, lost or abandoned
	Reason      string // ghost, timeout, wall; empty when won
	Score       int
	Ticks       int
	PelletsLeft int
	CreatedAt   time.Time
}

// VariantStats aggregates the journal for one variant.
type VariantStats struct {
	Variant    string
	Episodes   int
	Wins       int
	AvgScore   float64
	AvgTicks   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			status TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			pellets_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_variant ON episodes(variant);
		CREATE INDEX IF NOT EXISTS idx_episodes_created ON episodes(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveEpisode records an episode and returns its ID.
func (s *Store) SaveEpisode(e Episode) (string, error) {
	if e.Variant == "" {
		return "", errors.New("storage: episode without variant")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO episodes
		 (id, variant, player, difficulty, seed, status, reason, score, ticks, pellets_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Variant, e.Player, e.Difficulty, e.Seed,
		e.Status, e.Reason, e.Score, e.Ticks, e.PelletsLeft,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save episode: %w", err)
	}
	return e.ID, nil
}

const episodeColumns = `id, variant, player, difficulty, seed, status, reason, score, ticks, pellets_left, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEpisode(sc scanner) (Episode, error) {
	var e Episode
	var createdAt any
	err := sc.Scan(&e.ID, &e.Variant, &e.Player, &e.Difficulty, &e.Seed,
		&e.Status, &e.Reason, &e.Score, &e.Ticks, &e.PelletsLeft, &createdAt)
	if err != nil {
		return Episode{}, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// EpisodeByID returns the episode with the given ID, or nil when there is none.
func (s *Store) EpisodeByID(id string) (*Episode, error) {
	row := s.db.QueryRow(`SELECT `+episodeColumns+` FROM episodes WHERE id = ?`, id)
	e, err := scanEpisode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episode: %w", err)
	}
	return &e, nil
}

// RecentEpisodes returns the newest episodes first. An empty variant matches all.
func (s *Store) RecentEpisodes(variant string, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+episodeColumns+`
		 FROM episodes
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		episodes = append(episodes, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return episodes, nil
}

// ClearEpisodes deletes the journal of one variant, or everything when variant is empty.
func (s *Store) ClearEpisodes(variant string) error {
	_, err := s.db.Exec("DELETE FROM episodes WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	return nil
}

// Stats aggregates the journal per variant.
func (s *Store) Stats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END),
		        AVG(score), AVG(ticks), MAX(created_at)
		 FROM episodes
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastPlayed any
		if err := rows.Scan(&vs.Variant, &vs.Episodes, &vs.Wins, &vs.AvgScore, &vs.AvgTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = parseTime(lastPlayed)
		stats[vs.Variant] = &vs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
