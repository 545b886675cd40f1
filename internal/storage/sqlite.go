// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how created_at is stored. Lexical order equals time order.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID         string
	Difficulty string
	Rows       int
	Cols       int
	Mines      int
	Won        bool
	Elapsed    time.Duration
	Revealed   int // Safe cells opened
	Seed       int64
	CreatedAt  time.Time
}

// Stats aggregates the results of one difficulty.
type Stats struct {
	Difficulty string
	Played     int
	Won        int
	BestTime   time.Duration // Zero when nothing was won
	AvgTime    time.Duration // Mean time of won games
	LastPlayed time.Time
}

// WinRate returns the share of games won, in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("tui-mines", "results.db"))
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve data path: %w", err)
	}
	return path, nil
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

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			won INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			revealed INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(difficulty, won, elapsed_ms);
		CREATE INDEX IF NOT EXISTS idx_results_dims ON results(board_rows, board_cols, mines, won, elapsed_ms);
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

// SaveResult records a finished game and returns its ID.
// A missing ID or timestamp is filled in.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO results (id, difficulty, board_rows, board_cols, mines, won, elapsed_ms, revealed, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Difficulty, r.Rows, r.Cols, r.Mines, r.Won,
		r.Elapsed.Milliseconds(), r.Revealed, r.Seed,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.ID, nil
}

const resultColumns = `id, difficulty, board_rows, board_cols, mines, won, elapsed_ms, revealed, seed, created_at`

// BestTimes retrieves the fastest won games for a difficulty.
func (s *Store) BestTimes(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE difficulty = ? AND won = 1
		 ORDER BY elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

// BestTimesFor retrieves the fastest won games on a board of the given size,
// whatever mode produced them.
func (s *Store) BestTimesFor(rows, cols, mines, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE board_rows = ? AND board_cols = ? AND mines = ? AND won = 1
		 ORDER BY elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		rows, cols, mines, limit,
	)
}

// Recent retrieves the latest results of every difficulty.
func (s *Store) Recent(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r         Result
			elapsedMS int64
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Rows, &r.Cols, &r.Mines, &r.Won,
			&elapsedMS, &r.Revealed, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Stats retrieves aggregated statistics for a difficulty.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	stats := &Stats{Difficulty: difficulty}

	var (
		best, avg  sql.NullFloat64
		lastPlayed sql.NullString
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        MIN(CASE WHEN won = 1 THEN elapsed_ms END),
		        AVG(CASE WHEN won = 1 THEN elapsed_ms END),
		        MAX(created_at)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Played, &stats.Won, &best, &avg, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.BestTime = msDuration(best)
	stats.AvgTime = msDuration(avg)
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}
	return stats, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT difficulty FROM results`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list difficulties: %w", err)
	}

	var difficulties []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan difficulty: %w", err)
		}
		difficulties = append(difficulties, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	all := make(map[string]*Stats, len(difficulties))
	for _, d := range difficulties {
		st, err := s.Stats(d)
		if err != nil {
			return nil, err
		}
		all[d] = st
	}
	return all, nil
}

// ClearResults deletes the results of a difficulty, or all results when
// difficulty is empty.
func (s *Store) ClearResults(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func parseTime(v string) time.Time {
	if t, err := time.ParseInLocation(timeLayout, v, time.UTC); err == nil {
		return t
	}
	// Rows written by hand or other tools.
	if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
		return t
	}
	return time.Time{}
}

func msDuration(v sql.NullFloat64) time.Duration {
	if !v.Valid {
		return 0
	}
	return time.Duration(v.Float64 * float64(time.Millisecond))
}
