// Package storage provides SQLite-based persistence for saved scenes and
// collision-check run history. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SceneEntry is a saved scene: a name plus its YAML document.
type SceneEntry struct {
	ID        int64
	Name      string
	YAML      string
	CreatedAt time.Time
}

// RunEntry records one collision-check run over a scene.
type RunEntry struct {
	ID         int64
	Scene      string
	Pairs      int // unordered body pairs tested
	Hits       int // pairs found intersecting
	DurationUS int64
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS scenes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			yaml TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			pairs INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene ON runs(scene);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);
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

// SaveScene stores or replaces a named scene.
func (s *Store) SaveScene(name string, yamlDoc []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO scenes (name, yaml) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET yaml = excluded.yaml`,
		name, string(yamlDoc),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save scene: %w", err)
	}
	return nil
}

// Scene retrieves a saved scene by name. Returns nil if not found.
func (s *Store) Scene(name string) (*SceneEntry, error) {
	var e SceneEntry
	var createdAt any

	err := s.db.QueryRow(
		"SELECT id, name, yaml, created_at FROM scenes WHERE name = ?",
		name,
	).Scan(&e.ID, &e.Name, &e.YAML, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scene: %w", err)
	}

	e.CreatedAt = parseTimestamp(createdAt)
	return &e, nil
}

// ListScenes retrieves all saved scenes ordered by name.
func (s *Store) ListScenes() ([]SceneEntry, error) {
	rows, err := s.db.Query("SELECT id, name, yaml, created_at FROM scenes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenes: %w", err)
	}
	defer rows.Close()

	var entries []SceneEntry
	for rows.Next() {
		var e SceneEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.YAML, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteScene removes a saved scene. Deleting a missing scene is not an
// error.
func (s *Store) DeleteScene(name string) error {
	_, err := s.db.Exec("DELETE FROM scenes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scene: %w", err)
	}
	return nil
}

// RecordRun stores the outcome of one collision-check run.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(sceneName string, pairs, hits int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scene, pairs, hits, duration_us) VALUES (?, ?, ?, ?)",
		sceneName, pairs, hits, duration.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, pairs, hits, duration_us, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scene, &e.Pairs, &e.Hits, &e.DurationUS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunsForScene retrieves runs for a specific scene, newest first.
func (s *Store) RunsForScene(sceneName string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, pairs, hits, duration_us, created_at
		 FROM runs
		 WHERE scene = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scene, &e.Pairs, &e.Hits, &e.DurationUS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
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
