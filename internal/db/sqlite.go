package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/game"
)

// Store persists sessions in SQLite. It implements game.Store with optimistic
// concurrency: every save checks the version it loaded and refuses to
// overwrite a session another command already advanced.
type Store struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// NewStore opens (and migrates) the database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		difficulty TEXT NOT NULL,
		player_json TEXT NOT NULL,
		room_json TEXT NOT NULL,
		history_json TEXT NOT NULL,
		rooms_cleared INTEGER NOT NULL,
		version INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Load reads a session by id.
func (s *Store) Load(ctx context.Context, id string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		sess                              game.Session
		difficulty                        string
		playerJSON, roomJSON, historyJSON string
	)

	err := s.conn.QueryRowContext(ctx, `
		SELECT id, difficulty, player_json, room_json, history_json, rooms_cleared, version, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&sess.ID, &difficulty, &playerJSON, &roomJSON, &historyJSON,
		&sess.RoomsCleared, &sess.Version, &sess.CreatedAt, &sess.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, game.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sess.Difficulty = game.Difficulty(difficulty)
	if err := json.Unmarshal([]byte(playerJSON), &sess.Player); err != nil {
		return nil, fmt.Errorf("corrupt player state for session %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(roomJSON), &sess.Room); err != nil {
		return nil, fmt.Errorf("corrupt room state for session %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &sess.History); err != nil {
		return nil, fmt.Errorf("corrupt history for session %s: %w", id, err)
	}

	return &sess, nil
}

// Save writes a session. A version of 0 inserts; anything else updates only
// the row still carrying that version and reports game.ErrConflict when a
// concurrent command won the race. On success the session's version advances.
func (s *Store) Save(ctx context.Context, sess *game.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerJSON, err := json.Marshal(sess.Player)
	if err != nil {
		return err
	}
	roomJSON, err := json.Marshal(sess.Room)
	if err != nil {
		return err
	}
	historyJSON, err := json.Marshal(sess.History)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if sess.Version == 0 {
		_, err := s.conn.ExecContext(ctx, `
			INSERT INTO sessions (id, difficulty, player_json, room_json, history_json, rooms_cleared, version, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		`, sess.ID, string(sess.Difficulty), playerJSON, roomJSON, historyJSON,
			sess.RoomsCleared, sess.CreatedAt, now)
		if err != nil {
			return err
		}
		sess.Version = 1
		return nil
	}

	res, err := s.conn.ExecContext(ctx, `
		UPDATE sessions
		SET difficulty = ?, player_json = ?, room_json = ?, history_json = ?, rooms_cleared = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?
	`, string(sess.Difficulty), playerJSON, roomJSON, historyJSON,
		sess.RoomsCleared, now, sess.ID, sess.Version)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := s.conn.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, sess.ID).Scan(&exists); errors.Is(err, sql.ErrNoRows) {
			return game.ErrNotFound
		}
		return game.ErrConflict
	}

	sess.Version++
	return nil
}
