package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when a sign-up reuses an email.
var ErrEmailTaken = errors.New("user already exists")

// Storage is the relational backend of record. Tasks are stored as one JSON
// payload per row with a created_at column for ordering; profiles,
// credentials and sessions get proper columns.
type Storage struct {
	db *sql.DB
}

func OpenStorage(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS credentials (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash BLOB NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			name TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			gmail_connected INTEGER NOT NULL DEFAULT 0,
			calendar_connected INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			payload_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) CreateCredential(id, email string, passwordHash []byte) error {
	var existing string
	err := s.db.QueryRow(`SELECT id FROM credentials WHERE email = ?`, email).Scan(&existing)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO credentials (id, email, password_hash) VALUES (?, ?, ?)`,
		id, email, passwordHash)
	return err
}

func (s *Storage) CredentialByEmail(email string) (id string, passwordHash []byte, err error) {
	err = s.db.QueryRow(`SELECT id, password_hash FROM credentials WHERE email = ?`, email).
		Scan(&id, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrNotFound
	}
	return id, passwordHash, err
}

func (s *Storage) InsertProfile(u model.User) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (id, email, name, avatar, gmail_connected, calendar_connected)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.Avatar, boolInt(u.IsConnected.Gmail), boolInt(u.IsConnected.Calendar))
	return err
}

func (s *Storage) ProfileByID(id string) (model.User, error) {
	var u model.User
	var gmail, calendar int
	err := s.db.QueryRow(
		`SELECT id, email, name, avatar, gmail_connected, calendar_connected FROM profiles WHERE id = ?`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.Avatar, &gmail, &calendar)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.IsConnected = model.Connections{Gmail: gmail != 0, Calendar: calendar != 0}
	return u, nil
}

func (s *Storage) UpdateProfile(u model.User) error {
	res, err := s.db.Exec(
		`UPDATE profiles SET email = ?, name = ?, avatar = ?, gmail_connected = ?, calendar_connected = ?
		 WHERE id = ?`,
		u.Email, u.Name, u.Avatar, boolInt(u.IsConnected.Gmail), boolInt(u.IsConnected.Calendar), u.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) CreateSession(token, userID string, now time.Time) error {
	_, err := s.db.Exec(`INSERT INTO sessions (token, user_id, created_at) VALUES (?, ?, ?)`,
		token, userID, now.UnixNano())
	return err
}

func (s *Storage) SessionUserID(token string) (string, error) {
	var userID string
	err := s.db.QueryRow(`SELECT user_id FROM sessions WHERE token = ?`, token).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return userID, err
}

func (s *Storage) DeleteSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (s *Storage) InsertTask(t model.Task) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO tasks (id, created_at, payload_json) VALUES (?, ?, ?)`,
		t.ID, t.CreatedAt.UnixNano(), string(payload))
	return err
}

func (s *Storage) TaskByID(id string) (model.Task, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload_json FROM tasks WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	var t model.Task
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return model.Task{}, fmt.Errorf("failed to unmarshal task payload: %w", err)
	}
	return t, nil
}

func (s *Storage) UpdateTask(t model.Task) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}
	res, err := s.db.Exec(`UPDATE tasks SET payload_json = ? WHERE id = ?`, string(payload), t.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	return err
}

// ListTasks returns all tasks ordered by creation time, descending.
func (s *Storage) ListTasks() ([]model.Task, error) {
	rows, err := s.db.Query(`SELECT payload_json FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var t model.Task
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task payload: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
