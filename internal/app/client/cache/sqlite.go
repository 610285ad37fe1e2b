package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return s, nil
}

func (s *SQLite) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			kind TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	return err
}

func (s *SQLite) Save(kind string, records any) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("ошибка сериализации снимка: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (kind, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, kind, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения снимка: %w", err)
	}
	return nil
}

func (s *SQLite) Load(kind string, out any) (time.Time, error) {
	var (
		payload string
		savedAt time.Time
	)
	err := s.db.QueryRow(`SELECT payload, saved_at FROM snapshots WHERE kind = ?`, kind).
		Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("ошибка чтения снимка: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("ошибка разбора снимка: %w", err)
	}
	return savedAt, nil
}

func (s *SQLite) Purge() error {
	if _, err := s.db.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("ошибка очистки снимков: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
