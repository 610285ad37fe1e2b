// Package cache хранит снимки последних загруженных списков для
// просмотра без сети.
package cache

import (
	"errors"
	"time"
)

var ErrNoSnapshot = errors.New("snapshot not found")

// Snapshot хранит список записей в JSON под ключом kind.
type Snapshot interface {
	Save(kind string, records any) error
	// Load раскладывает снимок в out и возвращает время его записи.
	Load(kind string, out any) (time.Time, error)
	// Purge удаляет все снимки.
	Purge() error
	Close() error
}
