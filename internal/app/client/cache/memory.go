package cache

import (
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	payload []byte
	savedAt time.Time
}

// Memory хранит снимки в памяти процесса, когда SQLite недоступен.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

func (m *Memory) Save(kind string, records any) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[kind] = entry{payload: payload, savedAt: time.Now().UTC()}
	return nil
}

func (m *Memory) Load(kind string, out any) (time.Time, error) {
	m.mu.RLock()
	e, ok := m.entries[kind]
	m.mu.RUnlock()
	if !ok {
		return time.Time{}, ErrNoSnapshot
	}
	return e.savedAt, json.Unmarshal(e.payload, out)
}

func (m *Memory) Purge() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	return nil
}

func (m *Memory) Close() error { return nil }
