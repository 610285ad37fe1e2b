// Package liststore хранит упорядоченный набор записей, отображаемых на странице.
package liststore

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrDuplicateID = errors.New("duplicate record id")

type Record interface {
	GetID() int
}

// positioned реализуют записи с ключом порядка.
type positioned interface {
	GetPosition() int
}

// Store хранит записи с уникальными ID в порядке отображения.
type Store[R Record] struct {
	mu      sync.RWMutex
	records []R
}

func New[R Record]() *Store[R] {
	return &Store[R]{}
}

// Add добавляет запись в конец, не меняя порядок остальных.
func (s *Store[R]) Add(r R) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(r.GetID()) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateID, r.GetID())
	}
	s.records = append(s.records, r)
	return nil
}

// Remove удаляет запись с данным ID и сообщает, была ли она.
func (s *Store[R]) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

// ReplaceAll заменяет весь набор. Записи с позицией упорядочиваются по
// возрастанию позиции, при равенстве сохраняется исходный порядок.
// При повторе ID хранилище не меняется.
func (s *Store[R]) ReplaceAll(rs []R) error {
	seen := make(map[int]struct{}, len(rs))
	for _, r := range rs {
		if _, dup := seen[r.GetID()]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.GetID())
		}
		seen[r.GetID()] = struct{}{}
	}

	next := slices.Clone(rs)
	sortByPosition(next)

	s.mu.Lock()
	s.records = next
	s.mu.Unlock()
	return nil
}

// Update заменяет запись с тем же ID на месте и сообщает, нашлась ли она.
func (s *Store[R]) Update(r R) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(r.GetID())
	if i < 0 {
		return false
	}
	s.records[i] = r
	return true
}

func (s *Store[R]) Get(id int) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	var zero R
	return zero, false
}

// All возвращает копию записей в порядке отображения.
func (s *Store[R]) All() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[R]) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, len(s.records))
	for i, r := range s.records {
		ids[i] = r.GetID()
	}
	return ids
}

func (s *Store[R]) indexOf(id int) int {
	return slices.IndexFunc(s.records, func(r R) bool { return r.GetID() == id })
}

func sortByPosition[R Record](rs []R) {
	if len(rs) == 0 {
		return
	}
	if _, ok := any(rs[0]).(positioned); !ok {
		return
	}
	slices.SortStableFunc(rs, func(a, b R) int {
		return any(a).(positioned).GetPosition() - any(b).(positioned).GetPosition()
	})
}
