// Package event описывает сообщения от редакторов и формы создания странице списка.
package event

import "context"

type Kind int

const (
	Created Kind = iota + 1
	Updated
	Deleted
	Toggled
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	case Toggled:
		return "toggled"
	}
	return "unknown"
}

// Event сообщает о подтвержденном сервером изменении записи.
// Для Deleted поле Record пустое.
type Event[R any] struct {
	Kind   Kind
	ID     int
	Record R
}

// Notify доставляет событие владельцу списка. Ошибка означает, что
// изменение принято сервером, но список обновить не удалось.
type Notify[R any] func(ctx context.Context, ev Event[R]) error

// Discard ничего не делает с событием.
func Discard[R any](context.Context, Event[R]) error { return nil }
