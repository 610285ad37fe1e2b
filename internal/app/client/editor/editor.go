// Package editor редактирует одну запись списка: просмотр,
// правка с рабочим буфером, удаление и переключение флага.
package editor

import (
	"context"
	"errors"
	"sync"

	"itemdesk/internal/app/client/event"
	"itemdesk/internal/domain/validation"
)

var (
	ErrBusy         = errors.New("another mutation is in flight")
	ErrNotEditing   = errors.New("editor is not in editing state")
	ErrEditing      = errors.New("finish or cancel editing first")
	ErrNotConfirmed = errors.New("deletion not confirmed")
)

type State int

const (
	StateDisplay State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "display"
}

type Record[F any] interface {
	GetID() int
	EditableFields() F
}

// Mutator описывает операции шлюза над одной записью.
type Mutator[R any, F any] interface {
	Update(ctx context.Context, id int, f F) (R, error)
	Delete(ctx context.Context, id int) error
	Toggle(ctx context.Context, id int) (R, error)
}

type Editor[R Record[F], F any] struct {
	gw     Mutator[R, F]
	notify event.Notify[R]

	mu     sync.Mutex
	record R
	state  State
	buffer F
	errs   validation.Fields
	busy   bool
}

func New[R Record[F], F any](r R, gw Mutator[R, F], notify event.Notify[R]) *Editor[R, F] {
	if notify == nil {
		notify = event.Discard[R]
	}
	return &Editor[R, F]{
		gw:     gw,
		notify: notify,
		record: r,
		buffer: r.EditableFields(),
	}
}

func (e *Editor[R, F]) ID() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record.GetID()
}

// Record возвращает последнее подтвержденное сервером состояние записи.
func (e *Editor[R, F]) Record() R {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record
}

func (e *Editor[R, F]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor[R, F]) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

func (e *Editor[R, F]) Buffer() F {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer
}

// Errors возвращает ошибки валидации последнего сохранения.
func (e *Editor[R, F]) Errors() validation.Fields {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs.Clone()
}

// ErrorList возвращает все сообщения об ошибках одним списком.
func (e *Editor[R, F]) ErrorList() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs.List()
}

// BeginEdit копирует поля записи в рабочий буфер.
func (e *Editor[R, F]) BeginEdit() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.busy {
		return ErrBusy
	}
	e.buffer = e.record.EditableFields()
	e.errs = nil
	e.state = StateEditing
	return nil
}

// Set меняет рабочий буфер.
func (e *Editor[R, F]) Set(fn func(*F)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateEditing {
		return ErrNotEditing
	}
	fn(&e.buffer)
	return nil
}

// Cancel возвращает буфер к последнему известному состоянию записи.
func (e *Editor[R, F]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.buffer = e.record.EditableFields()
	e.errs = nil
	e.state = StateDisplay
}

// Save отправляет буфер на сервер. При любой ошибке редактор остается
// в правке с нетронутым буфером; ошибки валидации сохраняются в Errors.
func (e *Editor[R, F]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateEditing {
		e.mu.Unlock()
		return ErrNotEditing
	}
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.busy = true
	id, buf := e.record.GetID(), e.buffer
	e.mu.Unlock()

	r, err := e.gw.Update(ctx, id, buf)

	e.mu.Lock()
	e.busy = false
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			e.errs = verr.Fields.Clone()
		}
		e.mu.Unlock()
		return err
	}
	e.record = r
	e.buffer = r.EditableFields()
	e.errs = nil
	e.state = StateDisplay
	e.mu.Unlock()

	return e.notify(ctx, event.Event[R]{Kind: event.Updated, ID: id, Record: r})
}

// Delete удаляет запись после подтверждения. Доступно только в просмотре.
func (e *Editor[R, F]) Delete(ctx context.Context, confirm func() bool) error {
	e.mu.Lock()
	if e.state != StateDisplay {
		e.mu.Unlock()
		return ErrEditing
	}
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.mu.Unlock()

	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}

	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.busy = true
	id := e.record.GetID()
	e.mu.Unlock()

	err := e.gw.Delete(ctx, id)

	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
	if err != nil {
		return err
	}

	var zero R
	return e.notify(ctx, event.Event[R]{Kind: event.Deleted, ID: id, Record: zero})
}

// Toggle переключает флаг записи, не входя в правку.
func (e *Editor[R, F]) Toggle(ctx context.Context) error {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.busy = true
	id := e.record.GetID()
	e.mu.Unlock()

	r, err := e.gw.Toggle(ctx, id)

	e.mu.Lock()
	e.busy = false
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.record = r
	if e.state == StateDisplay {
		e.buffer = r.EditableFields()
	}
	e.mu.Unlock()

	return e.notify(ctx, event.Event[R]{Kind: event.Toggled, ID: id, Record: r})
}

// Refresh подставляет запись, полученную страницей при перезагрузке.
// Буфер идущей правки не трогается.
func (e *Editor[R, F]) Refresh(r R) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.record = r
	if e.state == StateDisplay {
		e.buffer = r.EditableFields()
	}
}
