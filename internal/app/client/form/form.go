// Package form реализует форму создания записи с рабочим буфером и значениями
// по умолчанию.
package form

import (
	"context"
	"errors"
	"sync"

	"itemdesk/internal/app/client/event"
	"itemdesk/internal/domain/validation"
)

var ErrBusy = errors.New("submission already in flight")

// Creator создает запись на сервере.
type Creator[C any, R any] interface {
	Create(ctx context.Context, body C) (R, error)
}

// Precheck проверяет буфер перед отправкой. nil означает, что можно отправлять.
type Precheck[C any] func(C) *validation.Error

type Record interface {
	GetID() int
}

type Option[C any, R Record] func(*Form[C, R])

// WithPrecheck задает локальную проверку буфера.
func WithPrecheck[C any, R Record](fn Precheck[C]) Option[C, R] {
	return func(f *Form[C, R]) { f.precheck = fn }
}

// WithAutoHide скрывает форму после успешного создания.
func WithAutoHide[C any, R Record]() Option[C, R] {
	return func(f *Form[C, R]) { f.autoHide = true }
}

type Form[C any, R Record] struct {
	gw       Creator[C, R]
	notify   event.Notify[R]
	defaults C
	precheck Precheck[C]
	autoHide bool

	mu      sync.Mutex
	buffer  C
	errs    validation.Fields
	visible bool
	busy    bool
}

func New[C any, R Record](defaults C, gw Creator[C, R], notify event.Notify[R], opts ...Option[C, R]) *Form[C, R] {
	if notify == nil {
		notify = event.Discard[R]
	}
	f := &Form[C, R]{
		gw:       gw,
		notify:   notify,
		defaults: defaults,
		buffer:   defaults,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form[C, R]) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = true
}

func (f *Form[C, R]) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = false
}

func (f *Form[C, R]) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

func (f *Form[C, R]) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

func (f *Form[C, R]) Set(fn func(*C)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.buffer)
}

func (f *Form[C, R]) Buffer() C {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buffer
}

// Reset возвращает буфер к значениям по умолчанию и сбрасывает ошибки.
func (f *Form[C, R]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buffer = f.defaults
	f.errs = nil
}

func (f *Form[C, R]) Errors() validation.Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs.Clone()
}

func (f *Form[C, R]) ErrorList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs.List()
}

// Submit проверяет буфер локально и отправляет его. Непрошедшая локальная
// проверка не порождает запросов. После успеха буфер сбрасывается к
// значениям по умолчанию; при ошибке буфер сохраняется.
func (f *Form[C, R]) Submit(ctx context.Context) (R, error) {
	var zero R

	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return zero, ErrBusy
	}
	buf := f.buffer
	if f.precheck != nil {
		if verr := f.precheck(buf); verr != nil {
			f.errs = verr.Fields.Clone()
			f.mu.Unlock()
			return zero, verr
		}
	}
	f.busy = true
	f.mu.Unlock()

	r, err := f.gw.Create(ctx, buf)

	f.mu.Lock()
	f.busy = false
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			f.errs = verr.Fields.Clone()
		}
		f.mu.Unlock()
		return zero, err
	}
	f.buffer = f.defaults
	f.errs = nil
	if f.autoHide {
		f.visible = false
	}
	f.mu.Unlock()

	return r, f.notify(ctx, event.Event[R]{Kind: event.Created, ID: r.GetID(), Record: r})
}
