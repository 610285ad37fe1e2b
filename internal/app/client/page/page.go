// Package page реализует страницу списка. Она владеет хранилищем записей, редакторами
// и формой создания. Дочерние компоненты сообщают об изменениях через
// обратный вызов и сами хранилище не меняют.
package page

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/slog"

	"itemdesk/internal/app/client/cache"
	"itemdesk/internal/app/client/editor"
	"itemdesk/internal/app/client/event"
	"itemdesk/internal/app/client/form"
	"itemdesk/internal/app/client/liststore"
	"itemdesk/internal/domain/item"
)

var (
	ErrNotLoaded   = errors.New("page is not loaded")
	ErrNoEditor    = errors.New("record is not on the page")
	ErrUnsupported = errors.New("operation is not supported for this list")
)

// Strategy определяет, как страница обновляется после подтвержденного изменения.
type Strategy int

const (
	// StrategyReload перезапрашивает список целиком.
	StrategyReload Strategy = iota
	// StrategyPatch применяет ответ сервера к локальному списку.
	StrategyPatch
)

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "reload":
		return StrategyReload, nil
	case "patch":
		return StrategyPatch, nil
	}
	return StrategyReload, fmt.Errorf("unknown refresh strategy %q", s)
}

type Record[F any] interface {
	GetID() int
	EditableFields() F
	DisplayFields() []string
	Classes() map[string]string
	Flagged() bool
}

// Source описывает операции шлюза над коллекцией.
type Source[R, F, C any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, body C) (R, error)
	Update(ctx context.Context, id int, f F) (R, error)
	Delete(ctx context.Context, id int) error
	Toggle(ctx context.Context, id int) (R, error)
}

// Reorderer реализуют коллекции с ключом порядка.
type Reorderer interface {
	Reorder(ctx context.Context, positions []item.Position) error
}

type Options[C any] struct {
	// Имя списка в кэше снимков.
	Kind     string
	Strategy Strategy
	Defaults C
	Precheck form.Precheck[C]
	AutoHide bool
	// Подписи групп: отмеченные и остальные.
	Labels [2]string
	Cache  cache.Snapshot
}

type Page[R Record[F], F, C any] struct {
	src  Source[R, F, C]
	opts Options[C]
	log  *slog.Logger

	mu      sync.Mutex
	store   *liststore.Store[R]
	editors map[int]*editor.Editor[R, F]
	form    *form.Form[C, R]
	loaded  bool
}

func New[R Record[F], F, C any](src Source[R, F, C], opts Options[C], log *slog.Logger) *Page[R, F, C] {
	p := &Page[R, F, C]{
		src:     src,
		opts:    opts,
		log:     log.With("component", "page", "kind", opts.Kind),
		store:   liststore.New[R](),
		editors: make(map[int]*editor.Editor[R, F]),
	}

	formOpts := []form.Option[C, R]{}
	if opts.Precheck != nil {
		formOpts = append(formOpts, form.WithPrecheck[C, R](opts.Precheck))
	}
	if opts.AutoHide {
		formOpts = append(formOpts, form.WithAutoHide[C, R]())
	}
	p.form = form.New[C, R](opts.Defaults, src, p.handle, formOpts...)

	return p
}

// Load заполняет страницу списком с сервера.
func (p *Page[R, F, C]) Load(ctx context.Context) error {
	return p.reload(ctx)
}

// LoadCached заполняет страницу последним снимком из кэша.
func (p *Page[R, F, C]) LoadCached() error {
	if p.opts.Cache == nil {
		return cache.ErrNoSnapshot
	}
	var records []R
	savedAt, err := p.opts.Cache.Load(p.opts.Kind, &records)
	if err != nil {
		return err
	}
	p.log.Debug("page seeded from cache", "saved_at", savedAt, "count", len(records))
	return p.Seed(records)
}

// Seed заполняет страницу готовым списком без обращения к серверу.
func (p *Page[R, F, C]) Seed(records []R) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.replaceLocked(records)
}

func (p *Page[R, F, C]) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Records возвращает записи в порядке отображения.
func (p *Page[R, F, C]) Records() []R {
	return p.store.All()
}

func (p *Page[R, F, C]) Len() int {
	return p.store.Len()
}

// Editor возвращает редактор записи.
func (p *Page[R, F, C]) Editor(id int) (*editor.Editor[R, F], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.editors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoEditor, id)
	}
	return e, nil
}

// Form возвращает форму создания записи.
func (p *Page[R, F, C]) Form() *form.Form[C, R] {
	return p.form
}

// Reorder ставит записи ids в начало списка в указанном порядке, остальные
// следуют за ними в текущем порядке. Сервер получает позиции 0..n-1 для
// всего списка. После ответа список всегда перезапрашивается.
func (p *Page[R, F, C]) Reorder(ctx context.Context, ids []int) error {
	r, ok := p.src.(Reorderer)
	if !ok {
		return ErrUnsupported
	}
	if !p.Loaded() {
		return ErrNotLoaded
	}

	order := make([]int, 0, len(ids)+p.store.Len())
	seen := make(map[int]struct{}, cap(order))
	for _, id := range append(slices.Clone(ids), p.store.IDs()...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		order = append(order, id)
	}

	positions := make([]item.Position, len(order))
	for i, id := range order {
		positions[i] = item.Position{ID: id, Position: i}
	}
	if err := r.Reorder(ctx, positions); err != nil {
		return err
	}
	return p.reload(ctx)
}

// handle получает события от редакторов и формы. Если перезагрузка не
// удалась, событие применяется к локальному списку и ошибка не возвращается.
func (p *Page[R, F, C]) handle(ctx context.Context, ev event.Event[R]) error {
	p.log.Debug("record changed", "event", ev.Kind.String(), "id", ev.ID)

	switch ev.Kind {
	case event.Deleted:
		p.mu.Lock()
		p.store.Remove(ev.ID)
		delete(p.editors, ev.ID)
		p.mu.Unlock()
		if p.opts.Strategy == StrategyReload && p.tryReload(ctx) {
			return nil
		}
		p.snapshot()

	case event.Created, event.Updated, event.Toggled:
		if p.opts.Strategy == StrategyReload && p.tryReload(ctx) {
			return nil
		}
		p.patch(ev)
	}
	return nil
}

func (p *Page[R, F, C]) tryReload(ctx context.Context) bool {
	if err := p.reload(ctx); err != nil {
		p.log.Warn("reload after change failed, applying change locally", "error", err)
		return false
	}
	return true
}

func (p *Page[R, F, C]) patch(ev event.Event[R]) {
	p.mu.Lock()
	if ev.Kind == event.Created {
		if err := p.store.Add(ev.Record); err != nil {
			p.log.Warn("created record already listed", "id", ev.ID)
			p.store.Update(ev.Record)
		}
		if _, ok := p.editors[ev.ID]; !ok {
			p.editors[ev.ID] = editor.New[R, F](ev.Record, p.src, p.handle)
		}
	} else {
		p.store.Update(ev.Record)
		if e, ok := p.editors[ev.ID]; ok {
			e.Refresh(ev.Record)
		}
	}
	p.mu.Unlock()

	p.snapshot()
}

func (p *Page[R, F, C]) reload(ctx context.Context) error {
	records, err := p.src.List(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	err = p.replaceLocked(records)
	p.mu.Unlock()
	if err != nil {
		return err
	}

	p.snapshot()
	return nil
}

// replaceLocked заменяет записи и приводит набор редакторов к ним.
func (p *Page[R, F, C]) replaceLocked(records []R) error {
	if err := p.store.ReplaceAll(records); err != nil {
		return err
	}

	keep := make(map[int]struct{}, len(records))
	for _, r := range records {
		id := r.GetID()
		keep[id] = struct{}{}
		if e, ok := p.editors[id]; ok {
			e.Refresh(r)
			continue
		}
		p.editors[id] = editor.New[R, F](r, p.src, p.handle)
	}
	for id := range p.editors {
		if _, ok := keep[id]; !ok {
			delete(p.editors, id)
		}
	}

	p.loaded = true
	return nil
}

func (p *Page[R, F, C]) snapshot() {
	if p.opts.Cache == nil {
		return
	}
	if err := p.opts.Cache.Save(p.opts.Kind, p.store.All()); err != nil {
		p.log.Warn("failed to save snapshot", "error", err)
	}
}
