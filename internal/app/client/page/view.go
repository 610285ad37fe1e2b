package page

import (
	"strings"
)

// Filter задает производное представление списка без обращения к серверу.
type Filter struct {
	// Подстрока без учета регистра по отображаемым полям.
	Search string
	// Точные совпадения полей-перечислений, например type=note.
	Classes map[string]string
}

type Group[R any] struct {
	Label   string
	Records []R
}

// View возвращает записи, подходящие под фильтр, в порядке отображения.
func (p *Page[R, F, C]) View(f Filter) []R {
	return filter[R, F](p.store.All(), f)
}

// Group делит подходящие записи на отмеченные и остальные
// (закрепленные/прочие, подтвержденные/ожидающие).
func (p *Page[R, F, C]) Group(f Filter) []Group[R] {
	flagged := Group[R]{Label: p.opts.Labels[0]}
	other := Group[R]{Label: p.opts.Labels[1]}

	for _, r := range p.View(f) {
		if r.Flagged() {
			flagged.Records = append(flagged.Records, r)
		} else {
			other.Records = append(other.Records, r)
		}
	}
	return []Group[R]{flagged, other}
}

func filter[R Record[F], F any](records []R, f Filter) []R {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]R, 0, len(records))

	for _, r := range records {
		if !matchClasses(r.Classes(), f.Classes) {
			continue
		}
		if needle != "" && !matchSearch(r.DisplayFields(), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchClasses(have, want map[string]string) bool {
	for k, v := range want {
		if v == "" {
			continue
		}
		if have[k] != v {
			return false
		}
	}
	return true
}

func matchSearch(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
