// Package validation описывает ошибки валидации по полям, общие для сервера и клиента.
// Формат ответа: {"status": "Error", "message": "...", "errors": {"field": ["..."]}}.
package validation

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const defaultMessage = "The given data was invalid."

// Fields хранит сообщения об ошибках: имя поля → список сообщений.
type Fields map[string][]string

// Add добавляет сообщение к полю.
func (f Fields) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Empty сообщает, что ошибок нет.
func (f Fields) Empty() bool {
	return len(f) == 0
}

// Has сообщает, есть ли ошибка у поля.
func (f Fields) Has(field string) bool {
	return len(f[field]) > 0
}

// First возвращает первое сообщение поля или пустую строку.
func (f Fields) First(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// List возвращает все сообщения в стабильном порядке (по имени поля).
func (f Fields) List() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		out = append(out, f[name]...)
	}
	return out
}

// Clone возвращает независимую копию.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Error реализует huma.StatusError (422) для отказа в валидации.
type Error struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Fields  Fields `json:"errors,omitempty"`
}

// New создает ошибку валидации из набора полей.
func New(fields Fields) *Error {
	return &Error{
		Status:  "Error",
		Message: defaultMessage,
		Fields:  fields,
	}
}

// Single создает ошибку валидации для одного поля.
func Single(field, message string) *Error {
	f := Fields{}
	f.Add(field, message)
	return New(f)
}

func (e *Error) Error() string {
	if e.Fields.Empty() {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Message, strings.Join(e.Fields.List(), " "))
}

// GetStatus возвращает HTTP статус ответа.
func (e *Error) GetStatus() int {
	return http.StatusUnprocessableEntity
}
