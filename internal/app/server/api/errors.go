package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"itemdesk/internal/domain/validation"
)

// Error описывает тело любого ответа об ошибке кроме 422.
type Error struct {
	status  int
	Status  string `json:"status" example:"Error"`
	Message string `json:"message" example:"Item not found."`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

var errorsOnce sync.Once

// useEnvelopeErrors подменяет конструктор ошибок huma: ошибки схемы запроса
// становятся *validation.Error с сообщениями по полям, остальные становятся *Error.
func useEnvelopeErrors() {
	errorsOnce.Do(func() {
		huma.NewError = newError
	})
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		fields := validation.Fields{}
		for _, err := range errs {
			var detail *huma.ErrorDetail
			if errors.As(err, &detail) {
				fields.Add(fieldError(detail))
				continue
			}
			if err != nil {
				fields.Add("body", err.Error())
			}
		}
		return validation.New(fields)
	}

	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{status: status, Status: "Error", Message: msg}
}

var (
	requiredRe = regexp.MustCompile(`^expected required property (\S+) to be present`)
	maxLenRe   = regexp.MustCompile(`^expected length <= (\d+)`)
	indexRe    = regexp.MustCompile(`\[(\d+)\]`)
)

// fieldError переводит ошибку схемы huma в пару поле/сообщение:
// body.items[0].id → items.0.id.
func fieldError(d *huma.ErrorDetail) (string, string) {
	field := d.Location
	for _, prefix := range []string{"body", "path", "query", "header"} {
		if field == prefix {
			field = ""
			break
		}
		if strings.HasPrefix(field, prefix+".") {
			field = strings.TrimPrefix(field, prefix+".")
			break
		}
	}
	field = indexRe.ReplaceAllString(field, ".$1")

	if m := requiredRe.FindStringSubmatch(d.Message); m != nil {
		if field == "" {
			field = m[1]
		} else {
			field += "." + m[1]
		}
		return field, fmt.Sprintf("The %s field is required.", displayName(field))
	}
	if field == "" {
		field = "body"
	}

	switch {
	case strings.HasPrefix(d.Message, "expected value to be one of"):
		return field, fmt.Sprintf("The selected %s is invalid.", displayName(field))
	case maxLenRe.MatchString(d.Message):
		limit := maxLenRe.FindStringSubmatch(d.Message)[1]
		return field, fmt.Sprintf("The %s field must not be greater than %s characters.", displayName(field), limit)
	case d.Message == "unexpected property":
		return field, fmt.Sprintf("The %s field is not allowed.", displayName(field))
	}
	return field, fmt.Sprintf("The %s field is invalid.", displayName(field))
}

func displayName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
