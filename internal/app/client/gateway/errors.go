package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"itemdesk/internal/domain/validation"
)

var (
	ErrUnauthorized = errors.New("unauthenticated")
	ErrForbidden    = errors.New("forbidden")
	// Сеть, 5xx, неожиданный статус или нечитаемый ответ.
	ErrTransport = errors.New("transport failure")
)

// StatusError описывает ответ сервера с ошибкой, кроме 422.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("server responded %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}
	return ErrTransport
}

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeValidation
	OutcomeAuthorization
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidation:
		return "validation"
	case OutcomeAuthorization:
		return "authorization"
	}
	return "fatal"
}

// Classify относит результат вызова к одному из четырех исходов.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return OutcomeValidation
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return OutcomeAuthorization
	}
	return OutcomeFatal
}
