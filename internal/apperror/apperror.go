// Package apperror — единая таксономия ошибок портала.
// Хендлеры смотрят на Kind и подбирают HTTP-статус и сообщение;
// сообщения провайдера (Timeout, ProviderError) передаются как есть.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidationFailed
	KindPermissionDenied
	KindInvalidTransition
	KindSectionInUse
	KindNotFound
	KindTimeout
	KindProviderError
)

func (k Kind) String() string {
	switch k {
	case KindValidationFailed:
		return "validation_failed"
	case KindPermissionDenied:
		return "permission_denied"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindSectionInUse:
		return "section_in_use"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindProviderError:
		return "provider_error"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New создаёт ошибку заданного вида.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap оборачивает причину, сохраняя её текст (важно для ProviderError).
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf возвращает вид ошибки; KindUnknown для посторонних ошибок.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }

// Status — HTTP-статус для вида ошибки.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidTransition, KindSectionInUse:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindProviderError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
