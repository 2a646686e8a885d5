package fault

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindUnauthorized
	KindClosed
	KindDuplicate
	KindInvalid
	KindInternal
)

type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Fault) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap allows errors.Is and errors.As to work.
func (e *Fault) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) error {
	return &Fault{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Fault{Kind: kind, Message: msg, Err: err}
}

func NotFound(msg string) error     { return New(KindNotFound, msg) }
func Unauthorized(msg string) error { return New(KindUnauthorized, msg) }
func Closed(msg string) error       { return New(KindClosed, msg) }
func Duplicate(msg string) error    { return New(KindDuplicate, msg) }
func Invalid(msg string) error      { return New(KindInvalid, msg) }
func Internal(msg string, err error) error {
	return Wrap(KindInternal, msg, err)
}

func IsKind(err error, kind Kind) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to the status code its kind should surface as.
// Unknown errors count as internal.
func HTTPStatus(err error) int {
	var f *Fault
	if !errors.As(err, &f) {
		return fiber.StatusInternalServerError
	}
	switch f.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthorized:
		return fiber.StatusForbidden
	case KindClosed:
		return fiber.StatusBadRequest
	case KindDuplicate:
		return fiber.StatusConflict
	case KindInvalid:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
