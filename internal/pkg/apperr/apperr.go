// Package apperr carries the failure taxonomy returned by the service layer.
// Handlers map these onto HTTP statuses; anything that is not an *Error is
// treated as a generic persistence failure so callers never see raw driver
// errors.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	NotAuthenticated    Kind = "NotAuthenticated"
	ValidationFailed    Kind = "ValidationFailed"
	NotFound            Kind = "NotFound"
	ImageLimitExceeded  Kind = "ImageLimitExceeded"
	IndexOutOfRange     Kind = "IndexOutOfRange"
	UnsupportedFileType Kind = "UnsupportedFileType"
	FileTooLarge        Kind = "FileTooLarge"
	StorageWriteFailed  Kind = "StorageWriteFailed"
	PersistenceFailed   Kind = "PersistenceFailed"
)

// Error is a tagged failure. Message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a tagged error with a caller-visible message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error while keeping it on the unwrap chain.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf returns the kind of err, or PersistenceFailed for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return PersistenceFailed
}

// MessageOf returns the caller-visible message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// HTTPStatus maps a kind onto the HTTP status the handler should answer with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case NotAuthenticated:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case ValidationFailed, IndexOutOfRange:
		return http.StatusBadRequest
	case ImageLimitExceeded:
		return http.StatusUnprocessableEntity
	case UnsupportedFileType:
		return http.StatusUnsupportedMediaType
	case FileTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Persistence tags a database error as a generic persistence failure,
// passing through errors that already carry a kind.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Wrap(PersistenceFailed, "database operation failed", err)
}

// Is reports whether err is tagged with kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
