package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "gone")))
	assert.Equal(t, PersistenceFailed, KindOf(errors.New("raw driver error")))
}

func TestWrapKeepsCauseOnChain(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(StorageWriteFailed, "failed to save file", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "failed to save file: disk full", err.Error())
	assert.Equal(t, "failed to save file", MessageOf(err))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(ImageLimitExceeded, "too many images")
	outer := fmt.Errorf("add image: %w", inner)

	assert.Equal(t, ImageLimitExceeded, KindOf(outer))
	assert.True(t, Is(outer, ImageLimitExceeded))
	assert.False(t, Is(outer, NotFound))
}

func TestPersistencePassthrough(t *testing.T) {
	assert.NoError(t, Persistence(nil))

	tagged := New(NotFound, "missing")
	assert.Equal(t, error(tagged), Persistence(tagged))

	raw := errors.New("constraint violation")
	wrapped := Persistence(raw)
	assert.Equal(t, PersistenceFailed, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, raw))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		NotAuthenticated:    http.StatusUnauthorized,
		ValidationFailed:    http.StatusBadRequest,
		NotFound:            http.StatusNotFound,
		ImageLimitExceeded:  http.StatusUnprocessableEntity,
		IndexOutOfRange:     http.StatusBadRequest,
		UnsupportedFileType: http.StatusUnsupportedMediaType,
		FileTooLarge:        http.StatusRequestEntityTooLarge,
		StorageWriteFailed:  http.StatusInternalServerError,
		PersistenceFailed:   http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), string(kind))
	}
}
