package upload

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onetree-africa/core/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	allowed     = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

func testService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	return NewServiceWith(NewLocalStorage(dir), 5*1024*1024, allowed), dir
}

func TestStoreLocal(t *testing.T) {
	svc, dir := testService(t)

	stored, err := svc.Store(context.Background(), jpegPayload, "photo.JPG", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "local", stored.Storage)
	assert.Equal(t, int64(len(jpegPayload)), stored.Size)
	assert.True(t, strings.HasPrefix(stored.URL, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(stored.Name, ".jpg"))

	onDisk, err := os.ReadFile(filepath.Join(dir, stored.Name))
	require.NoError(t, err)
	assert.Equal(t, jpegPayload, onDisk)
}

func TestStoreRejectsUnsupportedType(t *testing.T) {
	svc, dir := testService(t)

	_, err := svc.Store(context.Background(), []byte("%PDF-1.4"), "doc.pdf", "application/pdf")
	assert.True(t, apperr.Is(err, apperr.UnsupportedFileType))

	// Nothing may reach the backend for a rejected upload.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestStoreRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewServiceWith(NewLocalStorage(dir), 16, allowed)

	payload := bytes.Repeat([]byte{0xFF}, 17)
	_, err := svc.Store(context.Background(), payload, "big.jpg", "image/jpeg")
	assert.True(t, apperr.Is(err, apperr.FileTooLarge))

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestStoreDetectsTypeWithoutHeader(t *testing.T) {
	svc, _ := testService(t)

	// No declared type: the extension decides.
	stored, err := svc.Store(context.Background(), jpegPayload, "photo.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", stored.ContentType)

	// Declared type wins over the extension.
	_, err = svc.Store(context.Background(), []byte("plain text"), "note.jpg", "text/plain")
	assert.True(t, apperr.Is(err, apperr.UnsupportedFileType))
}

func TestBuildFileName(t *testing.T) {
	name := buildFileName("My Photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, " ")

	assert.True(t, strings.HasSuffix(buildFileName("noext"), ".dat"))
}

func TestNormalizeContentType(t *testing.T) {
	assert.Equal(t, "image/png", normalizeContentType("IMAGE/PNG; charset=binary"))
	assert.Equal(t, "", normalizeContentType("  "))
}
