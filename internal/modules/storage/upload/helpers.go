package upload

import (
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// buildFileName generates a collision-resistant filename that preserves the
// original extension: "<unix-ms>-<random>.<ext>".
func buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 {
		ext = ".dat"
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + token + ext
}

// detectContentType resolves the MIME type from the declared header, the
// extension, or the payload bytes, in that priority order.
func detectContentType(filename string, payload []byte, declared string) string {
	if ct := normalizeContentType(declared); ct != "" {
		return ct
	}
	if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename))); ext != "" {
		if guessed := mime.TypeByExtension(ext); guessed != "" {
			return normalizeContentType(guessed)
		}
	}
	if len(payload) > 0 {
		return normalizeContentType(http.DetectContentType(payload))
	}
	return "application/octet-stream"
}

// normalizeContentType lower-cases a MIME type and strips parameters.
func normalizeContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
