package upload

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Incoming is an uploaded file read off a request, pending storage.
type Incoming struct {
	Payload     []byte
	Name        string
	ContentType string
}

// FromForm reads the named multipart file part. Returns (nil, nil) when the
// part is absent so callers can treat the file as optional.
func FromForm(c *gin.Context, field string) (*Incoming, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &Incoming{
		Payload:     payload,
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
