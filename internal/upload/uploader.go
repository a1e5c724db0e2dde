package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDataURL is returned when a string payload lacks the ";base64," marker
var ErrInvalidDataURL = errors.New("invalid base64 data")

const base64Marker = ";base64,"

var slugPattern = regexp.MustCompile(`\s+`)

// Uploader writes inline image payloads to local disk under a directory
// that is served statically at /uploads.
type Uploader struct {
	dir string
}

// NewUploader creates an uploader rooted at dir
func NewUploader(dir string) *Uploader {
	return &Uploader{dir: dir}
}

// SaveDataURL decodes a data-URL string (data:<mime>;base64,<payload>) and
// writes it under fileName, which may carry a subdirectory such as
// "menu-items/...". Returns the root-relative URL of the stored file.
func (u *Uploader) SaveDataURL(dataURL, fileName string) (string, error) {
	idx := strings.Index(dataURL, base64Marker)
	if idx < 0 {
		return "", ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(dataURL[idx+len(base64Marker):])
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return u.SaveBytes(data, fileName)
}

// SaveBytes writes raw bytes under fileName and returns the stored URL
func (u *Uploader) SaveBytes(data []byte, fileName string) (string, error) {
	filePath := filepath.Join(u.dir, filepath.FromSlash(fileName))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/uploads/" + fileName, nil
}

// ImageFileName namespaces an uploaded image under kind with a timestamp and
// a slug of the owning record's name, e.g. "menu-items/1693526400000-пицца.jpg".
// Callers own collision avoidance; the timestamp makes repeats unlikely.
func ImageFileName(kind, name string) string {
	slug := strings.ToLower(slugPattern.ReplaceAllString(strings.TrimSpace(name), "-"))
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("%s/%d-%s.jpg", kind, time.Now().UnixMilli(), slug)
}
