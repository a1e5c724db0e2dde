package upload

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveDataURLRejectsMissingMarker(t *testing.T) {
	uploader := NewUploader(t.TempDir())

	payload := base64.StdEncoding.EncodeToString([]byte("not a data url"))
	if _, err := uploader.SaveDataURL(payload, "menu-items/test.jpg"); !errors.Is(err, ErrInvalidDataURL) {
		t.Fatalf("expected ErrInvalidDataURL, got %v", err)
	}
}

func TestSaveDataURLRejectsBadPayload(t *testing.T) {
	uploader := NewUploader(t.TempDir())

	if _, err := uploader.SaveDataURL("data:image/jpeg;base64,!!!not-base64!!!", "menu-items/test.jpg"); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestSaveDataURLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	uploader := NewUploader(dir)

	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	url, err := uploader.SaveDataURL(dataURL, "events/123-party.jpg")
	if err != nil {
		t.Fatalf("SaveDataURL failed: %v", err)
	}
	if url != "/uploads/events/123-party.jpg" {
		t.Errorf("unexpected stored URL %q", url)
	}

	stored, err := os.ReadFile(filepath.Join(dir, "events", "123-party.jpg"))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(stored) != string(raw) {
		t.Errorf("stored bytes differ from payload")
	}
}

func TestImageFileName(t *testing.T) {
	name := ImageFileName("menu-items", "  Цезарь с курицей ")
	if !strings.HasPrefix(name, "menu-items/") {
		t.Errorf("expected kind prefix, got %q", name)
	}
	if !strings.HasSuffix(name, "-цезарь-с-курицей.jpg") {
		t.Errorf("expected slugged suffix, got %q", name)
	}

	fallback := ImageFileName("news", "   ")
	if !strings.HasSuffix(fallback, "-image.jpg") {
		t.Errorf("expected fallback slug, got %q", fallback)
	}
}
