// File: internal/media/store_test.go
package media

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	root := t.TempDir()

	err := os.WriteFile(filepath.Join(root, "receipt.png"), []byte("png-bytes"), 0o644)
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	err = os.MkdirAll(filepath.Join(root, "products"), 0o755)
	if err != nil {
		t.Fatalf("creating subdir: %v", err)
	}
	err = os.WriteFile(filepath.Join(root, "products", "item.jpg"), []byte("jpg-bytes"), 0o644)
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	// A file outside the root that traversal must never reach.
	err = os.WriteFile(filepath.Join(filepath.Dir(root), "secret.txt"), []byte("secret"), 0o644)
	if err != nil {
		t.Fatalf("writing outside file: %v", err)
	}

	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStoreRead(t *testing.T) {
	store := newTestStore(t)

	body, contentType, err := store.Read("receipt.png")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !bytes.Equal(body, []byte("png-bytes")) {
		t.Errorf("unexpected body %q", body)
	}
	if contentType != "image/png" {
		t.Errorf("expected image/png, got %q", contentType)
	}
}

func TestStoreReadSubdirectory(t *testing.T) {
	store := newTestStore(t)

	body, contentType, err := store.Read("products/item.jpg")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !bytes.Equal(body, []byte("jpg-bytes")) {
		t.Errorf("unexpected body %q", body)
	}
	if contentType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", contentType)
	}
}

func TestStoreRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	paths := []string{
		"../secret.txt",
		"products/../../secret.txt",
		"..",
		"../../etc/passwd",
		"",
	}

	for _, p := range paths {
		if _, _, err := store.Read(p); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Read(%q): expected ErrInvalidPath, got %v", p, err)
		}
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := newTestStore(t)

	if _, _, err := store.Read("nope.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Directories are not servable.
	if _, _, err := store.Read("products"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for directory, got %v", err)
	}
}

func TestContentTypeDefaults(t *testing.T) {
	if got := ContentType("archive.zip"); got != "application/octet-stream" {
		t.Errorf("expected opaque binary type, got %q", got)
	}
	if got := ContentType("logo.SVG"); got != "image/svg+xml" {
		t.Errorf("expected case-insensitive extension match, got %q", got)
	}
}
