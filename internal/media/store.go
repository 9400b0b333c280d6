// File: internal/media/store.go
// Purpose: serves immutable uploaded files from a fixed root directory. Every
// file-delivery endpoint resolves through here so the traversal check is
// applied uniformly.
package media

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath = errors.New("invalid file path")
	ErrNotFound    = errors.New("file not found")
)

// CacheControl is the directive sent with every served file. Files under the
// uploads root are immutable, so clients may cache them for a year.
const CacheControl = "public, max-age=31536000, immutable"

// Content types by extension. Unknown extensions fall back to an opaque
// binary type rather than sniffing.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".bmp":  "image/bmp",
	".pdf":  "application/pdf",
	".txt":  "text/plain; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".mp4":  "video/mp4",
	".webm": "video/webm",
}

const defaultContentType = "application/octet-stream"

// ContentType returns the content type for a file name based on its extension.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// Store resolves and reads files under a fixed root directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. The root is made absolute once so
// later resolution compares against a canonical prefix.
func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Store{root: abs}, nil
}

// Root returns the canonical root directory.
func (s *Store) Root() string {
	return s.root
}

// Resolve maps a requested relative path to an absolute path under the root.
// Any path that is absolute, contains a traversal sequence, or otherwise
// escapes the root fails with ErrInvalidPath before the filesystem is touched.
func (s *Store) Resolve(requested string) (string, error) {
	cleaned := strings.TrimPrefix(requested, "/")
	if cleaned == "" {
		return "", ErrInvalidPath
	}

	for _, segment := range strings.Split(filepath.ToSlash(cleaned), "/") {
		if segment == ".." {
			return "", ErrInvalidPath
		}
	}

	resolved := filepath.Join(s.root, filepath.FromSlash(cleaned))

	// Join cleans the path; verify the result is still inside the root.
	rel, err := filepath.Rel(s.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}

	return resolved, nil
}

// Read resolves the requested path and returns the file bytes along with the
// content type derived from the extension.
func (s *Store) Read(requested string) ([]byte, string, error) {
	resolved, err := s.Resolve(requested)
	if err != nil {
		return nil, "", err
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return nil, "", ErrNotFound
	}

	body, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", ErrNotFound
	}

	return body, ContentType(resolved), nil
}
