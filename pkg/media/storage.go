package media

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// Object describes a stored upload.
type Object struct {
	Filename string // original client filename
	Path     string // backend-relative path, persisted on the message row
	URL      string // client-resolvable URL
}

// Storage stores and serves uploaded images. Delete is best-effort; callers
// log failures and move on.
type Storage interface {
	Store(ctx context.Context, r io.Reader, originalName string) (*Object, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

func contentTypeByName(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// sanitizeFilename strips path separators and whitespace from client-supplied
// names before they become part of a storage key.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}
	return name
}
