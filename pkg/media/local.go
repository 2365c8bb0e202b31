package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps uploads on disk under a managed directory served back
// at urlPrefix (the /uploads static route).
type LocalStorage struct {
	baseDir   string
	urlPrefix string
}

var _ Storage = &LocalStorage{}

func NewLocalStorage(baseDir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{
		baseDir:   baseDir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

func (s *LocalStorage) Store(ctx context.Context, r io.Reader, originalName string) (*Object, error) {
	name := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), sanitizeFilename(originalName))
	fullPath := filepath.Join(s.baseDir, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &Object{
		Filename: originalName,
		Path:     name,
		URL:      s.URL(name),
	}, nil
}

func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.baseDir, filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(path)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(path string) string {
	return s.urlPrefix + "/" + filepath.Base(path)
}
