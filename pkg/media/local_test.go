package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_StoreAndOpen(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	obj, err := storage.Store(context.Background(), strings.NewReader("hello"), "problem.jpg")
	require.NoError(t, err)

	assert.Equal(t, "problem.jpg", obj.Filename)
	assert.True(t, strings.HasSuffix(obj.Path, "_problem.jpg"))
	assert.Equal(t, "/uploads/"+obj.Path, obj.URL)

	rc, err := storage.Open(context.Background(), obj.Path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStorage_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	obj, err := storage.Store(context.Background(), strings.NewReader("x"), "../outside/sol ution.png")
	require.NoError(t, err)

	assert.NotContains(t, obj.Path, "..")
	assert.NotContains(t, obj.Path, "/")
	assert.NotContains(t, obj.Path, " ")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, obj.Path, entries[0].Name())
}

func TestLocalStorage_OpenStaysInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("nope"), 0o600))

	_, err = storage.Open(context.Background(), "../secret.txt")
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.Delete(context.Background(), "20240101_000000_gone.jpg"))
}
