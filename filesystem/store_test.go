package filesystem_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nosvault"
	"nosvault/filesystem"
)

func newStore(t *testing.T) (*filesystem.Store, string) {
	t.Helper()

	tempDir := t.TempDir()
	root, err := os.OpenRoot(tempDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	return filesystem.NewFileStorage(root), tempDir
}

func TestStore_Get_Success(t *testing.T) {
	store, tempDir := newStore(t)

	content := []byte("test content")
	err := os.WriteFile(filepath.Join(tempDir, "test.txt"), content, 0o644)
	require.NoError(t, err)

	result, err := store.Get(context.Background(), "test.txt")

	assert.NoError(t, err)
	assert.NotNil(t, result)

	readContent, err := io.ReadAll(result)
	assert.NoError(t, err)
	assert.Equal(t, content, readContent)

	assert.NoError(t, result.Close())
}

func TestStore_Get_NotFound(t *testing.T) {
	store, _ := newStore(t)

	result, err := store.Get(context.Background(), "nonexistent.txt")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, nosvault.ErrNotFound)
}

func TestStore_Get_PathUnderExistingFile(t *testing.T) {
	store, tempDir := newStore(t)

	err := os.WriteFile(filepath.Join(tempDir, "file.txt"), []byte("x"), 0o644)
	require.NoError(t, err)

	// file.txt is a regular file, so opening beneath it fails with
	// ENOTDIR rather than ENOENT. Both read as absence.
	result, err := store.Get(context.Background(), "file.txt/child")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, nosvault.ErrNotFound)
}

func TestStore_Get_ContextCanceled(t *testing.T) {
	store, _ := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := store.Get(ctx, "test.txt")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, context.Canceled, err)
}

func TestStore_Write_Success(t *testing.T) {
	store, tempDir := newStore(t)

	content := []byte("hello world")
	result, err := store.Write(context.Background(), "file.bin", bytes.NewReader(content))

	assert.NoError(t, err)
	assert.Equal(t, int64(len(content)), result.BytesWritten)
	assert.Len(t, result.Etag, 64)

	onDisk, err := os.ReadFile(filepath.Join(tempDir, "file.bin"))
	assert.NoError(t, err)
	assert.Equal(t, content, onDisk)
}

func TestStore_Write_Overwrite(t *testing.T) {
	store, tempDir := newStore(t)

	_, err := store.Write(context.Background(), "file.bin", bytes.NewReader([]byte("first")))
	require.NoError(t, err)

	_, err = store.Write(context.Background(), "file.bin", bytes.NewReader([]byte("second")))
	assert.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(tempDir, "file.bin"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), onDisk)
}

func TestStore_Write_CreatesIntermediateDirs(t *testing.T) {
	store, tempDir := newStore(t)

	_, err := store.Write(context.Background(), "a/b/c.txt", bytes.NewReader([]byte("deep")))

	assert.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(tempDir, "a", "b", "c.txt"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("deep"), onDisk)
}

func TestStore_Write_ContextCanceled(t *testing.T) {
	store, tempDir := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Write(ctx, "file.bin", bytes.NewReader([]byte("x")))

	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(tempDir, "file.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("stream aborted")
}

func TestStore_Write_StreamErrorLeavesNoFile(t *testing.T) {
	store, tempDir := newStore(t)

	_, err := store.Write(context.Background(), "file.bin", failingReader{})

	assert.Error(t, err)

	// No partial file at the target, and the temp file was discarded.
	_, statErr := os.Stat(filepath.Join(tempDir, "file.bin"))
	assert.True(t, os.IsNotExist(statErr))

	entries, readErr := os.ReadDir(tempDir)
	assert.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestStore_Write_StreamErrorKeepsExistingFile(t *testing.T) {
	store, tempDir := newStore(t)

	_, err := store.Write(context.Background(), "file.bin", bytes.NewReader([]byte("keep me")))
	require.NoError(t, err)

	_, err = store.Write(context.Background(), "file.bin", failingReader{})
	assert.Error(t, err)

	onDisk, readErr := os.ReadFile(filepath.Join(tempDir, "file.bin"))
	assert.NoError(t, readErr)
	assert.Equal(t, []byte("keep me"), onDisk)
}
