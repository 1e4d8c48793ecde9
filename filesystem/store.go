// Package filesystem provides the on-disk storage backend for nosvault.
// Writes are atomic (temp file plus rename) with SHA256-based etags, so
// a concurrent reader never observes a half-written upload.
package filesystem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"nosvault"
)

// Store provides file system storage operations rooted at a sandboxed
// directory. All paths are interpreted relative to the root; traversal
// outside it is rejected by os.Root.
type Store struct {
	root *os.Root
}

// NewFileStorage creates a new Store with the given root directory.
func NewFileStorage(root *os.Root) *Store {
	return &Store{root: root}
}

// Get opens a file for reading. Returns nosvault.ErrNotFound if the
// file cannot be opened: a missing file, a path component that is a
// regular file (ENOTDIR), or a name the sandbox refuses. Reads expose
// only absence, never the underlying open failure.
func (s *Store) Get(ctx context.Context, path string) (io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.root.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, nosvault.ErrNotFound)
	}

	return f, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// Write atomically writes content to the given path using a temp file
// and rename. It creates intermediate directories as needed and returns
// the number of bytes written and a SHA256-based etag. An error while
// streaming (including a client abort surfacing through content, or
// context cancellation) discards the temp file and leaves any existing
// file at path untouched.
func (s *Store) Write(ctx context.Context, path string, content io.Reader) (nosvault.SaveResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nosvault.SaveResult{}, ctxErr
	}

	tmpFile := tmpFileName()
	t, createErr := s.root.Create(tmpFile)
	if createErr != nil {
		return nosvault.SaveResult{}, fmt.Errorf("could not open temp file: %w", createErr)
	}

	success := false
	defer func() {
		if closeErr := t.Close(); closeErr != nil {
			slog.Warn("failed to close tmp file", "err", closeErr)
		}
		if !success {
			if rmErr := s.root.Remove(t.Name()); rmErr != nil {
				slog.Warn("failed to remove tmp file", "err", rmErr)
			}
		}
	}()

	h := sha256.New()
	w := io.MultiWriter(h, t)

	fileSizeBytes, err := io.Copy(w, &ctxReader{ctx: ctx, r: content})
	if err != nil {
		return nosvault.SaveResult{}, fmt.Errorf("could not copy file contents: %w", err)
	}

	err = t.Sync()
	if err != nil {
		return nosvault.SaveResult{}, fmt.Errorf("could not sync written file: %w", err)
	}

	destDir := filepath.Dir(path)
	if destDir != "." {
		if err := s.root.MkdirAll(destDir, 0o755); err != nil {
			return nosvault.SaveResult{}, fmt.Errorf("could not create intermediate directories: %w", err)
		}
	}

	if renameErr := s.root.Rename(tmpFile, path); renameErr != nil {
		return nosvault.SaveResult{}, fmt.Errorf("failed to rename file: %w", renameErr)
	}

	etag := hex.EncodeToString(h.Sum(nil))
	success = true

	return nosvault.SaveResult{BytesWritten: fileSizeBytes, Etag: etag}, nil
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}
