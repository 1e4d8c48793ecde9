package nosvault

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// FileStorage defines the interface for physical file storage.
// Implementations must tolerate concurrent access; two writers racing
// on the same path may land in either order, but a reader must never
// observe a partially written file.
type FileStorage interface {
	// Get opens a stored file for reading. Returns ErrNotFound if no
	// file exists at path. The caller closes the returned reader.
	Get(ctx context.Context, path string) (io.ReadSeekCloser, error)

	// Write streams content to path, overwriting any existing file.
	// Implementations should write atomically (temp file then rename)
	// and create intermediate directories as needed. A content or
	// context error mid-stream must leave no partial file at path.
	Write(ctx context.Context, path string, content io.Reader) (SaveResult, error)
}

// SaveResult describes a completed write.
type SaveResult struct {
	BytesWritten int64
	Etag         string
}

// CredentialVerifier extracts an authenticated public key from an
// Authorization header value, or fails with ErrUnauthorized.
type CredentialVerifier interface {
	Verify(header string) (string, error)
}

// Service implements the store's two operations: authenticated uploads
// into a key's own namespace, and public downloads.
type Service struct {
	storage  FileStorage
	verifier CredentialVerifier
}

func NewService(storage FileStorage, verifier CredentialVerifier) *Service {
	return &Service{storage: storage, verifier: verifier}
}

// Put handles an upload end-to-end: verify the credential, check that
// the authenticated key owns the target path, then persist the body.
//
// Returns ErrUnauthorized if the credential is missing or invalid, and
// ErrForbidden if the key does not own the path. The ownership rule is
// a single OwnsNamespace call; there is no separate directory check.
func (s *Service) Put(ctx context.Context, authHeader, path string, body io.Reader) (SaveResult, error) {
	pubkey, err := s.verifier.Verify(authHeader)
	if err != nil {
		return SaveResult{}, fmt.Errorf("put: %w", err)
	}

	if !OwnsNamespace(path, pubkey) {
		return SaveResult{}, fmt.Errorf("put: pubkey does not own target directory: %w", ErrForbidden)
	}

	result, err := s.storage.Write(ctx, storagePath(path), body)
	if err != nil {
		return SaveResult{}, fmt.Errorf("put: %w", err)
	}

	slog.Info("stored file", "path", path, "bytes", result.BytesWritten, "etag", result.Etag)
	return result, nil
}

// Get handles a download. Reads are public: no credential is consumed
// and none is required. The content type is derived solely from the
// path's extension.
func (s *Service) Get(ctx context.Context, path string) (io.ReadSeekCloser, string, error) {
	if !IsValidRequestPath(path) {
		return nil, "", fmt.Errorf("get: %w", ErrNotFound)
	}

	content, err := s.storage.Get(ctx, storagePath(path))
	if err != nil {
		return nil, "", fmt.Errorf("get: %w", err)
	}

	return content, ContentTypeFor(path), nil
}

// storagePath converts a request path to the root-relative form the
// storage layer expects.
func storagePath(path string) string {
	return strings.Join(Segments(path), "/")
}
