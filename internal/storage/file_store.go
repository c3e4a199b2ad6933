package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"quizforge/internal/domain"
	"quizforge/internal/util"
)

// FileStore persists raw uploaded documents on the local filesystem.
// Locators are paths inside the upload directory; filenames are
// ULID-prefixed so concurrent uploads of the same document never
// collide.
type FileStore struct {
	uploadDir      string
	maxUploadBytes int64
}

// NewFileStore creates the upload directory if needed.
func NewFileStore(uploadDir string, maxUploadBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", uploadDir, err)
	}
	return &FileStore{uploadDir: uploadDir, maxUploadBytes: maxUploadBytes}, nil
}

// Save writes the document bytes and returns the stored path as the
// locator. A partially written file is removed on failure.
func (s *FileStore) Save(data []byte, fileName string) (string, error) {
	if s.maxUploadBytes > 0 && int64(len(data)) > s.maxUploadBytes {
		return "", domain.NewInvalidDocumentError(
			fmt.Sprintf("document exceeds maximum size of %d bytes", s.maxUploadBytes))
	}

	name := fmt.Sprintf("%s_%s", util.NewULID(), filepath.Base(fileName))
	path := filepath.Join(s.uploadDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write document file: %w", err)
	}
	return path, nil
}

// Delete removes a stored document. Deleting a locator that no longer
// exists is not an error.
func (s *FileStore) Delete(locator string) error {
	if err := os.Remove(locator); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document file: %w", err)
	}
	return nil
}

var _ domain.DocumentStore = (*FileStore)(nil)
