package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// StorageService keeps uploaded resumes. Keys are generated on save and are
// the only handle callers keep.
type StorageService interface {
	Save(ctx context.Context, filename string, src io.Reader, size int64, prefix string) (key, url string, err error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	EnsureReady(ctx context.Context) error
}

// objectKey validates the upload name and builds a unique key for it.
func objectKey(filename, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	return fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext), nil
}

type localStorage struct {
	uploadPath string
}

// NewLocalStorage stores files in a directory on disk.
func NewLocalStorage(uploadPath string) StorageService {
	return &localStorage{uploadPath: uploadPath}
}

func (s *localStorage) EnsureReady(ctx context.Context) error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

func (s *localStorage) Save(ctx context.Context, filename string, src io.Reader, size int64, prefix string) (string, string, error) {
	key, err := objectKey(filename, prefix)
	if err != nil {
		return "", "", err
	}

	filePath := s.path(key)
	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return key, filePath, nil
}

func (s *localStorage) Fetch(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *localStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// path confines key to the upload directory.
func (s *localStorage) path(key string) string {
	return filepath.Join(s.uploadPath, filepath.Base(key))
}
