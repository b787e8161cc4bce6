// Package storage saves uploaded files on the local filesystem and serves
// them by URL.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStorage is the upload contract the application layer depends on.
// Uploads are opportunistic: a failed upload surfaces as an error but callers
// decide whether the operation proceeds without the file.
type FileStorage interface {
	Upload(file *multipart.FileHeader, folder string) (string, error)
	Delete(url string) error
}

type LocalFileStorage struct {
	basePath string
	baseURL  string
}

func NewLocalFileStorage(basePath, baseURL string) *LocalFileStorage {
	return &LocalFileStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalFileStorage) Upload(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), filepath.Ext(file.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, folder, name), nil
}

func (s *LocalFileStorage) Delete(url string) error {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return fmt.Errorf("url does not belong to this storage: %s", url)
	}
	rel := strings.TrimPrefix(url, s.baseURL+"/")

	// Resolve and keep the path inside basePath.
	path := filepath.Join(s.basePath, filepath.FromSlash(rel))
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(absPath, absBase+string(os.PathSeparator)) {
		return fmt.Errorf("refusing to delete outside storage root: %s", url)
	}

	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
