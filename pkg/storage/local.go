package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const publicPrefix = "/uploads/"

// LocalStorage writes blobs into a directory served back under
// /uploads by the HTTP edge.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(filename string, reader io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return publicPrefix + filename, nil
}

func (s *LocalStorage) Delete(publicPath string) error {
	filename := strings.TrimPrefix(publicPath, publicPrefix)
	// Reject anything trying to escape the upload directory.
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid blob path: %s", publicPath)
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
