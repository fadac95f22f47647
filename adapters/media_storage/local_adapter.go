package media_storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
)

const publicPathPrefix = "/api/uploads/"

type localAdapter struct {
	dir string
}

// NewLocalAdapter stores uploads on disk under <dataDir>/uploads. Generated
// names are a UUID plus the original extension, so identical filenames
// submitted in the same instant never overwrite each other.
func NewLocalAdapter(dataDir string) (service.Uploader, error) {
	dir := filepath.Join(dataDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create uploads directory: %w", err)
	}
	return &localAdapter{dir: dir}, nil
}

func (a *localAdapter) Save(ctx context.Context, file io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(a.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return publicPathPrefix + name, nil
}

func (a *localAdapter) Open(filename string) (io.ReadCloser, error) {
	path, err := a.resolve(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, service.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open upload file: %w", err)
	}
	return f, nil
}

func (a *localAdapter) Delete(ctx context.Context, filename string) error {
	path, err := a.resolve(filename)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return service.ErrFileNotFound
	}
	return err
}

// resolve rejects anything that is not a bare generated filename so the
// serving endpoint cannot be used for path traversal.
func (a *localAdapter) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", service.ErrFileNotFound
	}
	return filepath.Join(a.dir, filename), nil
}
