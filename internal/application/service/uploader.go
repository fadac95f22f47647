package service

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrFileNotFound is returned by Open and Delete for unknown filenames.
	ErrFileNotFound = errors.New("uploaded file not found")
	// ErrRemoteOnly is returned by drivers that store blobs behind absolute
	// URLs and cannot stream them back through this process.
	ErrRemoteOnly = errors.New("upload is stored remotely")
)

// Uploader stores immutable binary blobs under collision-free generated
// names and returns a public path usable for later retrieval.
type Uploader interface {
	Save(ctx context.Context, file io.Reader, originalFilename string) (string, error)
	Open(filename string) (io.ReadCloser, error)
	Delete(ctx context.Context, filename string) error
}
