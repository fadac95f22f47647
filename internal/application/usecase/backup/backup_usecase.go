package backup

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

// BackupUseCase snapshots the whole data directory (profile.json plus the
// uploads blobs) into a tar.gz and pushes it through the uploader, meant
// to run as a one-shot job against the Cloudinary driver.
type BackupUseCase struct {
	cfg      config.Config
	uploader service.Uploader
	logger   logger.Logger
}

func NewBackupUseCase(cfg config.Config, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		cfg:      cfg,
		uploader: uploader,
		logger:   log,
	}
}

func (uc *BackupUseCase) Execute(ctx context.Context) error {
	uc.logger.Info("Starting data directory backup...")

	var buf bytes.Buffer
	if err := archiveDir(uc.cfg.App.DataDir, &buf); err != nil {
		uc.logger.Error("Failed to archive data directory", err)
		return err
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("backup-%s.tar.gz", timestamp)

	uploadURL, err := uc.uploader.Save(ctx, &buf, filename)
	if err != nil {
		uc.logger.Error("Failed to upload backup", err)
		return err
	}

	uc.logger.Info("Backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("filename", filename),
	)
	return nil
}

func archiveDir(dir string, w io.Writer) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to walk data directory: %w", err)
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}
