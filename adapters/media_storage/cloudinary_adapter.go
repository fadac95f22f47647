package media_storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

const cloudinaryFolder = "portfolio/uploads"

type cloudinaryAdapter struct {
	cld *cloudinary.Cloudinary
	log logger.Logger
}

// NewCloudinaryAdapter offloads blobs to Cloudinary. Save returns an
// absolute secure URL; Open is unsupported since the CDN serves the bytes.
func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("connect Cloudinary successfully.")
	return &cloudinaryAdapter{cld: cld, log: log}, nil
}

func (a *cloudinaryAdapter) Save(ctx context.Context, file io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	publicID := uuid.NewString() + ext

	result, err := a.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   cloudinaryFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	return result.SecureURL, nil
}

func (a *cloudinaryAdapter) Open(filename string) (io.ReadCloser, error) {
	return nil, service.ErrRemoteOnly
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, filename string) error {
	_, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: cloudinaryFolder + "/" + filename,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	return nil
}
