package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

type UploadsHandler struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadsHandler(uploader service.Uploader, log logger.Logger) *UploadsHandler {
	return &UploadsHandler{
		uploader: uploader,
		logger:   log,
	}
}

// ServeUpload streams a stored blob by its generated filename. Blobs are
// immutable, so the cache header can be long-lived.
func (h *UploadsHandler) ServeUpload(c *gin.Context) {
	filename := c.Param("filename")

	file, err := h.uploader.Open(filename)
	if errors.Is(err, service.ErrFileNotFound) || errors.Is(err, service.ErrRemoteOnly) {
		c.Error(apperror.NewNotFound("file", filename))
		return
	}
	if err != nil {
		c.Error(apperror.NewStorage("failed to open upload", err))
		return
	}
	defer file.Close()

	c.DataFromReader(http.StatusOK, -1, contentTypeForFilename(filename), file, map[string]string{
		"Cache-Control": "public, max-age=31536000",
	})
}
