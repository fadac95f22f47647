package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/media"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

const maxPhotoSize = 5 * 1024 * 1024

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type PhotoHandler struct {
	photoUseCase *mediaUC.PhotoUseCase
	logger       logger.Logger
}

func NewPhotoHandler(uc *mediaUC.PhotoUseCase, log logger.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoUseCase: uc,
		logger:       log,
	}
}

func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.Error(apperror.NewInvalidInput("No file provided", err))
		return
	}

	if !allowedPhotoTypes[fileHeader.Header.Get("Content-Type")] {
		c.Error(apperror.NewInvalidInput("Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.", nil))
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.Error(apperror.NewInvalidInput("File too large. Maximum size is 5MB.", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.photoUseCase.ExecuteUpload(c.Request.Context(), mediaUC.UploadPhotoInput{
		File:     file,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UploadPhotoResponse{
		Success: true,
		Path:    output.Path,
		Message: "Photo uploaded successfully",
	})
}

func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	if err := h.photoUseCase.ExecuteRemove(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Photo removed successfully",
	})
}
