package http

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	resumeUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/resume"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type ResumeHandler struct {
	resumeUseCase *resumeUC.ResumeUseCase
	logger        logger.Logger
}

func NewResumeHandler(uc *resumeUC.ResumeUseCase, log logger.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase: uc,
		logger:        log,
	}
}

func (h *ResumeHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("No file provided", err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedResumeTypes[contentType] {
		c.Error(apperror.NewInvalidInput("Invalid file type. Allowed: PDF, TXT, DOC, DOCX", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.NewInternal("failed to read uploaded file", err))
		return
	}

	output, err := h.resumeUseCase.Execute(c.Request.Context(), resumeUC.UploadResumeInput{
		Data:          data,
		Filename:      fileHeader.Filename,
		ContentType:   contentType,
		ExtractWithAI: c.PostForm("extractWithAI") == "true",
	})
	if err != nil {
		c.Error(err)
		return
	}

	resp := UploadResumeResponse{
		Success:          true,
		Path:             output.Path,
		ExtractedProfile: output.ExtractedProfile,
		AIAvailable:      output.AIAvailable,
	}
	if output.ExtractionError != "" {
		resp.ExtractionError = &output.ExtractionError
	}
	c.JSON(http.StatusOK, resp)
}

// ResumeMeta is the public AI-availability probe.
func (h *ResumeHandler) ResumeMeta(c *gin.Context) {
	meta := h.resumeUseCase.ExecuteMeta(c.Request.Context())
	c.JSON(http.StatusOK, ResumeMetaResponse{
		AIAvailable: meta.AIAvailable,
		Provider:    meta.Provider,
	})
}

func (h *ResumeHandler) DownloadResume(c *gin.Context) {
	output, err := h.resumeUseCase.ExecuteDownload(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	if output.RedirectURL != "" {
		c.Redirect(http.StatusFound, output.RedirectURL)
		return
	}
	defer output.File.Close()

	ext := strings.ToLower(path.Ext(output.Filename))
	c.DataFromReader(http.StatusOK, -1, contentTypeForFilename(output.Filename), output.File, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="resume%s"`, ext),
	})
}
