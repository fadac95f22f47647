package resume

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Chetan55567/portfolio-api/adapters/event"
	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

const (
	msgPDFParseFailed = "Failed to parse PDF. Please try a different format or use manual entry."
	msgFormatNotAI    = "AI extraction is only supported for PDF and TXT files. Please use manual entry for other formats."
)

var tracer = otel.Tracer("resume_usecase")

type ResumeUseCase struct {
	store         profile.Store
	uploader      service.Uploader
	textExtractor service.TextExtractor
	aiExtractor   service.ResumeExtractor
	kafkaClient   *event.KafkaProducerClient
	aiTimeout     time.Duration
	logger        logger.Logger
}

func NewResumeUseCase(
	store profile.Store,
	uploader service.Uploader,
	textExtractor service.TextExtractor,
	aiExtractor service.ResumeExtractor,
	kafkaClient *event.KafkaProducerClient,
	aiTimeout time.Duration,
	log logger.Logger,
) *ResumeUseCase {
	return &ResumeUseCase{
		store:         store,
		uploader:      uploader,
		textExtractor: textExtractor,
		aiExtractor:   aiExtractor,
		kafkaClient:   kafkaClient,
		aiTimeout:     aiTimeout,
		logger:        log,
	}
}

type UploadResumeInput struct {
	Data          []byte
	Filename      string
	ContentType   string
	ExtractWithAI bool
}

type UploadResumeOutput struct {
	Path             string
	ExtractedProfile *profile.ProfilePatch
	ExtractionError  string
	AIAvailable      bool
}

// Execute stores the resume first; extraction failures are non-fatal and
// come back as a message next to the successful upload.
func (uc *ResumeUseCase) Execute(ctx context.Context, input UploadResumeInput) (*UploadResumeOutput, error) {
	savedPath, err := uc.uploader.Save(ctx, bytes.NewReader(input.Data), input.Filename)
	if err != nil {
		return nil, apperror.NewStorage("failed to save resume upload", err)
	}

	if _, err := uc.store.Update(ctx, func(d *profile.ProfileData) error {
		d.Profile.ResumeFile = &savedPath
		return nil
	}); err != nil {
		return nil, err
	}

	out := &UploadResumeOutput{
		Path:        savedPath,
		AIAvailable: uc.aiExtractor.Available(),
	}

	if input.ExtractWithAI {
		uc.extract(ctx, input, out)
	}

	go func() {
		payload := event.ContentEventPayload{EventType: event.ContentEventResumeUploaded, Path: savedPath}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'resume.uploaded' event", err, zap.String("path", savedPath))
		}
	}()

	return out, nil
}

func (uc *ResumeUseCase) extract(ctx context.Context, input UploadResumeInput, out *UploadResumeOutput) {
	ctx, span := tracer.Start(ctx, "ExtractResume")
	defer span.End()
	span.SetAttributes(attribute.String("content_type", input.ContentType))

	text, err := uc.textExtractor.ExtractText(input.ContentType, input.Data)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrUnsupportedFormat) {
			out.ExtractionError = msgFormatNotAI
		} else {
			out.ExtractionError = msgPDFParseFailed
		}
		return
	}

	extractCtx, cancel := context.WithTimeout(ctx, uc.aiTimeout)
	defer cancel()

	patch, err := uc.aiExtractor.Extract(extractCtx, text)
	if err != nil {
		span.RecordError(err)
		uc.logger.Warn("resume extraction failed", zap.String("provider", uc.aiExtractor.Provider()), zap.Error(err))
		out.ExtractionError = err.Error()
		return
	}

	// auto-apply the extracted fields over the current profile
	if _, err := uc.store.Update(ctx, func(d *profile.ProfileData) error {
		d.Profile.Apply(patch)
		return nil
	}); err != nil {
		span.RecordError(err)
		out.ExtractionError = err.Error()
		return
	}

	out.ExtractedProfile = patch
}

type ResumeMetaOutput struct {
	AIAvailable bool
	Provider    string
}

func (uc *ResumeUseCase) ExecuteMeta(ctx context.Context) *ResumeMetaOutput {
	return &ResumeMetaOutput{
		AIAvailable: uc.aiExtractor.Available(),
		Provider:    uc.aiExtractor.Provider(),
	}
}

type DownloadResumeOutput struct {
	Filename    string
	File        io.ReadCloser
	RedirectURL string
}

// ExecuteDownload streams the stored resume; remote-driver deployments get
// a redirect to the absolute URL instead.
func (uc *ResumeUseCase) ExecuteDownload(ctx context.Context) (*DownloadResumeOutput, error) {
	data, err := uc.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	if data.Profile.ResumeFile == nil || *data.Profile.ResumeFile == "" {
		return nil, apperror.NewNotFound("resume", "resumeFile")
	}

	stored := *data.Profile.ResumeFile
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return &DownloadResumeOutput{RedirectURL: stored}, nil
	}

	filename := path.Base(stored)
	file, err := uc.uploader.Open(filename)
	if errors.Is(err, service.ErrFileNotFound) {
		return nil, apperror.NewNotFound("resume file", filename)
	}
	if err != nil {
		return nil, apperror.NewStorage("failed to open resume file", err)
	}

	return &DownloadResumeOutput{Filename: filename, File: file}, nil
}
