package media

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/Chetan55567/portfolio-api/adapters/event"
	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

type PhotoUseCase struct {
	store       profile.Store
	uploader    service.Uploader
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewPhotoUseCase(
	store profile.Store,
	uploader service.Uploader,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{store: store, uploader: uploader, kafkaClient: kafkaClient, logger: log}
}

type UploadPhotoInput struct {
	File     io.Reader
	Filename string
}

type UploadPhotoOutput struct {
	Path string
}

func (uc *PhotoUseCase) ExecuteUpload(ctx context.Context, input UploadPhotoInput) (*UploadPhotoOutput, error) {
	path, err := uc.uploader.Save(ctx, input.File, input.Filename)
	if err != nil {
		return nil, apperror.NewStorage("failed to save photo upload", err)
	}

	if _, err := uc.store.Update(ctx, func(d *profile.ProfileData) error {
		d.Profile.ProfilePhoto = &path
		return nil
	}); err != nil {
		return nil, err
	}

	go func() {
		payload := event.ContentEventPayload{EventType: event.ContentEventPhotoUploaded, Path: path}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'photo.uploaded' event", err, zap.String("path", path))
		}
	}()

	return &UploadPhotoOutput{Path: path}, nil
}

// ExecuteRemove clears the profilePhoto pointer only; the stored blob is
// kept (no garbage collection of orphan uploads).
func (uc *PhotoUseCase) ExecuteRemove(ctx context.Context) error {
	if _, err := uc.store.Update(ctx, func(d *profile.ProfileData) error {
		d.Profile.ProfilePhoto = nil
		return nil
	}); err != nil {
		return err
	}

	go func() {
		payload := event.ContentEventPayload{EventType: event.ContentEventPhotoRemoved}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'photo.removed' event", err)
		}
	}()

	return nil
}
