package profile

import (
	"context"
	"fmt"

	"github.com/Chetan55567/portfolio-api/adapters/event"
	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

type ProfileUseCase struct {
	store       profile.Store
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewProfileUseCase(store profile.Store, kafkaClient *event.KafkaProducerClient, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		store:       store,
		kafkaClient: kafkaClient,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Data *profile.ProfileData
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	data, err := uc.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Data: data}, nil
}

type UpdateProfileInput struct {
	Profile  *profile.ProfilePatch
	Settings *profile.SettingsPatch
}

type UpdateProfileOutput struct {
	Data *profile.ProfileData
}

// ExecuteUpdateProfile applies both patches in one serialized
// read-modify-write pass so a profile patch and a settings patch in the
// same request cannot tear.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	data, err := uc.store.Update(ctx, func(d *profile.ProfileData) error {
		d.Profile.Apply(input.Profile)
		d.Settings.Apply(input.Settings)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	go func() {
		if input.Profile != nil {
			uc.publish(event.ContentEventProfileUpdated)
		}
		if input.Settings != nil {
			uc.publish(event.ContentEventSettingsUpdated)
		}
	}()

	return &UpdateProfileOutput{Data: data}, nil
}

func (uc *ProfileUseCase) publish(eventType string) {
	payload := event.ContentEventPayload{EventType: eventType}
	if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
		uc.logger.Error("Failed to publish Kafka content event", err)
	}
}
