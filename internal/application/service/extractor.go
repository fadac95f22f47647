package service

import (
	"context"

	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
)

// ResumeExtractor converts free-text resume content into a partial Profile
// through a pluggable LLM backend. Extract never panics past this boundary;
// failures come back as typed errors so the caller can keep the uploaded
// file and surface a message.
type ResumeExtractor interface {
	Available() bool
	Provider() string
	Extract(ctx context.Context, resumeText string) (*profile.ProfilePatch, error)
}
