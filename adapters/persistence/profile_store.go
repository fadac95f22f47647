package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

const profileFileName = "profile.json"

// FileProfileStore persists the whole {profile, settings} envelope as one
// JSON document. All updates run a read-modify-write cycle under a single
// mutex, so concurrent patches to disjoint fields cannot drop each other.
type FileProfileStore struct {
	path   string
	mu     sync.Mutex
	data   *profile.ProfileData
	logger logger.Logger
}

// OpenProfileStore loads the envelope at startup, seeding the file with
// defaults when absent. A malformed file is a startup error; it is never
// silently replaced with defaults.
func OpenProfileStore(dataDir string, log logger.Logger) (*FileProfileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	s := &FileProfileStore{
		path:   filepath.Join(dataDir, profileFileName),
		logger: log,
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = profile.DefaultProfileData()
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		log.Info("profile store initialized with defaults")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read profile file: %w", err)
	}

	var data profile.ProfileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("profile file %s is malformed: %w", s.path, err)
	}
	s.data = &data

	return s, nil
}

func (s *FileProfileStore) Read(ctx context.Context) (*profile.ProfileData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.data)
}

func (s *FileProfileStore) Update(ctx context.Context, mutate func(*profile.ProfileData) error) (*profile.ProfileData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := clone(s.data)
	if err != nil {
		return nil, err
	}
	if err := mutate(next); err != nil {
		return nil, err
	}

	prev := s.data
	s.data = next
	if err := s.persistLocked(); err != nil {
		s.data = prev
		return nil, err
	}

	return clone(next)
}

// persistLocked writes the envelope with write-then-rename so a crash
// mid-write never leaves a truncated file behind. Caller holds s.mu.
func (s *FileProfileStore) persistLocked() error {
	payload, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return apperror.NewStorage("failed to marshal profile data", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return apperror.NewStorage("failed to write profile file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperror.NewStorage("failed to replace profile file", err)
	}
	return nil
}

func clone(data *profile.ProfileData) (*profile.ProfileData, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, apperror.NewInternal("failed to copy profile data", err)
	}
	var out profile.ProfileData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.NewInternal("failed to copy profile data", err)
	}
	return &out, nil
}
