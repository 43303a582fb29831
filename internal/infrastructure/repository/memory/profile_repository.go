package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

// ProfileRepository keeps profile documents in process memory. It backs the
// profile store when no database is configured.
type ProfileRepository struct {
	mu    sync.RWMutex
	items map[string]user.Profile
	now   func() time.Time
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		items: make(map[string]user.Profile),
		now:   time.Now,
	}
}

func (r *ProfileRepository) GetProfile(_ context.Context, userID string) (user.Profile, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.Profile{}, false, fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.items[userID]
	return profile, ok, nil
}

func (r *ProfileRepository) MergeProfile(_ context.Context, userID string, patch user.ProfilePatch) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}
	if patch.IsEmpty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	profile, ok := r.items[userID]
	if !ok {
		profile = user.Profile{UserID: userID, CreatedAt: now}
	}
	profile = patch.Apply(profile)
	profile.UpdatedAt = now
	r.items[userID] = profile
	return nil
}
