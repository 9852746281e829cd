// ABOUTME: Challenge service resolves the yearly reading-challenge counters
// ABOUTME: Feed descriptions first, profile page second, negative results cached

// Package challenge scans for yearly "books read vs. goal" counters. The
// counters change far less often than reading progress, so results (including
// "not found") live in their own long-TTL cache slot.
package challenge

import (
	"context"
	"encoding/json"
	"time"

	"reading-display-api/core/domain"
	"reading-display-api/core/extract"
	"reading-display-api/core/interfaces"
)

// cacheKey is the challenge slot's fixed cache key.
const cacheKey = "challenge:state"

// ProfileSource fetches the profile page's visible text for the second
// extraction strategy. Implementations live in infrastructure-facing
// packages; tests substitute a stub.
type ProfileSource interface {
	ProfileText(ctx context.Context) (string, error)
}

// Service resolves challenge counters with two ordered strategies and its
// own cache slot.
type Service struct {
	deps    interfaces.Dependencies
	profile ProfileSource
	ttl     time.Duration
}

// NewService creates a challenge service. profile may be nil, in which case
// only the feed-description strategy runs.
func NewService(deps interfaces.Dependencies, profile ProfileSource, ttl time.Duration) *Service {
	return &Service{
		deps:    deps,
		profile: profile,
		ttl:     ttl,
	}
}

// cachedResult wraps the outcome so a "not found" is cached too; failing to
// cache misses would hammer the profile page on every request.
type cachedResult struct {
	Found bool                   `json:"found"`
	State *domain.ChallengeState `json:"state,omitempty"`
}

// Resolve returns the current challenge counters, or false when neither
// strategy produced a plausible match. Feed entries are the ones already
// collected for the reading lookup; only the profile strategy touches the
// network.
func (s *Service) Resolve(ctx context.Context, entries []*domain.FeedEntry) (*domain.ChallengeState, bool) {
	if cached, ok := s.cachedState(ctx); ok {
		return cached.State, cached.Found
	}

	state, found := s.lookup(ctx, entries)

	s.store(ctx, cachedResult{Found: found, State: state})
	return state, found
}

// Invalidate drops the cached challenge result so the next Resolve performs
// a fresh lookup.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.deps.Cache == nil {
		return nil
	}
	return s.deps.Cache.Delete(ctx, cacheKey)
}

func (s *Service) lookup(ctx context.Context, entries []*domain.FeedEntry) (*domain.ChallengeState, bool) {
	plausible := func(read, goal int) bool {
		_, err := domain.NewChallengeState(read, goal)
		return err == nil
	}

	// Strategy 1: challenge phrases inside feed entry descriptions.
	for _, entry := range entries {
		if !entry.HasDescription() {
			continue
		}
		text := extract.DescriptionText(entry.Description)
		if read, goal, ok := extract.MatchCounterPair(text, extract.FeedChallengePatterns, plausible); ok {
			state, _ := domain.NewChallengeState(read, goal)
			s.logFound("feed", state)
			return state, true
		}
	}

	// Strategy 2: the profile page's visible text.
	if s.profile != nil {
		text, err := s.profile.ProfileText(ctx)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Profile page lookup failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		} else if read, goal, ok := extract.MatchCounterPair(text, extract.ProfileChallengePatterns, plausible); ok {
			state, _ := domain.NewChallengeState(read, goal)
			s.logFound("profile", state)
			return state, true
		}
	}

	return nil, false
}

func (s *Service) cachedState(ctx context.Context) (cachedResult, bool) {
	if s.deps.Cache == nil {
		return cachedResult{}, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey)
	if err != nil || data == nil {
		return cachedResult{}, false
	}

	var result cachedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return cachedResult{}, false
	}
	return result, true
}

func (s *Service) store(ctx context.Context, result cachedResult) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Cache errors are non-fatal; the next request just looks up again.
	_ = s.deps.Cache.Set(ctx, cacheKey, data, s.ttl)
}

func (s *Service) logFound(source string, state *domain.ChallengeState) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Info("Challenge counters found", map[string]interface{}{
		"source":    source,
		"challenge": state.String(),
	})
}
