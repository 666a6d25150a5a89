package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"prepmate/internal/models"
)

// Storage keys. Three logical collections: the saved-session catalog, the
// single in-progress session, and the user profile.
const (
	sessionsKey       = "interview_sessions"
	currentSessionKey = "current_session"
	userProfileKey    = "user_profile"
)

// RedisStore is a durable key-value layer for sessions and profiles.
// It is a best-effort cache, not a system of record: malformed stored data
// is treated as absence and never surfaced to callers.
type RedisStore struct {
	rdb *redis.Client

	// guards read-modify-write sequences on the session list
	mu sync.Mutex
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// SaveSession upserts a session into the saved catalog by ID.
func (s *RedisStore) SaveSession(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.readSessions(ctx)

	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = *session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, *session)
	}

	return s.writeSessions(ctx, sessions)
}

// GetSession returns the saved session with the given ID, or nil when it
// has never been saved.
func (s *RedisStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	for _, session := range s.readSessions(ctx) {
		if session.ID == id {
			found := session
			return &found, nil
		}
	}
	return nil, nil
}

// GetAllSessions returns the saved catalog in insertion order.
func (s *RedisStore) GetAllSessions(ctx context.Context) ([]models.Session, error) {
	return s.readSessions(ctx), nil
}

// DeleteSession removes a session from the saved catalog. Deleting an
// unknown ID is not an error.
func (s *RedisStore) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.readSessions(ctx)
	kept := sessions[:0]
	for _, session := range sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	return s.writeSessions(ctx, kept)
}

// SetCurrentSession stores the single in-progress session pointer.
func (s *RedisStore) SetCurrentSession(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, currentSessionKey, data, 0).Err()
}

// GetCurrentSession returns the in-progress session, or nil when absent.
func (s *RedisStore) GetCurrentSession(ctx context.Context) (*models.Session, error) {
	data, err := s.rdb.Get(ctx, currentSessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// corrupted record: treat as absent
		return nil, nil
	}
	return &session, nil
}

func (s *RedisStore) ClearCurrentSession(ctx context.Context) error {
	return s.rdb.Del(ctx, currentSessionKey).Err()
}

func (s *RedisStore) SaveUserProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, userProfileKey, data, 0).Err()
}

// GetUserProfile returns the stored profile, or nil when absent.
func (s *RedisStore) GetUserProfile(ctx context.Context) (*models.UserProfile, error) {
	data, err := s.rdb.Get(ctx, userProfileKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

func (s *RedisStore) ClearUserProfile(ctx context.Context) error {
	return s.rdb.Del(ctx, userProfileKey).Err()
}

// ClearAll wipes all three collections.
func (s *RedisStore) ClearAll(ctx context.Context) error {
	return s.rdb.Del(ctx, sessionsKey, currentSessionKey, userProfileKey).Err()
}

// readSessions loads the saved catalog, treating a missing or corrupted
// record as an empty list.
func (s *RedisStore) readSessions(ctx context.Context) []models.Session {
	data, err := s.rdb.Get(ctx, sessionsKey).Bytes()
	if err != nil {
		return nil
	}

	var sessions []models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil
	}
	return sessions
}

func (s *RedisStore) writeSessions(ctx context.Context, sessions []models.Session) error {
	if sessions == nil {
		sessions = []models.Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionsKey, data, 0).Err()
}
