package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no session exists for an id, either
// because it never existed or because its TTL expired.
var ErrSessionNotFound = errors.New("booking session not found")

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SessionStore keeps booking sessions in redis, keyed by session id. Sessions
// expire with their TTL; nothing outlives the session.
type SessionStore struct {
	redis RedisClient
}

func NewSessionStore(redis RedisClient) *SessionStore {
	return &SessionStore{
		redis: redis,
	}
}

func (s *SessionStore) GetLockKey(sessionID string) string {
	return fmt.Sprintf("booking:lock:%s", sessionID)
}

func (s *SessionStore) getSessionKey(sessionID string) string {
	return fmt.Sprintf("booking:session:%s", sessionID)
}

// AcquireLock serializes transitions on a single session so each action
// completes before the next one is accepted.
func (s *SessionStore) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return s.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (s *SessionStore) ReleaseLock(ctx context.Context, key string) error {
	return s.redis.Del(ctx, key).Err()
}

func (s *SessionStore) SetSession(ctx context.Context, session Session, expiration time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.redis.Set(ctx, s.getSessionKey(session.ID), data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (Session, error) {
	data, err := s.redis.Get(ctx, s.getSessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return session, nil
}
