// Package session persists the authenticated session durably so a process
// restart (the page-reload analogue) restores it.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/rentalfront/domain"
)

// RedisStore implements domain.SessionStore using Redis. Each session is
// two keys, the access token and the serialized user profile, written and
// deleted together so a session is never half-present.
type RedisStore struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, defaultTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:     client,
		prefix:     "sess:",
		defaultTTL: defaultTTL,
	}
}

func (s *RedisStore) tokenKey(id string) string { return s.prefix + id + ":token" }
func (s *RedisStore) userKey(id string) string  { return s.prefix + id + ":user" }

type storedUser struct {
	User      domain.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Save implements domain.SessionStore. Both keys are written in one
// pipeline with the same TTL.
func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(storedUser{
		User:      session.User,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}

	ttl := s.defaultTTL
	if !session.ExpiresAt.IsZero() {
		if until := time.Until(session.ExpiresAt); until > 0 && until < ttl {
			ttl = until
		}
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(session.ID), session.Token, ttl)
	pipe.Set(ctx, s.userKey(session.ID), data, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Load implements domain.SessionStore. A session with one key missing is
// treated as absent and the leftover key is removed.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	token, err := s.client.Get(ctx, s.tokenKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			s.client.Del(ctx, s.userKey(sessionID))
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	data, err := s.client.Get(ctx, s.userKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			s.client.Del(ctx, s.tokenKey(sessionID))
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var stored storedUser
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session user: %w", err)
	}

	if !stored.ExpiresAt.IsZero() && stored.ExpiresAt.Before(time.Now()) {
		_ = s.Clear(ctx, sessionID)
		return nil, domain.ErrSessionExpired
	}

	return &domain.Session{
		ID:        sessionID,
		Token:     token,
		User:      stored.User,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// Clear implements domain.SessionStore. Both keys go in one call; clearing
// an absent session is not an error.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.tokenKey(sessionID), s.userKey(sessionID)).Err()
}

var _ domain.SessionStore = (*RedisStore)(nil)
