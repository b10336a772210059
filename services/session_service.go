package services

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"time"
	"venuefinder-backend/utils"

	"github.com/go-redis/redis/v8"
)

// Sessions is the process-wide session store, set once at startup
// (Redis in production, MemorySessionStore otherwise).
var Sessions SessionStore

// SessionStore maps opaque tokens to user ids. Tokens expire after their
// TTL and are removed eagerly on logout.
type SessionStore interface {
	Create(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// SessionTTL returns the configured session lifetime (SESSION_TTL_HOURS,
// default 24h).
func SessionTTL() time.Duration {
	hours := 24
	if env := os.Getenv("SESSION_TTL_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil && h > 0 {
			hours = h
		}
	}
	return time.Duration(hours) * time.Hour
}

// IssueSession generates a token for the user and registers it in the
// store. The returned token is the caller's session credential.
func IssueSession(ctx context.Context, userID string) (string, error) {
	token := utils.GenerateSessionToken()
	if err := Sessions.Create(ctx, token, userID, SessionTTL()); err != nil {
		return "", err
	}
	return token, nil
}

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis; expiry is delegated to key TTLs.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.Client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.Client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	deleted, err := s.Client.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// MemorySessionStore is the single-process fallback used when Redis is
// not configured, and by the test suite.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Create(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", ErrSessionNotFound
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", ErrSessionNotFound
	}
	return sess.userID, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}
