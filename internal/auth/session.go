package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/azpdscc/website-api/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLoginFailed is returned on bad volunteer credentials or when the
// volunteer login surface has no credentials configured
var ErrLoginFailed = errors.New("auth: login failed")

// Session is an authenticated volunteer session
type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore keeps volunteer sessions with a TTL
type SessionStore interface {
	Put(ctx context.Context, token, role string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error) // returns role, "" if absent
	Delete(ctx context.Context, token string) error
}

// redisSessionStore backs sessions with Redis so multiple instances
// share the volunteer login state
type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store
func NewRedisSessionStore(cfg *config.RedisConfig) SessionStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})
	return &redisSessionStore{rdb: rdb}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *redisSessionStore) Put(ctx context.Context, token, role string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(token), role, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (string, error) {
	role, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

// memorySessionStore is the single-instance fallback used when Redis is
// not configured, and the store of choice in tests
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

type memorySession struct {
	role      string
	expiresAt time.Time
}

// NewMemorySessionStore creates an in-process session store
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *memorySessionStore) Put(ctx context.Context, token, role string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{role: role, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return "", nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", nil
	}
	return sess.role, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// VolunteerLogin checks the configured static credentials and mints a
// volunteer session. Comparison is constant-time so the shared secret
// cannot be probed byte by byte.
func VolunteerLogin(ctx context.Context, cfg *config.AuthConfig, store SessionStore, username, password string) (*Session, error) {
	if !cfg.VolunteerLoginConfigured() {
		return nil, ErrLoginFailed
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.VolunteerUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.VolunteerPassword)) == 1
	if !userOK || !passOK {
		return nil, ErrLoginFailed
	}

	token := uuid.New().String()
	if err := store.Put(ctx, token, RoleVolunteer, cfg.SessionTTL); err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		Role:      RoleVolunteer,
		ExpiresAt: time.Now().Add(cfg.SessionTTL),
	}, nil
}
