package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore persists server-side session records keyed by session ID.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (userID uint, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps session records in Redis. Unlike the cache,
// connectivity errors are reported so that sessions are never silently dropped.
type RedisSessionStore struct {
	rdb *redis.Client
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

// Save stores the session record. A zero ttl keeps it until deleted.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	key := sessionKeyPrefix + sessionID
	if err := s.rdb.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Lookup returns the user bound to sessionID.
func (s *RedisSessionStore) Lookup(ctx context.Context, sessionID string) (uint, bool, error) {
	key := sessionKeyPrefix + sessionID
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup session: %w", err)
	}

	uid, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid user id in session %s: %w", sessionID, err)
	}
	return uint(uid), true, nil
}

// Delete removes the session record.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

type memorySession struct {
	userID  uint
	expires time.Time
}

// MemorySessionStore keeps session records in process memory. It suits
// single-instance deployments and tests; records are lost on restart.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Save(_ context.Context, sessionID string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := memorySession{userID: userID}
	if ttl > 0 {
		rec.expires = s.now().Add(ttl)
	}
	s.sessions[sessionID] = rec
	return nil
}

func (s *MemorySessionStore) Lookup(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok {
		return 0, false, nil
	}
	if !rec.expires.IsZero() && !s.now().Before(rec.expires) {
		delete(s.sessions, sessionID)
		return 0, false, nil
	}
	return rec.userID, true, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
