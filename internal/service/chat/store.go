package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/solace/backend/internal/metrics"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
)

var ErrSessionNotFound = errors.New("session not found")

// StoreConfig controls session expiry. Zero values default to one hour.
type StoreConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
	Now           func() time.Time
	Logger        zerolog.Logger
}

// Store is the in-memory registry of live sessions. Sessions expire by
// creation time, not by inactivity.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session

	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewStore bootstraps an empty store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store{
		sessions: make(map[string]*chat.Session),
		ttl:      cfg.TTL,
		interval: cfg.SweepInterval,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}
}

// CreateSession allocates a session with an empty transcript.
func (s *Store) CreateSession(_ context.Context) (chat.Session, error) {
	session := &chat.Session{
		ID:        uuid.NewString(),
		Messages:  make([]chat.Message, 0, 16),
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsCreated.Inc()
	metrics.SessionsActive.Set(float64(active))
	return session.Clone(), nil
}

// GetSession returns a snapshot of the session.
func (s *Store) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Exists returns ErrSessionNotFound when sessionID is unknown. Unlike
// GetSession it does not copy the transcript.
func (s *Store) Exists(_ context.Context, sessionID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	return nil
}

// AddMessage appends message to the session transcript.
func (s *Store) AddMessage(_ context.Context, sessionID string, message chat.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.Messages = append(session.Messages, message)
	return nil
}

// UpdateLanguage overwrites the session's detected language. Concurrent
// writers on the same session are last-write-wins.
func (s *Store) UpdateLanguage(_ context.Context, sessionID, language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.DetectedLanguage = language
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep deletes every session created before now minus the TTL and returns
// how many were removed.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	active := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		metrics.SessionsEvicted.Add(float64(removed))
	}
	metrics.SessionsActive.Set(float64(active))
	return removed
}

// Run sweeps on every interval tick until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(s.now()); removed > 0 {
				s.logger.Info().Int("removed", removed).Int("active", s.Len()).Msg("expired sessions swept")
			}
		}
	}
}
