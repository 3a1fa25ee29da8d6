// Package session keeps one UI state controller per visitor.
//
// A controller is single-owner, so the store serialises every access to a
// given visitor's controller. Sessions live in memory and expire after an
// idle timeout; nothing survives a restart.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pbhende/portfolio/internal/platform/id"
	"github.com/pbhende/portfolio/internal/platform/timeouts"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/uistate"
)

type entry struct {
	mu         sync.Mutex
	controller *uistate.Controller
	lastSeen   time.Time
}

// Store maps session ids to controllers over one shared catalog.
type Store struct {
	catalog *project.Catalog
	idle    time.Duration
	now     func() time.Time
	newID   func() (string, error)

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewStore returns an empty store. A non-positive idle uses timeouts.SessionIdle.
func NewStore(catalog *project.Catalog, idle time.Duration) *Store {
	if idle <= 0 {
		idle = timeouts.SessionIdle
	}
	return &Store{
		catalog:  catalog,
		idle:     idle,
		now:      time.Now,
		newID:    id.NewID,
		sessions: make(map[string]*entry),
	}
}

// IdleTimeout returns how long a session survives without use.
func (s *Store) IdleTimeout() time.Duration {
	if s == nil {
		return 0
	}
	return s.idle
}

// With runs fn against the controller for sessionID while holding that
// session's lock. An unknown or expired id starts a fresh session; the
// returned id is the one now in use.
func (s *Store) With(sessionID string, fn func(*uistate.Controller)) (string, error) {
	if s == nil {
		return "", errors.New("session store is nil")
	}
	if fn == nil {
		return "", errors.New("session callback is required")
	}
	sessionID, current, err := s.acquire(sessionID)
	if err != nil {
		return "", err
	}
	current.mu.Lock()
	defer current.mu.Unlock()
	fn(current.controller)
	return sessionID, nil
}

// Peek returns the state for sessionID without creating a session.
func (s *Store) Peek(sessionID string) (uistate.State, bool) {
	if s == nil {
		return uistate.State{}, false
	}
	s.mu.Lock()
	current, ok := s.sessions[sessionID]
	if ok && s.expired(current, s.now()) {
		delete(s.sessions, sessionID)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return uistate.State{}, false
	}
	current.mu.Lock()
	defer current.mu.Unlock()
	return current.controller.State(), true
}

func (s *Store) acquire(sessionID string) (string, *entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if current, ok := s.sessions[sessionID]; ok && sessionID != "" {
		if !s.expired(current, now) {
			current.lastSeen = now
			return sessionID, current, nil
		}
		delete(s.sessions, sessionID)
	}

	fresh, err := s.newID()
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}
	current := &entry{controller: uistate.NewController(s.catalog), lastSeen: now}
	s.sessions[fresh] = current
	return fresh, current, nil
}

// expired reads lastSeen, which is guarded by s.mu.
func (s *Store) expired(current *entry, now time.Time) bool {
	return now.Sub(current.lastSeen) > s.idle
}

// Delete drops a session.
func (s *Store) Delete(sessionID string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len returns the number of sessions held, expired or not.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for key, current := range s.sessions {
		if s.expired(current, now) {
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if s == nil || ctx == nil {
		return
	}
	if interval <= 0 {
		interval = timeouts.SessionSweep
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				log.Printf("session sweep removed=%d remaining=%d", removed, s.Len())
			}
		}
	}
}
