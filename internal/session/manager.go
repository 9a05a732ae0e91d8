package session

import (
	"sync"
	"time"

	"easytocook/internal/recipe"
)

// Session holds one operator's in-flight ingestion state. Nothing here is
// shared between operators.
type Session struct {
	OperatorID      string
	PendingDraft    *recipe.Draft
	AwaitingText    bool
	AwaitingCaption bool
	InstagramURL    string
	UpdatedAt       time.Time
}

// Manager hands out per-operator session state guarded by a single mutex.
// All reads and writes go through the manager so they happen under its lock;
// stale sessions expire after the TTL so an abandoned import can't resurface
// days later.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

const DefaultTTL = 30 * time.Minute

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// get returns the operator's session, creating a fresh one if none exists or
// the existing one has expired. The caller must hold the mutex.
func (m *Manager) get(operatorID string) *Session {
	s, ok := m.sessions[operatorID]
	if !ok || m.now().Sub(s.UpdatedAt) > m.ttl {
		s = &Session{OperatorID: operatorID}
		m.sessions[operatorID] = s
	}
	s.UpdatedAt = m.now()
	return s
}

// SetPending stores the operator's pending draft and clears any
// awaiting-input flags from an earlier pipeline step.
func (m *Manager) SetPending(operatorID string, d *recipe.Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(operatorID)
	s.PendingDraft = d
	s.AwaitingText = false
	s.AwaitingCaption = false
}

// Pending returns the operator's pending draft, or nil when nothing is in
// flight.
func (m *Manager) Pending(operatorID string) *recipe.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(operatorID).PendingDraft
}

// ClearPending drops the pending draft but keeps the session.
func (m *Manager) ClearPending(operatorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(operatorID).PendingDraft = nil
}

// Reset discards the operator's session entirely.
func (m *Manager) Reset(operatorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, operatorID)
}

// Sweep removes all expired sessions and returns how many were dropped.
// Meant to run periodically from the server loop.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	cutoff := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
