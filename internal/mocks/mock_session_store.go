package mocks

import (
	"context"

	"github.com/you/rentalfront/domain"
)

// MockSessionStore implements domain.SessionStore for testing
type MockSessionStore struct {
	SaveFunc  func(ctx context.Context, session *domain.Session) error
	LoadFunc  func(ctx context.Context, sessionID string) (*domain.Session, error)
	ClearFunc func(ctx context.Context, sessionID string) error
}

// NewMockSessionStore creates a new MockSessionStore with default behaviors
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Save persists a session
func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// Load restores a session by ID
func (m *MockSessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, sessionID)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Clear removes a session
func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionStore = (*MockSessionStore)(nil)

// MemorySessionStore is an in-memory domain.SessionStore for tests that
// need real save/load/clear semantics without Redis.
type MemorySessionStore struct {
	sessions map[string]domain.Session
}

// NewMemorySessionStore creates an empty in-memory store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.Session)}
}

// Save stores a copy of the session
func (m *MemorySessionStore) Save(ctx context.Context, session *domain.Session) error {
	m.sessions[session.ID] = *session
	return nil
}

// Load returns a copy of the stored session
func (m *MemorySessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := s
	return &copied, nil
}

// Clear removes the session if present
func (m *MemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// Len reports the number of stored sessions
func (m *MemorySessionStore) Len() int { return len(m.sessions) }

var _ domain.SessionStore = (*MemorySessionStore)(nil)
