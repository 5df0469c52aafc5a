// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// MockSessionStore is a mock implementation of engine.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

// LoadOrCreate returns the stored session or a fresh in-memory one.
func (m *MockSessionStore) LoadOrCreate(ctx context.Context, sessionID string, metadata map[string]interface{}) (*models.Session, bool, error) {
	args := m.Called(ctx, sessionID, metadata)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Session), args.Bool(1), args.Error(2)
}

// Save persists the session.
func (m *MockSessionStore) Save(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// RecordEvent stores a per-turn audit event.
func (m *MockSessionStore) RecordEvent(ctx context.Context, event *models.TurnEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockClassifierGate is a mock implementation of engine.ClassifierGate.
type MockClassifierGate struct {
	mock.Mock
}

// Classify decides the session's scam verdict for the latest message.
func (m *MockClassifierGate) Classify(ctx context.Context, session *models.Session, latest string) (bool, error) {
	args := m.Called(ctx, session, latest)
	return args.Bool(0), args.Error(1)
}

// MockReplyGenerator is a mock implementation of engine.ReplyGenerator.
type MockReplyGenerator struct {
	mock.Mock
}

// Reply produces the persona's next utterance.
func (m *MockReplyGenerator) Reply(ctx context.Context, session *models.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}
