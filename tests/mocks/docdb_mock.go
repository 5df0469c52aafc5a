// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/scamtrap/honeypot-service/internal/core/docdb"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// MockSessionsCollection is a mock implementation of docdb.SessionsCollection.
type MockSessionsCollection struct {
	mock.Mock
}

// Get retrieves a session by ID.
func (m *MockSessionsCollection) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

// Insert stores a brand-new session.
func (m *MockSessionsCollection) Insert(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// Replace overwrites the session document matching the expected version.
func (m *MockSessionsCollection) Replace(ctx context.Context, session *models.Session, expectedVersion int64) (bool, error) {
	args := m.Called(ctx, session, expectedVersion)
	return args.Bool(0), args.Error(1)
}

// MockEventsCollection is a mock implementation of docdb.EventsCollection.
type MockEventsCollection struct {
	mock.Mock
}

// Insert stores a turn event.
func (m *MockEventsCollection) Insert(ctx context.Context, event *models.TurnEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// ListBySession returns events for a session.
func (m *MockEventsCollection) ListBySession(ctx context.Context, sessionID string, limit, skip int64) ([]*models.TurnEvent, error) {
	args := m.Called(ctx, sessionID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TurnEvent), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
type MockDocDBClient struct {
	mock.Mock
	SessionsCollection *MockSessionsCollection
	EventsCollection   *MockEventsCollection
}

// NewMockDocDBClient creates a new MockDocDBClient with mock collections.
func NewMockDocDBClient() *MockDocDBClient {
	return &MockDocDBClient{
		SessionsCollection: &MockSessionsCollection{},
		EventsCollection:   &MockEventsCollection{},
	}
}

// Sessions returns the sessions collection.
func (m *MockDocDBClient) Sessions() docdb.SessionsCollection {
	return m.SessionsCollection
}

// Events returns the events collection.
func (m *MockDocDBClient) Events() docdb.EventsCollection {
	return m.EventsCollection
}

// Ping verifies the database connection.
func (m *MockDocDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the database connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
