// Package docdb defines the document database interfaces for the honeypot
// service. The concrete implementation lives in infrastructure/docdb/mongodb.
package docdb

import (
	"context"

	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// SessionsCollection persists session aggregates, one document per session ID.
type SessionsCollection interface {
	// Get retrieves a session by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, sessionID string) (*models.Session, error)

	// Insert stores a brand-new session. Fails with a conflict error when a
	// document with the same session ID already exists.
	Insert(ctx context.Context, session *models.Session) error

	// Replace overwrites the session document matching both the session ID
	// and the expected version. Returns (false, nil) when no document
	// matched, which signals a lost optimistic-concurrency race.
	Replace(ctx context.Context, session *models.Session, expectedVersion int64) (bool, error)
}

// EventsCollection persists per-turn audit events.
type EventsCollection interface {
	// Insert stores a turn event.
	Insert(ctx context.Context, event *models.TurnEvent) error

	// ListBySession returns events for a session, newest first.
	ListBySession(ctx context.Context, sessionID string, limit, skip int64) ([]*models.TurnEvent, error)
}

// Client is the document database client.
type Client interface {
	// Sessions returns the sessions collection.
	Sessions() SessionsCollection

	// Events returns the turn events collection.
	Events() EventsCollection

	// Ping verifies the database connection.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close(ctx context.Context) error
}
