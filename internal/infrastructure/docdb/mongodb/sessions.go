// Package mongodb provides the sessions collection implementation.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// SessionsCollectionName is the name of the sessions collection.
const SessionsCollectionName = "sessions"

// SessionsCollection implements docdb.SessionsCollection for MongoDB.
type SessionsCollection struct {
	collection *mongo.Collection
}

// NewSessionsCollection creates a new sessions collection wrapper.
func NewSessionsCollection(db *mongo.Database) *SessionsCollection {
	return &SessionsCollection{
		collection: db.Collection(SessionsCollectionName),
	}
}

// Get retrieves a session by ID.
func (c *SessionsCollection) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	err := c.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Insert stores a brand-new session document.
func (c *SessionsCollection) Insert(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now().UTC()

	_, err := c.collection.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.NewConflictError("session already exists", session.SessionID)
		}
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// Replace overwrites the session document matching the session ID and the
// expected version. A miss means another writer got there first.
func (c *SessionsCollection) Replace(ctx context.Context, session *models.Session, expectedVersion int64) (bool, error) {
	session.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": session.SessionID, "version": expectedVersion}
	result, err := c.collection.ReplaceOne(ctx, filter, session)
	if err != nil {
		return false, fmt.Errorf("failed to replace session: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// EnsureIndexes creates necessary indexes for the sessions collection.
func (c *SessionsCollection) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "scamDetected", Value: 1}},
			Options: options.Index().SetName("idx_scam_detected"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	_, err := c.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create sessions indexes: %w", err)
	}
	return nil
}
