// Package mongodb provides the turn events collection implementation.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scamtrap/honeypot-service/internal/domain/models"
)

// EventsCollectionName is the name of the turn events collection.
const EventsCollectionName = "turn_events"

// EventsCollection implements docdb.EventsCollection for MongoDB.
type EventsCollection struct {
	collection *mongo.Collection
}

// NewEventsCollection creates a new events collection wrapper.
func NewEventsCollection(db *mongo.Database) *EventsCollection {
	return &EventsCollection{
		collection: db.Collection(EventsCollectionName),
	}
}

// Insert stores a turn event.
func (c *EventsCollection) Insert(ctx context.Context, event *models.TurnEvent) error {
	if event.ID == "" {
		return fmt.Errorf("event ID is required")
	}

	_, err := c.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to insert turn event: %w", err)
	}
	return nil
}

// ListBySession returns events for a session, newest first.
func (c *EventsCollection) ListBySession(ctx context.Context, sessionID string, limit, skip int64) ([]*models.TurnEvent, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(limit)
	}
	if skip > 0 {
		findOpts.SetSkip(skip)
	}

	cursor, err := c.collection.Find(ctx, bson.M{"sessionId": sessionID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list turn events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*models.TurnEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode turn events: %w", err)
	}

	return events, nil
}

// EnsureIndexes creates necessary indexes for the events collection.
func (c *EventsCollection) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "sessionId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_session_created"),
		},
	}

	_, err := c.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create events indexes: %w", err)
	}
	return nil
}
