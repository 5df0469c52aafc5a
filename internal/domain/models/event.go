// Package models contains the domain models for the honeypot service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TurnEvent is the audit record written after each successful turn. Events are
// best-effort: a failed insert never fails the turn that produced it.
type TurnEvent struct {
	ID             string    `json:"id" bson:"_id"`
	SessionID      string    `json:"sessionId" bson:"sessionId"`
	Turn           int       `json:"turn" bson:"turn"`
	ScamDetected   bool      `json:"scamDetected" bson:"scamDetected"`
	ReplyGenerated bool      `json:"replyGenerated" bson:"replyGenerated"`
	IntelAdded     int       `json:"intelAdded" bson:"intelAdded"`
	ShouldStop     bool      `json:"shouldStop" bson:"shouldStop"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// NewTurnEvent creates a turn event for the given session state.
func NewTurnEvent(sessionID string, turn int, scamDetected, replyGenerated bool, intelAdded int, shouldStop bool) *TurnEvent {
	return &TurnEvent{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		Turn:           turn,
		ScamDetected:   scamDetected,
		ReplyGenerated: replyGenerated,
		IntelAdded:     intelAdded,
		ShouldStop:     shouldStop,
		CreatedAt:      time.Now().UTC(),
	}
}
