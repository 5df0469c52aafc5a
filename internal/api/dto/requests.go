// Package dto defines the request and response shapes of the API.
package dto

import "time"

// TurnMessage is the incoming message within a turn request.
type TurnMessage struct {
	Sender    string    `json:"sender" binding:"required,oneof=scammer agent"`
	Text      string    `json:"text" binding:"required"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

// TurnRequest is the body of a honeypot turn.
type TurnRequest struct {
	SessionID string      `json:"sessionId" binding:"required"`
	Message   TurnMessage `json:"message" binding:"required"`

	// ConversationHistory is advisory only; the server-side session state
	// is authoritative and the field is accepted but not consulted.
	ConversationHistory []TurnMessage `json:"conversationHistory"`

	// Metadata binds to the session only when this turn creates it.
	Metadata map[string]interface{} `json:"metadata"`
}

// ListEventsRequest holds the query parameters for listing turn events.
type ListEventsRequest struct {
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=100"`
	Skip  int64 `form:"skip" binding:"omitempty,min=0"`
}
