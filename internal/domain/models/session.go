// Package models contains the domain models for the honeypot service.
package models

import "time"

// Sender identifies who authored a conversation message.
type Sender string

const (
	// SenderScammer is the suspected scammer on the other end of the line.
	SenderScammer Sender = "scammer"
	// SenderAgent is the honeypot persona.
	SenderAgent Sender = "agent"
)

// Message is a single utterance in a session's conversation.
type Message struct {
	Sender    Sender    `json:"sender" bson:"sender"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Intelligence holds the identifiers extracted from scammer messages.
// Each slice behaves as a set: entries are distinct and only ever added.
type Intelligence struct {
	UPIIDs        []string `json:"upiIds" bson:"upiIds"`
	PhoneNumbers  []string `json:"phoneNumbers" bson:"phoneNumbers"`
	PhishingLinks []string `json:"phishingLinks" bson:"phishingLinks"`
}

// NewIntelligence returns an Intelligence with empty (non-nil) collections.
func NewIntelligence() Intelligence {
	return Intelligence{
		UPIIDs:        []string{},
		PhoneNumbers:  []string{},
		PhishingLinks: []string{},
	}
}

// Any reports whether at least one identifier has been collected.
func (i Intelligence) Any() bool {
	return len(i.UPIIDs) > 0 || len(i.PhoneNumbers) > 0 || len(i.PhishingLinks) > 0
}

// Session is the durable record of one engagement with a counterpart.
// The session ID doubles as the document ID.
type Session struct {
	SessionID              string                 `json:"sessionId" bson:"_id"`
	Metadata               map[string]interface{} `json:"metadata" bson:"metadata"`
	Conversation           []Message              `json:"conversation" bson:"conversation"`
	TotalMessagesExchanged int                    `json:"totalMessagesExchanged" bson:"totalMessagesExchanged"`
	ScamDetected           bool                   `json:"scamDetected" bson:"scamDetected"`
	Intelligence           Intelligence           `json:"intelligence" bson:"intelligence"`

	// Version supports optimistic concurrency in the store. Zero means the
	// session has never been persisted. It must survive the JSON round-trip
	// through the cache.
	Version   int64     `json:"version" bson:"version"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// NewSession creates a fresh, unpersisted session. Metadata binds here and is
// never overwritten on later turns.
func NewSession(sessionID string, metadata map[string]interface{}) *Session {
	now := time.Now().UTC()
	return &Session{
		SessionID:    sessionID,
		Metadata:     metadata,
		Conversation: []Message{},
		Intelligence: NewIntelligence(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Append adds a message to the conversation and bumps the exchange counter.
// The counter stays equal to len(Conversation) by construction.
func (s *Session) Append(msg Message) {
	s.Conversation = append(s.Conversation, msg)
	s.TotalMessagesExchanged++
	s.UpdatedAt = time.Now().UTC()
}

// ConfirmScam marks the session as a confirmed scam. The verdict is sticky:
// this is the only writer of ScamDetected and it never clears the flag.
func (s *Session) ConfirmScam() {
	if s.ScamDetected {
		return
	}
	s.ScamDetected = true
	s.UpdatedAt = time.Now().UTC()
}
