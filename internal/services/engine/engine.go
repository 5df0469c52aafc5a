// Package engine implements the per-session conversation state machine.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
	"github.com/scamtrap/honeypot-service/internal/services/intel"
)

// DefaultMaxMessages is the exchange count at which the stop condition trips.
const DefaultMaxMessages = 15

// DefaultReply is surfaced when no persona reply was generated.
const DefaultReply = "Okay."

// SessionStore loads and persists session aggregates.
type SessionStore interface {
	// LoadOrCreate returns the stored session or a fresh in-memory one.
	// The boolean reports whether the session was created.
	LoadOrCreate(ctx context.Context, sessionID string, metadata map[string]interface{}) (*models.Session, bool, error)

	// Save persists the session in a single durable write.
	Save(ctx context.Context, session *models.Session) error

	// RecordEvent stores a per-turn audit event.
	RecordEvent(ctx context.Context, event *models.TurnEvent) error
}

// ClassifierGate decides the session's scam verdict for the latest message.
type ClassifierGate interface {
	Classify(ctx context.Context, session *models.Session, latest string) (bool, error)
}

// ReplyGenerator produces the persona's next utterance.
type ReplyGenerator interface {
	Reply(ctx context.Context, session *models.Session) (string, error)
}

// TurnInput is one incoming message addressed to a session.
type TurnInput struct {
	SessionID string
	Message   models.Message
	// Metadata is bound to the session only when this turn creates it.
	Metadata map[string]interface{}
}

// TurnResult is the outward-facing outcome of one turn.
type TurnResult struct {
	SessionID              string
	Reply                  string
	ScamDetected           bool
	TotalMessagesExchanged int
	Intelligence           models.Intelligence
	Metadata               map[string]interface{}
	// ShouldStop signals that engagement has gathered enough, or run long
	// enough. It is advisory: the caller decides what to do with it.
	ShouldStop bool
}

// Config holds the engine's collaborators and engagement policy.
type Config struct {
	Store     SessionStore
	Gate      ClassifierGate
	Generator ReplyGenerator

	// MaxMessages defaults to DefaultMaxMessages.
	MaxMessages int
	// DefaultReply defaults to DefaultReply.
	DefaultReply string
	// StopReplyEnabled substitutes the surfaced reply once ShouldStop holds.
	StopReplyEnabled bool
	// StopReply is the substitute reply text.
	StopReply string

	// Logger defaults to the global logger when nil.
	Logger *zerolog.Logger
}

// Engine orchestrates one turn: load, append, classify, reply, extract,
// evaluate the stop condition, persist. All mutation happens on the in-memory
// session; the single Save at the end is the only durable write, so a failed
// turn leaves the prior durable state untouched.
type Engine struct {
	store     SessionStore
	gate      ClassifierGate
	generator ReplyGenerator

	maxMessages      int
	defaultReply     string
	stopReplyEnabled bool
	stopReply        string

	logger zerolog.Logger
}

// New creates a new engine.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if cfg.Gate == nil {
		return nil, fmt.Errorf("classifier gate is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("reply generator is required")
	}

	maxMessages := cfg.MaxMessages
	if maxMessages == 0 {
		maxMessages = DefaultMaxMessages
	}

	defaultReply := cfg.DefaultReply
	if defaultReply == "" {
		defaultReply = DefaultReply
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Engine{
		store:            cfg.Store,
		gate:             cfg.Gate,
		generator:        cfg.Generator,
		maxMessages:      maxMessages,
		defaultReply:     defaultReply,
		stopReplyEnabled: cfg.StopReplyEnabled,
		stopReply:        cfg.StopReply,
		logger:           logger,
	}, nil
}

// HandleTurn processes one incoming message and returns the turn result.
func (e *Engine) HandleTurn(ctx context.Context, in *TurnInput) (*TurnResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	session, created, err := e.store.LoadOrCreate(ctx, in.SessionID, in.Metadata)
	if err != nil {
		return nil, err
	}

	session.Append(in.Message)

	scamDetected, err := e.gate.Classify(ctx, session, in.Message.Text)
	if err != nil {
		return nil, err
	}
	if scamDetected {
		session.ConfirmScam()
	}

	reply := e.defaultReply
	replyGenerated := false
	if session.ScamDetected {
		reply, err = e.generator.Reply(ctx, session)
		if err != nil {
			return nil, err
		}
		session.Append(models.Message{
			Sender:    models.SenderAgent,
			Text:      reply,
			Timestamp: time.Now().UTC(),
		})
		replyGenerated = true
	}

	// Extraction scope is the incoming message only; history was already
	// scanned on the turns that appended it.
	findings := intel.Extract(in.Message.Text)
	intelAdded := findings.MergeInto(&session.Intelligence)

	shouldStop := session.ScamDetected &&
		(session.TotalMessagesExchanged >= e.maxMessages || session.Intelligence.Any())

	// Substitution touches only the surfaced reply; the generated utterance
	// stays in the transcript.
	if shouldStop && e.stopReplyEnabled {
		reply = e.stopReply
	}

	if err := e.store.Save(ctx, session); err != nil {
		return nil, err
	}

	event := models.NewTurnEvent(session.SessionID, session.TotalMessagesExchanged,
		session.ScamDetected, replyGenerated, intelAdded, shouldStop)
	if err := e.store.RecordEvent(ctx, event); err != nil {
		e.logger.Warn().Err(err).Str("session_id", session.SessionID).Msg("turn event not recorded")
	}

	e.logger.Info().
		Str("session_id", session.SessionID).
		Bool("created", created).
		Bool("scam_detected", session.ScamDetected).
		Bool("reply_generated", replyGenerated).
		Int("total_messages", session.TotalMessagesExchanged).
		Int("intel_added", intelAdded).
		Bool("should_stop", shouldStop).
		Msg("turn completed")

	return &TurnResult{
		SessionID:              session.SessionID,
		Reply:                  reply,
		ScamDetected:           session.ScamDetected,
		TotalMessagesExchanged: session.TotalMessagesExchanged,
		Intelligence:           session.Intelligence,
		Metadata:               session.Metadata,
		ShouldStop:             shouldStop,
	}, nil
}

// validateInput rejects turns with missing fields before any work happens.
func validateInput(in *TurnInput) error {
	if in == nil {
		return domainerrors.NewValidationError("turn input is required", "")
	}
	if in.SessionID == "" {
		return domainerrors.NewValidationError("sessionId is required", "")
	}
	if in.Message.Sender == "" {
		return domainerrors.NewValidationError("message sender is required", "")
	}
	if in.Message.Text == "" {
		return domainerrors.NewValidationError("message text is required", "")
	}
	if in.Message.Timestamp.IsZero() {
		return domainerrors.NewValidationError("message timestamp is required", "")
	}
	return nil
}
