package detect

import (
	"context"
	"fmt"
	"strings"

	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
	"github.com/scamtrap/honeypot-service/internal/services/llm"
)

// classifierPrompt instructs the model to return a bare verdict.
const classifierPrompt = `You are a scam detection system.
You will be given the latest message from an unknown sender and the conversation so far.
Decide whether the sender is attempting a scam (phishing, fake fees, payment fraud, impersonation of banks or authorities, lottery or job fraud).
Answer with a single word: YES or NO.`

// Gate is the two-stage scam classifier: a free local heuristic followed by a
// conditional AI confirmation. The AI call is skipped entirely when the
// heuristic does not fire, and when the session verdict is already sticky.
type Gate struct {
	heuristic Heuristic
	client    llm.Client
	model     string
}

// GateConfig holds the configuration for the classifier gate.
type GateConfig struct {
	// Heuristic is the injectable pre-filter. Defaults to DefaultHeuristic.
	Heuristic Heuristic
	Client    llm.Client
	Model     string
}

// NewGate creates a new classifier gate.
func NewGate(cfg *GateConfig) (*Gate, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	heuristic := cfg.Heuristic
	if heuristic == nil {
		heuristic = DefaultHeuristic
	}

	return &Gate{
		heuristic: heuristic,
		client:    cfg.Client,
		model:     cfg.Model,
	}, nil
}

// Classify returns the session's updated scam verdict for the latest message.
// A true verdict is sticky: once a session is confirmed, the gate never runs
// again for it. A heuristic hit that the AI does not confirm leaves the
// verdict false and the gate re-evaluates on the next turn.
func (g *Gate) Classify(ctx context.Context, session *models.Session, latest string) (bool, error) {
	if session.ScamDetected {
		return true, nil
	}

	if !g.heuristic(latest) {
		return false, nil
	}

	resp, err := g.client.Complete(ctx, &llm.Request{
		Model: g.model,
		Messages: []llm.ChatMessage{
			{Role: llm.RoleSystem, Content: classifierPrompt},
			{Role: llm.RoleUser, Content: buildClassifierInput(session, latest)},
		},
	})
	if err != nil {
		return false, domainerrors.NewCollaboratorError("scam classifier", err)
	}

	return parseVerdict(resp.Text), nil
}

// buildClassifierInput renders the latest message plus the transcript so far.
func buildClassifierInput(session *models.Session, latest string) string {
	var b strings.Builder
	b.WriteString("Latest message:\n")
	b.WriteString(latest)
	b.WriteString("\n\nConversation so far:\n")
	for _, m := range session.Conversation {
		b.WriteString(string(m.Sender))
		b.WriteString(": ")
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// parseVerdict reads a YES/NO answer, tolerating surrounding prose.
func parseVerdict(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if strings.HasPrefix(upper, "YES") {
		return true
	}
	return strings.Contains(upper, "YES")
}
