// Package persona generates the honeypot's replies in character.
package persona

import (
	"context"
	"fmt"

	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
	"github.com/scamtrap/honeypot-service/internal/services/llm"
)

// systemPrompt establishes the victim persona. The persona never reveals that
// the scam has been detected and keeps the counterpart talking.
const systemPrompt = `You are a normal Indian user chatting on your phone.
You are worried and confused about the messages you are receiving.
Never reveal that you suspect a scam or that anything has been detected.
Ask natural clarifying questions to understand the issue.
Keep replies short and realistic, like real text messages.`

// Generator builds the persona transcript and requests the next utterance.
type Generator struct {
	client llm.Client
	model  string
}

// GeneratorConfig holds the configuration for the reply generator.
type GeneratorConfig struct {
	Client llm.Client
	Model  string
}

// NewGenerator creates a new persona reply generator.
func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &Generator{
		client: cfg.Client,
		model:  cfg.Model,
	}, nil
}

// Reply produces the persona's next utterance for the session. The whole
// conversation, including the just-appended incoming message, is mapped onto
// chat roles: the scammer speaks as the user, the persona as the assistant.
// The completion is returned verbatim.
func (g *Generator) Reply(ctx context.Context, session *models.Session) (string, error) {
	messages := make([]llm.ChatMessage, 0, len(session.Conversation)+1)
	messages = append(messages, llm.ChatMessage{
		Role:    llm.RoleSystem,
		Content: systemPrompt,
	})

	for _, m := range session.Conversation {
		role := llm.RoleAssistant
		if m.Sender == models.SenderScammer {
			role = llm.RoleUser
		}
		messages = append(messages, llm.ChatMessage{
			Role:    role,
			Content: m.Text,
		})
	}

	resp, err := g.client.Complete(ctx, &llm.Request{
		Model:    g.model,
		Messages: messages,
	})
	if err != nil {
		return "", domainerrors.NewCollaboratorError("reply generator", err)
	}

	return resp.Text, nil
}
