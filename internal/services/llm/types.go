// Package llm provides the language-model collaborator client.
package llm

import "context"

// Chat roles used when building completion transcripts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single role-tagged entry in a completion transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a chat completion request.
type Request struct {
	Model    string
	Messages []ChatMessage
}

// Response is a chat completion response.
type Response struct {
	Text  string
	Model string
}

// Client sends chat completion requests to a language-model backend. It is
// constructed once at startup and injected into every consumer, so stubbing
// it in tests needs no network.
type Client interface {
	// Complete sends the transcript and returns the single completion.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Close releases any resources held by the client.
	Close() error
}
