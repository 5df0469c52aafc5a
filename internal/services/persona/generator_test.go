package persona

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
	"github.com/scamtrap/honeypot-service/internal/services/llm"
	"github.com/scamtrap/honeypot-service/tests/mocks"
)

func TestNewGenerator_Validation(t *testing.T) {
	client := &mocks.MockLLMClient{}

	_, err := NewGenerator(nil)
	assert.Error(t, err)

	_, err = NewGenerator(&GeneratorConfig{Model: "test-model"})
	assert.Error(t, err)

	_, err = NewGenerator(&GeneratorConfig{Client: client})
	assert.Error(t, err)

	gen, err := NewGenerator(&GeneratorConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestReply_MapsConversationToChatRoles(t *testing.T) {
	// Arrange
	now := time.Now().UTC()
	session := models.NewSession("session-1", nil)
	session.Append(models.Message{Sender: models.SenderScammer, Text: "Your account is blocked", Timestamp: now})
	session.Append(models.Message{Sender: models.SenderAgent, Text: "Oh no, which account?", Timestamp: now})
	session.Append(models.Message{Sender: models.SenderScammer, Text: "Pay Rs 500 to unblock", Timestamp: now})

	var captured *llm.Request
	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req *llm.Request) bool {
		captured = req
		return true
	})).Return(&llm.Response{Text: "Why do I need to pay?"}, nil)

	gen, err := NewGenerator(&GeneratorConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	// Act
	reply, err := gen.Reply(context.Background(), session)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Why do I need to pay?", reply)

	require.NotNil(t, captured)
	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, llm.RoleSystem, captured.Messages[0].Role)
	assert.Equal(t, llm.RoleUser, captured.Messages[1].Role)
	assert.Equal(t, "Your account is blocked", captured.Messages[1].Content)
	assert.Equal(t, llm.RoleAssistant, captured.Messages[2].Role)
	assert.Equal(t, llm.RoleUser, captured.Messages[3].Role)
	assert.Equal(t, "Pay Rs 500 to unblock", captured.Messages[3].Content)
}

func TestReply_ReturnsCompletionVerbatim(t *testing.T) {
	session := models.NewSession("session-1", nil)
	session.Append(models.Message{Sender: models.SenderScammer, Text: "share OTP", Timestamp: time.Now().UTC()})

	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.Anything).Return(&llm.Response{Text: "  Which OTP do you mean?  "}, nil)

	gen, err := NewGenerator(&GeneratorConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	reply, err := gen.Reply(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "  Which OTP do you mean?  ", reply)
}

func TestReply_ClientFailureIsCollaboratorError(t *testing.T) {
	session := models.NewSession("session-1", nil)
	session.Append(models.Message{Sender: models.SenderScammer, Text: "share OTP", Timestamp: time.Now().UTC()})

	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	gen, err := NewGenerator(&GeneratorConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	reply, err := gen.Reply(context.Background(), session)

	require.Error(t, err)
	assert.Empty(t, reply)

	domainErr, ok := domainerrors.GetDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrCodeServiceUnavailable, domainErr.Code)
}
