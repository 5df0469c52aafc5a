package detect

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

func newTestSession() *models.Session {
	session := models.NewSession("session-1", nil)
	session.Append(models.Message{
		Sender:    models.SenderScammer,
		Text:      "Your KYC will expire today, share OTP",
		Timestamp: time.Now().UTC(),
	})
	return session
}

func TestNewGate_Validation(t *testing.T) {
	client := &mocks.MockLLMClient{}

	_, err := NewGate(nil)
	assert.Error(t, err)

	_, err = NewGate(&GateConfig{Model: "test-model"})
	assert.Error(t, err)

	_, err = NewGate(&GateConfig{Client: client})
	assert.Error(t, err)

	gate, err := NewGate(&GateConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)
	assert.NotNil(t, gate)
}

func TestClassify_StickyVerdictSkipsEverything(t *testing.T) {
	// Arrange
	client := &mocks.MockLLMClient{}
	gate, err := NewGate(&GateConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	session := newTestSession()
	session.ConfirmScam()

	// Act
	detected, err := gate.Classify(context.Background(), session, "harmless text")

	// Assert
	require.NoError(t, err)
	assert.True(t, detected)
	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestClassify_HeuristicMissSkipsAI(t *testing.T) {
	client := &mocks.MockLLMClient{}
	gate, err := NewGate(&GateConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	session := models.NewSession("session-1", nil)

	detected, err := gate.Classify(context.Background(), session, "see you at dinner tonight")

	require.NoError(t, err)
	assert.False(t, detected)
	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestClassify_AIConfirms(t *testing.T) {
	// Arrange
	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req *llm.Request) bool {
		return req.Model == "test-model" &&
			len(req.Messages) == 2 &&
			req.Messages[0].Role == llm.RoleSystem
	})).Return(&llm.Response{Text: "YES"}, nil)

	gate, err := NewGate(&GateConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	session := newTestSession()

	// Act
	detected, err := gate.Classify(context.Background(), session, "Your KYC will expire today, share OTP")

	// Assert
	require.NoError(t, err)
	assert.True(t, detected)
	client.AssertExpectations(t)
}

func TestClassify_AIDeclines(t *testing.T) {
	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.Anything).Return(&llm.Response{Text: "NO"}, nil)

	gate, err := NewGate(&GateConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	session := newTestSession()

	detected, err := gate.Classify(context.Background(), session, "please send the refund form")

	require.NoError(t, err)
	assert.False(t, detected)
}

func TestClassify_AIFailureIsCollaboratorError(t *testing.T) {
	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	gate, err := NewGate(&GateConfig{Client: client, Model: "test-model"})
	require.NoError(t, err)

	session := newTestSession()

	detected, err := gate.Classify(context.Background(), session, "urgent: verify your account")

	require.Error(t, err)
	assert.False(t, detected)

	domainErr, ok := domainerrors.GetDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrCodeServiceUnavailable, domainErr.Code)
}

func TestClassify_InjectedHeuristic(t *testing.T) {
	client := &mocks.MockLLMClient{}
	client.On("Complete", mock.Anything, mock.Anything).Return(&llm.Response{Text: "yes, this is a scam"}, nil)

	always := func(string) bool { return true }
	gate, err := NewGate(&GateConfig{Heuristic: always, Client: client, Model: "test-model"})
	require.NoError(t, err)

	detected, err := gate.Classify(context.Background(), models.NewSession("s", nil), "anything")

	require.NoError(t, err)
	assert.True(t, detected)
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"YES", true},
		{"yes", true},
		{"  Yes.  ", true},
		{"The answer is YES", true},
		{"NO", false},
		{"no", false},
		{"I cannot tell", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseVerdict(tt.text), "verdict for %q", tt.text)
	}
}
