// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/scamtrap/honeypot-service/internal/services/llm"
)

// MockLLMClient is a mock implementation of llm.Client.
type MockLLMClient struct {
	mock.Mock
}

// Complete sends the transcript and returns the single completion.
func (m *MockLLMClient) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// Close releases any resources held by the client.
func (m *MockLLMClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
