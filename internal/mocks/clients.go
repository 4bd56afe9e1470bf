package mocks

import (
	"context"
	"sync"

	"github.com/azpdscc/website-api/internal/mailer"
)

// MockAIClient is a scriptable implementation of ai.Client. Responses
// are consumed in order; once exhausted the last one repeats.
type MockAIClient struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Calls     int

	SystemPrompts []string
	UserPrompts   []string
}

func NewMockAIClient(responses ...string) *MockAIClient {
	return &MockAIClient{Responses: responses}
}

func (m *MockAIClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.SystemPrompts = append(m.SystemPrompts, systemPrompt)
	m.UserPrompts = append(m.UserPrompts, userPrompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// MockMailer records every message handed to Send.
type MockMailer struct {
	mu   sync.Mutex
	Sent []mailer.Message
	Err  error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

func (m *MockMailer) SentTo(addr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.Sent {
		if msg.To == addr {
			n++
		}
	}
	return n
}
