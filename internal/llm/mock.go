package llm

import (
	"context"
	"encoding/json"
	"sync"
)

const mockModelID = "mock"

// MockResponse is one scripted reply for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is the offline tutor backend: a deterministic Provider
// used in tests and when no API key is configured. Replies come from
// a scripted queue in order, and every request is recorded for
// inspection.
type MockProvider struct {
	// GenerateFunc, when set, computes every reply and the scripted
	// queue is ignored.
	GenerateFunc func(req Request) (*Response, error)

	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// NewMockProvider scripts a provider with the given replies.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{queue: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(req)
	}

	next, ok := m.pop()
	if !ok {
		// An exhausted script behaves like a dead upstream so callers
		// exercise their fallback paths.
		return nil, &ErrProviderUnavailable{}
	}
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      mockModelID,
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return mockModelID }

// AddResponse appends one reply to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount reports how many generations have been requested.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockProvider) pop() (MockResponse, bool) {
	if len(m.queue) == 0 {
		return MockResponse{}, false
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	return next, true
}
