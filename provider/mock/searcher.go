package mock

import (
	"context"
	"sync"

	"github.com/poiesic/vidsift/core"
)

// MockSearcher is a test double for provider.Searcher.
// It allows custom behavior injection via function fields and records
// enough about the call pattern to assert on concurrency.
type MockSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, Search returns an empty batch.
	SearchFunc func(ctx context.Context, term string, limit int) ([]core.Video, error)

	mu          sync.Mutex
	calls       int
	terms       []string
	inFlight    int
	maxInFlight int
}

// NewMockSearcher creates a mock searcher with default behavior.
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{}
}

// Search records the call, tracks how many calls are in flight at once,
// and delegates to SearchFunc when set.
func (m *MockSearcher) Search(ctx context.Context, term string, limit int) ([]core.Video, error) {
	m.mu.Lock()
	m.calls++
	m.terms = append(m.terms, term)
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, limit)
	}
	return nil, nil
}

// CallCount returns the number of times Search was called.
func (m *MockSearcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Terms returns the search terms submitted, in call order.
func (m *MockSearcher) Terms() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// MaxInFlight returns the highest number of Search calls that were ever
// running at the same instant.
func (m *MockSearcher) MaxInFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxInFlight
}

// Reset clears the recorded calls and custom function.
func (m *MockSearcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = 0
	m.terms = nil
	m.inFlight = 0
	m.maxInFlight = 0
	m.SearchFunc = nil
}
