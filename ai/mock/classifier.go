package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/vidsift/ai"
	"github.com/poiesic/vidsift/core"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses a simple title heuristic.
	ClassifyFunc func(ctx context.Context, video core.Video, subject string) (ai.Verdict, error)

	mu        sync.Mutex
	callCount int
	seen      []string
}

// NewMockClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions via CallCount()
// and SeenIDs().
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify records the call and delegates to ClassifyFunc when set.
// Default behavior: valid when the lower-cased title contains the
// lower-cased subject.
func (m *MockClassifier) Classify(ctx context.Context, video core.Video, subject string) (ai.Verdict, error) {
	m.mu.Lock()
	m.callCount++
	m.seen = append(m.seen, video.ID)
	m.mu.Unlock()

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, video, subject)
	}

	if strings.Contains(strings.ToLower(video.Title), strings.ToLower(subject)) {
		return ai.Verdict{Valid: true, Reason: "ok"}, nil
	}
	return ai.Verdict{Valid: false, Reason: "not primary source"}, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// SeenIDs returns the video ids submitted for classification, in call order.
func (m *MockClassifier) SeenIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.seen))
	copy(out, m.seen)
	return out
}

// Reset clears the recorded calls and custom function.
func (m *MockClassifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.seen = nil
	m.ClassifyFunc = nil
}
