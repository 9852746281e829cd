package reading

import (
	"context"
	"io"
	"strings"
	"time"

	"reading-display-api/core/domain"
	"reading-display-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	getCalls int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.getCalls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a mock implementation of the Cache interface backed by a map
// so gating tests can observe real hit/miss behavior.
type mockCache struct {
	values     map[string][]byte
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func newMockCache() *mockCache {
	return &mockCache{values: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	m.values[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	delete(m.values, key)
	return nil
}

// mockChallenge is a mock implementation of the ChallengeResolver interface
type mockChallenge struct {
	resolveFunc     func(ctx context.Context, entries []*domain.FeedEntry) (*domain.ChallengeState, bool)
	invalidateCalls int
	resolveCalls    int
}

func (m *mockChallenge) Resolve(ctx context.Context, entries []*domain.FeedEntry) (*domain.ChallengeState, bool) {
	m.resolveCalls++
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, entries)
	}
	return nil, false
}

func (m *mockChallenge) Invalidate(ctx context.Context) error {
	m.invalidateCalls++
	return nil
}
