package challenge

import (
	"context"
	"time"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockProfileSource is a mock implementation of the ProfileSource interface
type mockProfileSource struct {
	textFunc func(ctx context.Context) (string, error)
	calls    int
}

func (m *mockProfileSource) ProfileText(ctx context.Context) (string, error) {
	m.calls++
	if m.textFunc != nil {
		return m.textFunc(ctx)
	}
	return "", nil
}
