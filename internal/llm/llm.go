package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-model providers. Implementations make a single
// attempt per call; retry policy belongs to callers, and none is defined here.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// ErrNotConfigured is returned when provider credentials are missing.
var ErrNotConfigured = errors.New("llm provider not configured")

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}

// Close is a no-op.
func (PlaceholderClient) Close() error { return nil }
