package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps the PostHog client so callers don't have to care
// whether analytics are configured. A nil/uninitialized wrapper is safe to use.
type PosthogClientWrapper struct {
	client posthog.Client
}

// NewPosthogClient creates a PostHog client wrapper. Returns an uninitialized
// wrapper when no API key is configured.
func NewPosthogClient(apiKey, endpoint string) *PosthogClientWrapper {
	if apiKey == "" {
		return &PosthogClientWrapper{}
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		slog.Warn("Failed to initialize PostHog client, analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	return &PosthogClientWrapper{client: client}
}

// IsInitialized reports whether events will actually be sent.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.client != nil
}

// Enqueue sends a capture event for the given user.
func (w *PosthogClientWrapper) Enqueue(userID, eventName string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	if err := w.client.Enqueue(posthog.Capture{
		DistinctId: userID,
		Event:      eventName,
		Properties: props,
	}); err != nil {
		slog.Warn("Failed to enqueue PostHog event", slog.String("event", eventName), slog.String("error", err.Error()))
	}
}

// Close flushes and shuts down the underlying client.
func (w *PosthogClientWrapper) Close() {
	if w.IsInitialized() {
		_ = w.client.Close()
	}
}
