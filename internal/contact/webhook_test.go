package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookRelaySend(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay := NewWebhookRelay(srv.URL, srv.Client())
	require.True(t, relay.Configured())

	payload := NewWebhookPayload(Submission{Name: "A", Email: "a@b.se", Message: "m"}, "1.2.3.4",
		time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("CET", 3600)))
	require.NoError(t, relay.Send(context.Background(), payload))

	assert.Equal(t, "2025-01-02T02:04:05.006Z", got.SubmittedAt)
	assert.Equal(t, DefaultPhone, got.Phone)
	assert.Equal(t, "1.2.3.4", got.IP)
}

func TestWebhookRelayNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := NewWebhookRelay(srv.URL, srv.Client()).Send(context.Background(), WebhookPayload{})

	var relayErr *RelayError
	require.True(t, errors.As(err, &relayErr))
	assert.Equal(t, http.StatusUnauthorized, relayErr.StatusCode)
	assert.Equal(t, "bad token", relayErr.Body)
}

func TestWebhookRelayNotConfigured(t *testing.T) {
	relay := NewWebhookRelay("  ", nil)
	assert.False(t, relay.Configured())
	assert.ErrorIs(t, relay.Send(context.Background(), WebhookPayload{}), ErrWebhookNotConfigured)
}

func TestWebhookRelayTransportErrorHidesURL(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	secretURL := srv.URL + "/hooks/secret-token"
	srv.Close()

	err := NewWebhookRelay(secretURL, nil).Send(context.Background(), WebhookPayload{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}
