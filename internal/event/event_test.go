package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}

	assert.NoError(t, p.Publish(context.Background(), TicketEvent{Type: TypeTicketPurchased}))
	assert.NoError(t, p.Close())
}

func TestTicketEvent_CancelledPayloadOmitsDetails(t *testing.T) {
	evt := TicketEvent{
		Type:       TypeTicketCancelled,
		TicketID:   "3f0c8e5e-8d4b-4b7e-9d1a-5b8f0e6c2a11",
		OccurredAt: time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(evt)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))

	assert.Equal(t, "ticket.cancelled", payload["type"])
	assert.Equal(t, "2026-10-01T12:00:00Z", payload["occurred_at"])
	assert.NotContains(t, payload, "screening_id")
	assert.NotContains(t, payload, "movie_title")
}
