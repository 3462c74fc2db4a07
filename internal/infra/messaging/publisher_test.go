//go:build unit

package messaging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"hotel-booking/internal/infra/messaging"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	event := commands.NewBookingEvent(commands.EventBookingConfirmed, entity, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, messaging.NewLogPublisher(logger).Publish(context.Background(), event))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booking.confirmed", line["type"])
	assert.Equal(t, entity.ID().String(), line["booking_id"])
	assert.Equal(t, "2025-03-01", line["check_in"])
	assert.Equal(t, "2025-03-05", line["check_out"])
}

func TestBookingEventPayload(t *testing.T) {
	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	payload, err := json.Marshal(commands.NewBookingEvent(commands.EventBookingCancelled, entity, at))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "booking.cancelled", decoded["type"])
	assert.Equal(t, entity.RoomID().String(), decoded["room_id"])
	assert.Equal(t, "Ana Gomez", decoded["guest_name"])
	assert.EqualValues(t, 100000, decoded["total_price"])
	assert.Equal(t, "2025-03-01T12:00:00Z", decoded["occurred_at"])
}
