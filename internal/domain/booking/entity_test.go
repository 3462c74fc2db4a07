//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type negativeCalculator struct{}

func (negativeCalculator) CalculateTotal(booking.RoomSpec, booking.StayRange) booking.Money {
	return booking.NewMoney(-1)
}

func newServices(now time.Time) *booking.Services {
	return booking.NewServices(clock.NewMockClock(now), booking.NewNightlyPriceCalculator(), booking.DefaultMaxStayNights)
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	services := newServices(now)
	room := booking.RoomSpec{ID: uuid.New(), HotelID: uuid.New(), NightlyPrice: booking.NewMoney(25000)}
	guest, err := booking.NewGuest("Ana Gomez", "ana@example.com")
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		b, err := booking.NewBooking(services, room, guest, mustStay(t, "2025-03-01", "2025-03-04"))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, room.ID, b.RoomID())
		assert.Equal(t, room.HotelID, b.HotelID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsActive())
		assert.Equal(t, int64(75000), b.TotalPrice().Amount())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := booking.NewBooking(services, room, guest, mustStay(t, "2025-03-01", "2025-03-02"))
		require.NoError(t, err)
		b, err := booking.NewBooking(services, room, guest, mustStay(t, "2025-03-01", "2025-03-02"))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("stay rules", func(t *testing.T) {
		_, err := booking.NewBooking(services, room, guest, mustStay(t, "2025-02-28", "2025-03-02"))
		assert.ErrorIs(t, err, booking.ErrPastDate)

		_, err = booking.NewBooking(services, room, guest, mustStay(t, "2025-03-01", "2025-03-31"))
		assert.NoError(t, err)

		_, err = booking.NewBooking(services, room, guest, mustStay(t, "2025-03-01", "2025-04-01"))
		assert.ErrorIs(t, err, booking.ErrStayTooLong)
	})

	t.Run("configured max stay", func(t *testing.T) {
		short := booking.NewServices(clock.NewMockClock(now), booking.NewNightlyPriceCalculator(), 7)
		_, err := booking.NewBooking(short, room, guest, mustStay(t, "2025-03-01", "2025-03-09"))
		assert.ErrorIs(t, err, booking.ErrStayTooLong)
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		bad := booking.NewServices(clock.NewMockClock(now), negativeCalculator{}, booking.DefaultMaxStayNights)
		_, err := booking.NewBooking(bad, room, guest, mustStay(t, "2025-03-01", "2025-03-02"))
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestServicesDefaults(t *testing.T) {
	s := booking.NewServices(clock.NewMockClock(time.Now()), booking.NewNightlyPriceCalculator(), 0)
	assert.Equal(t, booking.DefaultMaxStayNights, s.MaxStayNights)
}

func TestBookingCancel(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.True(t, b.IsCancelled())
	assert.False(t, b.IsActive())

	assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	assert.Equal(t, booking.StatusCancelled, b.Status())
}

func TestBookingBlocks(t *testing.T) {
	b, err := builder.NewBookingBuilder().WithStay("2025-03-01", "2025-03-05").BuildDomain()
	require.NoError(t, err)

	assert.True(t, b.Blocks(b.RoomID(), mustStay(t, "2025-03-04", "2025-03-08")))
	assert.False(t, b.Blocks(b.RoomID(), mustStay(t, "2025-03-05", "2025-03-08")))
	assert.False(t, b.Blocks(uuid.New(), mustStay(t, "2025-03-01", "2025-03-05")))

	require.NoError(t, b.Cancel())
	assert.False(t, b.Blocks(b.RoomID(), mustStay(t, "2025-03-01", "2025-03-05")))
}

func TestBookingSnapshot(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	snap := b.Snapshot()
	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusConfirmed, snap.Status())
	assert.Equal(t, b.ID(), snap.ID())
}

func TestNightlyPriceCalculator(t *testing.T) {
	calc := booking.NewNightlyPriceCalculator()
	room := booking.RoomSpec{NightlyPrice: booking.NewMoney(12000)}

	assert.Equal(t, int64(48000), calc.CalculateTotal(room, mustStay(t, "2025-03-01", "2025-03-05")).Amount())
	// degenerate ranges still charge one night
	assert.Equal(t, int64(12000), calc.CalculateTotal(room, mustStay(t, "2025-03-01", "2025-03-01")).Amount())
}
