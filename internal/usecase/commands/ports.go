package commands

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	NightlyPrice int64
}

// BookingLedger is the authoritative store of every booking ever created.
type BookingLedger interface {
	HasConflict(ctx context.Context, roomID uuid.UUID, stay booking.StayRange) (bool, error)
	Append(ctx context.Context, b *booking.Booking) error
	SetStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
}

type RoomCatalog interface {
	Lookup(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error)
}

// CatalogWriter mutates the catalog. Every successful call invalidates cached
// search results.
type CatalogWriter interface {
	AddHotel(ctx context.Context, h *hotel.Hotel, rooms []*hotel.Room) error
	UpdateRoomPrice(ctx context.Context, roomID uuid.UUID, price int64) (*hotel.Room, error)
}

// Releaser frees an admission slot. Release must be idempotent.
type Releaser interface {
	Release()
}

// Arbiter admits at most one in-flight create per exact key and never queues.
type Arbiter interface {
	Acquire(key string) (Releaser, error)
}

// RoomGate serializes the conflict check and append for a single room.
type RoomGate interface {
	Lock(roomID uuid.UUID) (unlock func())
}

type GuestRateLimiter interface {
	Allow(guestEmail string) bool
}

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    uuid.UUID `json:"booking_id"`
	RoomID       uuid.UUID `json:"room_id"`
	HotelID      uuid.UUID `json:"hotel_id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	TotalPrice   int64     `json:"total_price"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

func NewBookingEvent(eventType string, b *booking.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:         eventType,
		BookingID:    b.ID(),
		RoomID:       b.RoomID(),
		HotelID:      b.HotelID(),
		GuestName:    b.Guest().Name(),
		GuestEmail:   b.Guest().Email(),
		CheckInDate:  b.Stay().CheckIn().String(),
		CheckOutDate: b.Stay().CheckOut().String(),
		TotalPrice:   b.TotalPrice().Amount(),
		OccurredAt:   at,
	}
}
