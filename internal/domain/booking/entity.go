package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultMaxStayNights = 30

var (
	ErrInvalidDate      = errors.New("invalid calendar date, expected YYYY-MM-DD")
	ErrPastDate         = errors.New("check-in date cannot be in the past")
	ErrInvertedRange    = errors.New("check-out date must be after check-in date")
	ErrStayTooLong      = errors.New("stay exceeds the maximum number of nights")
	ErrInvalidGuestName = errors.New("guest name must be between 1 and 100 characters")
	ErrInvalidEmail     = errors.New("invalid guest email")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

// RoomSpec is the catalog data a booking is priced from.
type RoomSpec struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	NightlyPrice Money
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	MaxStayNights   int
}

func NewServices(clk clock.Clock, calc PriceCalculator, maxStayNights int) *Services {
	if maxStayNights <= 0 {
		maxStayNights = DefaultMaxStayNights
	}
	return &Services{
		Clock:           clk,
		PriceCalculator: calc,
		MaxStayNights:   maxStayNights,
	}
}

// Today is the validation instant truncated to local midnight.
func (s *Services) Today() Date {
	return DateOf(s.Clock.Now().Local())
}

func (s *Services) ValidateStay(stay StayRange) error {
	return stay.ValidateAt(s.Today(), s.MaxStayNights)
}

type Booking struct {
	id         uuid.UUID
	roomID     uuid.UUID
	hotelID    uuid.UUID
	guest      Guest
	stay       StayRange
	status     Status
	totalPrice Money
	createdAt  time.Time
}

// NewBooking prices a confirmed booking once; the total never follows later catalog changes.
func NewBooking(services *Services, room RoomSpec, guest Guest, stay StayRange) (*Booking, error) {
	if err := services.ValidateStay(stay); err != nil {
		return nil, err
	}

	total := services.PriceCalculator.CalculateTotal(room, stay)
	if total.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		roomID:     room.ID,
		hotelID:    room.HotelID,
		guest:      guest,
		stay:       stay,
		status:     StatusConfirmed,
		totalPrice: total,
		createdAt:  services.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, roomID, hotelID uuid.UUID,
	guest Guest,
	stay StayRange,
	status Status,
	totalPrice Money,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		roomID:     roomID,
		hotelID:    hotelID,
		guest:      guest,
		stay:       stay,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
	}
}

// Cancel is the only transition; it happens once.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// Blocks reports whether b prevents another booking of roomID for stay.
func (b *Booking) Blocks(roomID uuid.UUID, stay StayRange) bool {
	return b.IsActive() && b.roomID == roomID && b.stay.Overlaps(stay)
}

// Snapshot returns a detached copy safe to hand out of a lock.
func (b *Booking) Snapshot() *Booking {
	c := *b
	return &c
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) HotelID() uuid.UUID   { return b.hotelID }
func (b *Booking) Guest() Guest         { return b.guest }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
