//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	HotelID      uuid.UUID
	GuestName    string
	GuestEmail   string
	CheckIn      string
	CheckOut     string
	Status       booking.Status
	NightlyPrice int64
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		RoomID:       uuid.New(),
		HotelID:      uuid.New(),
		GuestName:    "Ana Gomez",
		GuestEmail:   "ana@example.com",
		CheckIn:      "2025-03-01",
		CheckOut:     "2025-03-05",
		Status:       booking.StatusConfirmed,
		NightlyPrice: 25000,
		CreatedAt:    time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithGuest(name, email string) *BookingBuilder {
	b.GuestName = name
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:       b.RoomID,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		CheckInDate:  b.CheckIn,
		CheckOutDate: b.CheckOut,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RoomID:     b.RoomID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}

// BuildDomain reconstructs a stored booking without running creation rules.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	guest, err := booking.NewGuest(b.GuestName, b.GuestEmail)
	if err != nil {
		return nil, err
	}
	stay, err := booking.ParseStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	total := booking.NewMoney(b.NightlyPrice).Times(stay.Nights())
	return booking.ReconstructBooking(b.ID, b.RoomID, b.HotelID, guest, stay, b.Status, total, b.CreatedAt), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	stay, _ := booking.ParseStayRange(b.CheckIn, b.CheckOut)
	return &queries.BookingView{
		ID:           b.ID,
		RoomID:       b.RoomID,
		HotelID:      b.HotelID,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		CheckInDate:  b.CheckIn,
		CheckOutDate: b.CheckOut,
		Status:       b.Status.String(),
		TotalPrice:   b.NightlyPrice * int64(stay.Nights()),
		CreatedAt:    b.CreatedAt,
	}
}
