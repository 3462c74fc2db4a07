package request

import (
	"strings"

	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	GuestName    string    `json:"guest_name" binding:"required,max=100"`
	GuestEmail   string    `json:"guest_email" binding:"required,email"`
	CheckInDate  string    `json:"check_in_date" binding:"required,calendar_date"`
	CheckOutDate string    `json:"check_out_date" binding:"required,calendar_date"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RoomID:     r.RoomID,
		GuestName:  strings.TrimSpace(r.GuestName),
		GuestEmail: strings.TrimSpace(r.GuestEmail),
		CheckIn:    r.CheckInDate,
		CheckOut:   r.CheckOutDate,
	}
}

type ListBookingsQuery struct {
	GuestName string `form:"guest_name"`
	Guest     string `form:"guest"`
}

// Filter prefers guest_name and falls back to guest.
func (q ListBookingsQuery) Filter() string {
	if name := strings.TrimSpace(q.GuestName); name != "" {
		return name
	}
	return strings.TrimSpace(q.Guest)
}
