package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	HotelID      string    `json:"hotel_id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	TotalPrice   int64     `json:"total_price"`
}

type CancelBookingResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID.String(),
		RoomID:       v.RoomID.String(),
		HotelID:      v.HotelID.String(),
		GuestName:    v.GuestName,
		GuestEmail:   v.GuestEmail,
		CheckInDate:  v.CheckInDate,
		CheckOutDate: v.CheckOutDate,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		TotalPrice:   v.TotalPrice,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}
