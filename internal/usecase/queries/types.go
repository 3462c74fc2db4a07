package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	HotelID      uuid.UUID `json:"hotel_id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:           b.ID(),
		RoomID:       b.RoomID(),
		HotelID:      b.HotelID(),
		GuestName:    b.Guest().Name(),
		GuestEmail:   b.Guest().Email(),
		CheckInDate:  b.Stay().CheckIn().String(),
		CheckOutDate: b.Stay().CheckOut().String(),
		Status:       b.Status().String(),
		TotalPrice:   b.TotalPrice().Amount(),
		CreatedAt:    b.CreatedAt(),
	}
}

type HotelView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	StarRating  int       `json:"star_rating"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	RoomCount   int       `json:"room_count"`
}

func NewHotelView(h *hotel.Hotel, roomCount int) *HotelView {
	return &HotelView{
		ID:          h.ID(),
		Name:        h.Name(),
		City:        h.City(),
		Address:     h.Address(),
		StarRating:  h.StarRating(),
		Description: h.Description(),
		Amenities:   h.Amenities(),
		RoomCount:   roomCount,
	}
}

type RoomView struct {
	ID           uuid.UUID `json:"id"`
	HotelID      uuid.UUID `json:"hotel_id"`
	RoomNumber   string    `json:"room_number"`
	RoomType     string    `json:"room_type"`
	Price        int64     `json:"price"`
	MaxOccupancy int       `json:"max_occupancy"`
	Amenities    []string  `json:"amenities"`
}

func NewRoomView(r *hotel.Room) *RoomView {
	return &RoomView{
		ID:           r.ID(),
		HotelID:      r.HotelID(),
		RoomNumber:   r.RoomNumber(),
		RoomType:     string(r.RoomType()),
		Price:        r.Price(),
		MaxOccupancy: r.MaxOccupancy(),
		Amenities:    r.Amenities(),
	}
}

type SearchCriteria struct {
	City      string
	HotelName string
	Limit     int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, guestName string) ([]*booking.Booking, error)
}

type CatalogReadStore interface {
	ListHotels(ctx context.Context, skip, limit int) ([]*HotelView, error)
	FindHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	FindRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	SearchHotels(ctx context.Context, criteria SearchCriteria) ([]*HotelView, error)
}

// SearchCache misses are never errors; a broken backend behaves like an empty cache.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]*HotelView, bool)
	Set(ctx context.Context, key string, hotels []*HotelView)
	Purge(ctx context.Context)
}
