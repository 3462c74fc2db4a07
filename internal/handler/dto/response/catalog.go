package response

import (
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	StarRating  int       `json:"star_rating"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	RoomCount   int       `json:"room_count"`
}

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	HotelID      uuid.UUID `json:"hotel_id"`
	RoomNumber   string    `json:"room_number"`
	RoomType     string    `json:"room_type"`
	Price        int64     `json:"price"`
	MaxOccupancy int       `json:"max_occupancy"`
	Amenities    []string  `json:"amenities"`
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []*RoomResponse `json:"rooms"`
}

func FromHotelView(v *queries.HotelView) (*HotelResponse, error) {
	var out HotelResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "map hotel view")
	}
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	return &out, nil
}

func FromHotelViews(vs []*queries.HotelView) ([]*HotelResponse, error) {
	out := make([]*HotelResponse, 0, len(vs))
	for _, v := range vs {
		h, err := FromHotelView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "map room view")
	}
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	return &out, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
