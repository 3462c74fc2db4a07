//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	ID          uuid.UUID
	Name        string
	City        string
	Address     string
	StarRating  int
	Description string
	Amenities   []string
	Rooms       []hotel.RoomParams
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:          uuid.New(),
		Name:        "Grand Palace Hotel",
		City:        "Mumbai",
		Address:     "1 Marine Drive",
		StarRating:  5,
		Description: "Sea facing rooms",
		Amenities:   []string{"WiFi", "Pool"},
		Rooms: []hotel.RoomParams{
			{RoomNumber: "101", RoomType: hotel.RoomTypeDouble, Price: 25000, MaxOccupancy: 2, Amenities: []string{"AC"}},
		},
	}
}

func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.Name = name
	return b
}

func (b *HotelBuilder) WithCity(city string) *HotelBuilder {
	b.City = city
	return b
}

func (b *HotelBuilder) WithRooms(rooms ...hotel.RoomParams) *HotelBuilder {
	b.Rooms = rooms
	return b
}

func (b *HotelBuilder) Params() hotel.HotelParams {
	return hotel.HotelParams{
		Name:        b.Name,
		City:        b.City,
		Address:     b.Address,
		StarRating:  b.StarRating,
		Description: b.Description,
		Amenities:   b.Amenities,
	}
}

// BuildDomain returns the hotel and its rooms, ready for Store.AddHotel.
func (b *HotelBuilder) BuildDomain() (*hotel.Hotel, []*hotel.Room, error) {
	h, err := hotel.NewHotel(b.ID, b.Params())
	if err != nil {
		return nil, nil, err
	}
	rooms := make([]*hotel.Room, 0, len(b.Rooms))
	for _, p := range b.Rooms {
		r, err := hotel.NewRoom(uuid.Nil, h.ID(), p)
		if err != nil {
			return nil, nil, err
		}
		rooms = append(rooms, r)
	}
	return h, rooms, nil
}

func (b *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:          b.ID,
		Name:        b.Name,
		City:        b.City,
		Address:     b.Address,
		StarRating:  b.StarRating,
		Description: b.Description,
		Amenities:   b.Amenities,
		RoomCount:   len(b.Rooms),
	}
}

func (b *HotelBuilder) BuildRoomViews() []*queries.RoomView {
	views := make([]*queries.RoomView, len(b.Rooms))
	for i, p := range b.Rooms {
		views[i] = &queries.RoomView{
			ID:           uuid.New(),
			HotelID:      b.ID,
			RoomNumber:   p.RoomNumber,
			RoomType:     string(p.RoomType),
			Price:        p.Price,
			MaxOccupancy: p.MaxOccupancy,
			Amenities:    p.Amenities,
		}
	}
	return views
}

func (b *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	rooms := make([]reqdto.CreateRoomRequest, len(b.Rooms))
	for i, p := range b.Rooms {
		rooms[i] = reqdto.CreateRoomRequest{
			RoomNumber:   p.RoomNumber,
			RoomType:     string(p.RoomType),
			Price:        p.Price,
			MaxOccupancy: p.MaxOccupancy,
			Amenities:    p.Amenities,
		}
	}
	return reqdto.CreateHotelRequest{
		Name:        b.Name,
		City:        b.City,
		Address:     b.Address,
		StarRating:  b.StarRating,
		Description: b.Description,
		Amenities:   b.Amenities,
		Rooms:       rooms,
	}
}
