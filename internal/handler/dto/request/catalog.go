package request

import (
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type ListHotelsQuery struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

type SearchRequest struct {
	City      string `json:"city" binding:"omitempty,max=100"`
	HotelName string `json:"hotel_name" binding:"omitempty,max=200"`
	Limit     int    `json:"limit" binding:"omitempty,min=1,max=1000"`
}

func (r SearchRequest) ToCriteria() queries.SearchCriteria {
	return queries.SearchCriteria{
		City:      r.City,
		HotelName: r.HotelName,
		Limit:     r.Limit,
	}
}

type UpdateRoomPriceRequest struct {
	Price int64 `json:"price" binding:"required,gt=0"`
}

type CreateRoomRequest struct {
	RoomNumber   string   `json:"room_number" binding:"required,max=20"`
	RoomType     string   `json:"room_type" binding:"required,oneof=Single Double Suite Deluxe"`
	Price        int64    `json:"price" binding:"required,gt=0"`
	MaxOccupancy int      `json:"max_occupancy" binding:"required,min=1,max=10"`
	Amenities    []string `json:"amenities"`
}

type CreateHotelRequest struct {
	Name        string              `json:"name" binding:"required,max=200"`
	City        string              `json:"city" binding:"required,max=100"`
	Address     string              `json:"address" binding:"max=300"`
	StarRating  int                 `json:"star_rating" binding:"required,min=1,max=5"`
	Description string              `json:"description" binding:"max=2000"`
	Amenities   []string            `json:"amenities"`
	Rooms       []CreateRoomRequest `json:"rooms" binding:"dive"`
}

func (r CreateHotelRequest) ToParams() commands.CreateHotelParams {
	rooms := make([]hotel.RoomParams, len(r.Rooms))
	for i, room := range r.Rooms {
		rooms[i] = hotel.RoomParams{
			RoomNumber:   room.RoomNumber,
			RoomType:     hotel.RoomType(room.RoomType),
			Price:        room.Price,
			MaxOccupancy: room.MaxOccupancy,
			Amenities:    room.Amenities,
		}
	}
	return commands.CreateHotelParams{
		Hotel: hotel.HotelParams{
			Name:        r.Name,
			City:        r.City,
			Address:     r.Address,
			StarRating:  r.StarRating,
			Description: r.Description,
			Amenities:   r.Amenities,
		},
		Rooms: rooms,
	}
}
