package hotel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidHotelName  = errors.New("hotel name must be between 1 and 200 characters")
	ErrInvalidCity       = errors.New("city must be between 1 and 100 characters")
	ErrInvalidStarRating = errors.New("star rating must be between 1 and 5")
	ErrInvalidRoomNumber = errors.New("room number cannot be empty")
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrInvalidPrice      = errors.New("nightly price must be positive")
	ErrInvalidOccupancy  = errors.New("max occupancy must be between 1 and 10")
)

const (
	MaxHotelNameLength = 200
	MaxCityLength      = 100
	MaxOccupancy       = 10
)

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
	RoomTypeDeluxe RoomType = "Deluxe"
)

var RoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe}

func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	default:
		return false
	}
}

type Hotel struct {
	id          uuid.UUID
	name        string
	city        string
	address     string
	starRating  int
	description string
	amenities   []string
}

type HotelParams struct {
	Name        string
	City        string
	Address     string
	StarRating  int
	Description string
	Amenities   []string
}

func NewHotel(id uuid.UUID, p HotelParams) (*Hotel, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxHotelNameLength {
		return nil, ErrInvalidHotelName
	}
	city := strings.TrimSpace(p.City)
	if city == "" || utf8.RuneCountInString(city) > MaxCityLength {
		return nil, ErrInvalidCity
	}
	if p.StarRating < 1 || p.StarRating > 5 {
		return nil, ErrInvalidStarRating
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Hotel{
		id:          id,
		name:        name,
		city:        city,
		address:     strings.TrimSpace(p.Address),
		starRating:  p.StarRating,
		description: strings.TrimSpace(p.Description),
		amenities:   append([]string(nil), p.Amenities...),
	}, nil
}

func (h *Hotel) ID() uuid.UUID       { return h.id }
func (h *Hotel) Name() string        { return h.name }
func (h *Hotel) City() string        { return h.city }
func (h *Hotel) Address() string     { return h.address }
func (h *Hotel) StarRating() int     { return h.starRating }
func (h *Hotel) Description() string { return h.description }
func (h *Hotel) Amenities() []string { return append([]string(nil), h.amenities...) }
func (h *Hotel) NameWords() []string { return strings.Fields(strings.ToLower(h.name)) }
func (h *Hotel) CityKey() string     { return strings.ToLower(h.city) }

type Room struct {
	id           uuid.UUID
	hotelID      uuid.UUID
	roomNumber   string
	roomType     RoomType
	price        int64
	maxOccupancy int
	amenities    []string
}

type RoomParams struct {
	RoomNumber   string
	RoomType     RoomType
	Price        int64
	MaxOccupancy int
	Amenities    []string
}

func NewRoom(id, hotelID uuid.UUID, p RoomParams) (*Room, error) {
	number := strings.TrimSpace(p.RoomNumber)
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}
	if !p.RoomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if p.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if p.MaxOccupancy < 1 || p.MaxOccupancy > MaxOccupancy {
		return nil, ErrInvalidOccupancy
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Room{
		id:           id,
		hotelID:      hotelID,
		roomNumber:   number,
		roomType:     p.RoomType,
		price:        p.Price,
		maxOccupancy: p.MaxOccupancy,
		amenities:    append([]string(nil), p.Amenities...),
	}, nil
}

// WithPrice returns a copy of the room at a new nightly price.
func (r *Room) WithPrice(price int64) (*Room, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	c := *r
	c.price = price
	c.amenities = append([]string(nil), r.amenities...)
	return &c, nil
}

func (r *Room) ID() uuid.UUID       { return r.id }
func (r *Room) HotelID() uuid.UUID  { return r.hotelID }
func (r *Room) RoomNumber() string  { return r.roomNumber }
func (r *Room) RoomType() RoomType  { return r.roomType }
func (r *Room) Price() int64        { return r.price }
func (r *Room) MaxOccupancy() int   { return r.maxOccupancy }
func (r *Room) Amenities() []string { return append([]string(nil), r.amenities...) }
