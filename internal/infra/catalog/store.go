package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Store is the in-memory hotel and room directory. Hotels keep insertion order.
type Store struct {
	mu           sync.RWMutex
	hotels       []*hotel.Hotel
	hotelIndex   map[uuid.UUID]int
	rooms        map[uuid.UUID]*hotel.Room
	roomsByHotel map[uuid.UUID][]uuid.UUID
	cityIndex    map[string][]uuid.UUID

	listeners []func()
	logger    *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		hotelIndex:   make(map[uuid.UUID]int),
		rooms:        make(map[uuid.UUID]*hotel.Room),
		roomsByHotel: make(map[uuid.UUID][]uuid.UUID),
		cityIndex:    make(map[string][]uuid.UUID),
		logger:       logger,
	}
}

// OnChange registers fn to run after every catalog mutation.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *Store) AddHotel(_ context.Context, h *hotel.Hotel, rooms []*hotel.Room) error {
	s.mu.Lock()
	if _, exists := s.hotelIndex[h.ID()]; exists {
		s.mu.Unlock()
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "hotel already exists", nil)
	}
	for _, r := range rooms {
		if _, exists := s.rooms[r.ID()]; exists {
			s.mu.Unlock()
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "room already exists", nil)
		}
	}

	s.hotelIndex[h.ID()] = len(s.hotels)
	s.hotels = append(s.hotels, h)
	s.cityIndex[h.CityKey()] = append(s.cityIndex[h.CityKey()], h.ID())

	ids := make([]uuid.UUID, 0, len(rooms))
	for _, r := range rooms {
		s.rooms[r.ID()] = r
		ids = append(ids, r.ID())
	}
	s.roomsByHotel[h.ID()] = ids
	s.mu.Unlock()

	s.notify()
	return nil
}

// UpdateRoomPrice changes the nightly price for future bookings only and
// returns the updated room.
func (s *Store) UpdateRoomPrice(_ context.Context, roomID uuid.UUID, price int64) (*hotel.Room, error) {
	s.mu.Lock()
	r, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "room not found", nil)
	}
	updated, err := r.WithPrice(price)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.rooms[roomID] = updated
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

func (s *Store) Lookup(_ context.Context, roomID uuid.UUID) (*commands.RoomSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "room not found", nil)
	}
	return &commands.RoomSnapshot{
		ID:           r.ID(),
		HotelID:      r.HotelID(),
		NightlyPrice: r.Price(),
	}, nil
}

func (s *Store) ListHotels(_ context.Context, skip, limit int) ([]*queries.HotelView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if skip >= len(s.hotels) {
		return []*queries.HotelView{}, nil
	}
	end := min(skip+limit, len(s.hotels))

	views := make([]*queries.HotelView, 0, end-skip)
	for _, h := range s.hotels[skip:end] {
		views = append(views, s.hotelViewLocked(h))
	}
	return views, nil
}

func (s *Store) FindHotel(_ context.Context, id uuid.UUID) (*queries.HotelView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.hotelIndex[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "hotel not found", nil)
	}
	return s.hotelViewLocked(s.hotels[i]), nil
}

func (s *Store) ListRooms(_ context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.hotelIndex[hotelID]; !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "hotel not found", nil)
	}
	ids := s.roomsByHotel[hotelID]
	views := make([]*queries.RoomView, 0, len(ids))
	for _, id := range ids {
		views = append(views, queries.NewRoomView(s.rooms[id]))
	}
	return views, nil
}

func (s *Store) FindRoom(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "room not found", nil)
	}
	return queries.NewRoomView(r), nil
}

// SearchHotels filters by exact city and by name words. A hotel matches the name
// when any query word is a substring of one of its name words. Giving both
// criteria intersects them.
func (s *Store) SearchHotels(_ context.Context, criteria queries.SearchCriteria) ([]*queries.HotelView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := s.hotels
	if city := strings.ToLower(strings.TrimSpace(criteria.City)); city != "" {
		ids := s.cityIndex[city]
		candidates = make([]*hotel.Hotel, 0, len(ids))
		for _, id := range ids {
			candidates = append(candidates, s.hotels[s.hotelIndex[id]])
		}
	}

	words := strings.Fields(strings.ToLower(criteria.HotelName))

	views := make([]*queries.HotelView, 0, min(criteria.Limit, len(candidates)))
	for _, h := range candidates {
		if len(views) >= criteria.Limit {
			break
		}
		if len(words) > 0 && !nameMatches(h, words) {
			continue
		}
		views = append(views, s.hotelViewLocked(h))
	}
	return views, nil
}

func nameMatches(h *hotel.Hotel, words []string) bool {
	for _, nameWord := range h.NameWords() {
		for _, w := range words {
			if strings.Contains(nameWord, w) {
				return true
			}
		}
	}
	return false
}

func (s *Store) hotelViewLocked(h *hotel.Hotel) *queries.HotelView {
	return queries.NewHotelView(h, len(s.roomsByHotel[h.ID()]))
}

func (s *Store) HotelCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hotels)
}
