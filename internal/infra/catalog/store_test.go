//go:build unit

package catalog_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *catalog.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = catalog.NewStore(nil)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) add(b *builder.HotelBuilder) (*hotel.Hotel, []*hotel.Room) {
	h, rooms, err := b.BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.store.AddHotel(s.ctx, h, rooms))
	return h, rooms
}

func names(views []*queries.HotelView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func (s *StoreTestSuite) TestAddHotel() {
	h, rooms := s.add(builder.NewHotelBuilder().WithRooms(
		hotel.RoomParams{RoomNumber: "101", RoomType: hotel.RoomTypeSingle, Price: 5000, MaxOccupancy: 1},
		hotel.RoomParams{RoomNumber: "102", RoomType: hotel.RoomTypeSuite, Price: 9000, MaxOccupancy: 3},
	))

	s.Run("hotel and rooms are readable", func() {
		view, err := s.store.FindHotel(s.ctx, h.ID())
		s.Require().NoError(err)
		s.Equal(2, view.RoomCount)

		roomViews, err := s.store.ListRooms(s.ctx, h.ID())
		s.Require().NoError(err)
		s.Require().Len(roomViews, 2)
		s.Equal("101", roomViews[0].RoomNumber)
		s.Equal("102", roomViews[1].RoomNumber)

		room, err := s.store.FindRoom(s.ctx, rooms[1].ID())
		s.Require().NoError(err)
		s.Equal(int64(9000), room.Price)
	})

	s.Run("duplicate hotel id", func() {
		err := s.store.AddHotel(s.ctx, h, nil)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
		s.Equal(1, s.store.HotelCount())
	})

	s.Run("unknown ids", func() {
		_, err := s.store.FindHotel(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
		_, err = s.store.ListRooms(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
		_, err = s.store.FindRoom(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
		_, err = s.store.Lookup(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *StoreTestSuite) TestLookupAndPriceUpdate() {
	h, rooms := s.add(builder.NewHotelBuilder())

	snapshot, err := s.store.Lookup(s.ctx, rooms[0].ID())
	s.Require().NoError(err)
	s.Equal(h.ID(), snapshot.HotelID)
	s.Equal(int64(25000), snapshot.NightlyPrice)

	room, err := s.store.UpdateRoomPrice(s.ctx, rooms[0].ID(), 30000)
	s.Require().NoError(err)
	s.Equal(int64(30000), room.Price())
	s.Equal(rooms[0].RoomNumber(), room.RoomNumber())
	s.Equal(int64(25000), rooms[0].Price(), "previous room value is not mutated")

	updated, err := s.store.Lookup(s.ctx, rooms[0].ID())
	s.Require().NoError(err)
	s.Equal(int64(30000), updated.NightlyPrice)
	s.Equal(int64(25000), snapshot.NightlyPrice)

	_, err = s.store.UpdateRoomPrice(s.ctx, uuid.New(), 30000)
	s.True(infra.IsKind(err, infra.KindNotFound))
	_, err = s.store.UpdateRoomPrice(s.ctx, rooms[0].ID(), 0)
	s.ErrorIs(err, hotel.ErrInvalidPrice)
}

func (s *StoreTestSuite) TestOnChange() {
	calls := 0
	s.store.OnChange(func() { calls++ })

	_, rooms := s.add(builder.NewHotelBuilder())
	s.Equal(1, calls)

	_, err := s.store.UpdateRoomPrice(s.ctx, rooms[0].ID(), 1000)
	s.Require().NoError(err)
	s.Equal(2, calls)

	_, _ = s.store.UpdateRoomPrice(s.ctx, uuid.New(), 1000)
	s.Equal(2, calls, "failed mutations do not notify")
}

func (s *StoreTestSuite) TestListHotels() {
	for _, name := range []string{"Alpha Inn", "Beta Inn", "Gamma Inn"} {
		s.add(builder.NewHotelBuilder().WithName(name))
	}

	page, err := s.store.ListHotels(s.ctx, 0, 2)
	s.Require().NoError(err)
	s.Equal([]string{"Alpha Inn", "Beta Inn"}, names(page))

	page, err = s.store.ListHotels(s.ctx, 2, 2)
	s.Require().NoError(err)
	s.Equal([]string{"Gamma Inn"}, names(page))

	page, err = s.store.ListHotels(s.ctx, 5, 2)
	s.Require().NoError(err)
	s.NotNil(page)
	s.Empty(page)
}

func (s *StoreTestSuite) TestSearchHotels() {
	s.add(builder.NewHotelBuilder().WithName("Grand Palace Hotel").WithCity("Mumbai"))
	s.add(builder.NewHotelBuilder().WithName("Sea View Inn").WithCity("Mumbai"))
	s.add(builder.NewHotelBuilder().WithName("Grand Hyatt").WithCity("Goa"))
	s.add(builder.NewHotelBuilder().WithName("Palace Residency").WithCity("New Delhi"))

	cases := []struct {
		name     string
		criteria queries.SearchCriteria
		expected []string
	}{
		{
			name:     "city is exact and case-insensitive",
			criteria: queries.SearchCriteria{City: "mUMBAI", Limit: 10},
			expected: []string{"Grand Palace Hotel", "Sea View Inn"},
		},
		{
			name:     "city is not a substring match",
			criteria: queries.SearchCriteria{City: "Mum", Limit: 10},
			expected: []string{},
		},
		{
			name:     "any query word matching any name word",
			criteria: queries.SearchCriteria{HotelName: "palace view", Limit: 10},
			expected: []string{"Grand Palace Hotel", "Sea View Inn", "Palace Residency"},
		},
		{
			name:     "query word matches inside a name word",
			criteria: queries.SearchCriteria{HotelName: "yat", Limit: 10},
			expected: []string{"Grand Hyatt"},
		},
		{
			name:     "city and name intersect",
			criteria: queries.SearchCriteria{City: "Mumbai", HotelName: "grand", Limit: 10},
			expected: []string{"Grand Palace Hotel"},
		},
		{
			name:     "no criteria returns all up to the limit",
			criteria: queries.SearchCriteria{Limit: 3},
			expected: []string{"Grand Palace Hotel", "Sea View Inn", "Grand Hyatt"},
		},
		{
			name:     "limit applies after filtering",
			criteria: queries.SearchCriteria{HotelName: "grand palace", Limit: 2},
			expected: []string{"Grand Palace Hotel", "Grand Hyatt"},
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := s.store.SearchHotels(s.ctx, tc.criteria)
			s.Require().NoError(err)
			s.Equal(tc.expected, names(got))
		})
	}
}
