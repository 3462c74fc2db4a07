//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: hotel and rooms are stored", func(t *testing.T) {
		store := catalog.NewStore(nil)
		cmd := commands.NewCatalogCommands(store, nil)
		b := builder.NewHotelBuilder().WithRooms(
			hotel.RoomParams{RoomNumber: "101", RoomType: hotel.RoomTypeSingle, Price: 4000, MaxOccupancy: 1},
			hotel.RoomParams{RoomNumber: "102", RoomType: hotel.RoomTypeDeluxe, Price: 9000, MaxOccupancy: 3},
		)

		created, err := cmd.CreateHotel(ctx, commands.CreateHotelParams{Hotel: b.Params(), Rooms: b.Rooms})
		require.NoError(t, err)
		assert.Equal(t, 2, created.Hotel.RoomCount)
		require.Len(t, created.Rooms, 2)
		assert.Equal(t, created.Hotel.ID, created.Rooms[0].HotelID)

		snapshot, err := store.Lookup(ctx, created.Rooms[1].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(9000), snapshot.NightlyPrice)
	})

	t.Run("error: invalid hotel", func(t *testing.T) {
		cmd := commands.NewCatalogCommands(catalog.NewStore(nil), nil)
		b := builder.NewHotelBuilder().WithName("")

		_, err := cmd.CreateHotel(ctx, commands.CreateHotelParams{Hotel: b.Params(), Rooms: b.Rooms})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.ErrorIs(t, err, hotel.ErrInvalidHotelName)
	})

	t.Run("error: invalid room", func(t *testing.T) {
		cmd := commands.NewCatalogCommands(catalog.NewStore(nil), nil)
		b := builder.NewHotelBuilder().WithRooms(hotel.RoomParams{RoomNumber: "101", RoomType: "Attic", Price: 1, MaxOccupancy: 1})

		_, err := cmd.CreateHotel(ctx, commands.CreateHotelParams{Hotel: b.Params(), Rooms: b.Rooms})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.ErrorIs(t, err, hotel.ErrInvalidRoomType)
	})

	t.Run("error: duplicate room numbers", func(t *testing.T) {
		store := catalog.NewStore(nil)
		cmd := commands.NewCatalogCommands(store, nil)
		room := hotel.RoomParams{RoomNumber: "101", RoomType: hotel.RoomTypeSingle, Price: 4000, MaxOccupancy: 1}
		b := builder.NewHotelBuilder().WithRooms(room, room)

		_, err := cmd.CreateHotel(ctx, commands.CreateHotelParams{Hotel: b.Params(), Rooms: b.Rooms})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.True(t, errs.Is(err, commands.ErrDuplicateRoomNumber))
		assert.Equal(t, 0, store.HotelCount())
	})

	t.Run("success: a hotel without rooms", func(t *testing.T) {
		cmd := commands.NewCatalogCommands(catalog.NewStore(nil), nil)
		b := builder.NewHotelBuilder().WithRooms()

		created, err := cmd.CreateHotel(ctx, commands.CreateHotelParams{Hotel: b.Params()})
		require.NoError(t, err)
		assert.Equal(t, 0, created.Hotel.RoomCount)
		assert.Empty(t, created.Rooms)
	})
}

func TestUpdateRoomPrice(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*catalog.Store, *hotel.Room, commands.CatalogCommands) {
		t.Helper()
		store := catalog.NewStore(nil)
		h, rooms, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.AddHotel(ctx, h, rooms))
		return store, rooms[0], commands.NewCatalogCommands(store, nil)
	}

	t.Run("success: returns the repriced room", func(t *testing.T) {
		store, room, cmd := setup(t)

		view, err := cmd.UpdateRoomPrice(ctx, room.ID(), 32000)
		require.NoError(t, err)
		assert.Equal(t, room.ID(), view.ID)
		assert.Equal(t, room.RoomNumber(), view.RoomNumber)
		assert.Equal(t, int64(32000), view.Price)

		snapshot, err := store.Lookup(ctx, room.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(32000), snapshot.NightlyPrice)
	})

	t.Run("success: cached search results are dropped", func(t *testing.T) {
		store, room, cmd := setup(t)
		searchCache := cache.NewMemoryCache(time.Minute, clock.NewRealClock())
		store.OnChange(func() { searchCache.Purge(ctx) })
		searchCache.Set(ctx, "mumbai||50", []*queries.HotelView{{ID: room.HotelID()}})
		require.Equal(t, 1, searchCache.Len())

		_, err := cmd.UpdateRoomPrice(ctx, room.ID(), 32000)
		require.NoError(t, err)
		assert.Equal(t, 0, searchCache.Len())
	})

	t.Run("error: unknown room", func(t *testing.T) {
		_, _, cmd := setup(t)

		_, err := cmd.UpdateRoomPrice(ctx, uuid.New(), 32000)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("error: non-positive price keeps the old one", func(t *testing.T) {
		store, room, cmd := setup(t)

		_, err := cmd.UpdateRoomPrice(ctx, room.ID(), 0)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.ErrorIs(t, err, hotel.ErrInvalidPrice)

		snapshot, err := store.Lookup(ctx, room.ID())
		require.NoError(t, err)
		assert.Equal(t, room.Price(), snapshot.NightlyPrice)
	})
}
