//go:build unit

package catalog_test

import (
	"context"
	"testing"

	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, opts catalog.SeedOptions) (*catalog.Store, int) {
	t.Helper()
	store := catalog.NewStore(nil)
	n, err := catalog.Seed(context.Background(), store, opts)
	require.NoError(t, err)
	return store, n
}

func TestSeed(t *testing.T) {
	t.Run("landmarks only", func(t *testing.T) {
		store, n := seeded(t, catalog.SeedOptions{})
		assert.Equal(t, 8, n)
		assert.Equal(t, 8, store.HotelCount())

		hotels, err := store.SearchHotels(context.Background(), queries.SearchCriteria{City: "Mumbai", Limit: 10})
		require.NoError(t, err)
		require.Len(t, hotels, 2)
		assert.Equal(t, "The Taj Mahal Palace", hotels[0].Name)
		assert.Equal(t, 40, hotels[0].RoomCount)
	})

	t.Run("same options produce the same catalog", func(t *testing.T) {
		opts := catalog.SeedOptions{GeneratedHotels: 25, Seed: 42}
		a, n := seeded(t, opts)
		b, _ := seeded(t, opts)
		assert.Equal(t, 33, n)

		ctx := context.Background()
		hotelsA, err := a.ListHotels(ctx, 0, 100)
		require.NoError(t, err)
		hotelsB, err := b.ListHotels(ctx, 0, 100)
		require.NoError(t, err)
		if diff := cmp.Diff(hotelsA, hotelsB); diff != "" {
			t.Fatalf("hotels differ (-a +b):\n%s", diff)
		}

		roomsA, err := a.ListRooms(ctx, hotelsA[len(hotelsA)-1].ID)
		require.NoError(t, err)
		roomsB, err := b.ListRooms(ctx, hotelsB[len(hotelsB)-1].ID)
		require.NoError(t, err)
		if diff := cmp.Diff(roomsA, roomsB); diff != "" {
			t.Fatalf("rooms differ (-a +b):\n%s", diff)
		}
	})

	t.Run("prices follow star rating", func(t *testing.T) {
		store, _ := seeded(t, catalog.SeedOptions{GeneratedHotels: 10, Seed: 7})
		ctx := context.Background()
		hotels, err := store.ListHotels(ctx, 0, 100)
		require.NoError(t, err)

		for _, h := range hotels {
			rooms, err := store.ListRooms(ctx, h.ID)
			require.NoError(t, err)
			for _, r := range rooms {
				if h.StarRating == 5 {
					assert.GreaterOrEqual(t, r.Price, int64(8000))
					assert.LessOrEqual(t, r.Price, int64(25000))
				} else {
					assert.GreaterOrEqual(t, r.Price, int64(3000))
					assert.LessOrEqual(t, r.Price, int64(12000))
				}
			}
		}
	})

	t.Run("room numbers are unique per hotel", func(t *testing.T) {
		store, _ := seeded(t, catalog.SeedOptions{})
		ctx := context.Background()
		hotels, err := store.ListHotels(ctx, 0, 100)
		require.NoError(t, err)
		for _, h := range hotels {
			rooms, err := store.ListRooms(ctx, h.ID)
			require.NoError(t, err)
			seen := map[string]bool{}
			for _, r := range rooms {
				assert.False(t, seen[r.RoomNumber], r.RoomNumber)
				seen[r.RoomNumber] = true
			}
		}
	})
}
