package queries

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound = errs.New("hotel not found")
	ErrRoomNotFound  = errs.New("room not found")
)

const (
	DefaultHotelPageLimit = 100
	MaxHotelPageLimit     = 1000
)

type SearchLimits struct {
	Default int
	Max     int
}

type CatalogQueries interface {
	ListHotels(ctx context.Context, skip, limit int) ([]*HotelView, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListHotelRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	SearchHotels(ctx context.Context, criteria SearchCriteria) ([]*HotelView, error)
}

type catalogQueriesImpl struct {
	store  CatalogReadStore
	cache  SearchCache
	limits SearchLimits
}

func NewCatalogQueries(store CatalogReadStore, cache SearchCache, limits SearchLimits) CatalogQueries {
	if limits.Max <= 0 {
		limits.Max = MaxHotelPageLimit
	}
	if limits.Default <= 0 || limits.Default > limits.Max {
		limits.Default = min(50, limits.Max)
	}
	return &catalogQueriesImpl{store: store, cache: cache, limits: limits}
}

func (q *catalogQueriesImpl) ListHotels(ctx context.Context, skip, limit int) ([]*HotelView, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultHotelPageLimit
	}
	limit = min(limit, MaxHotelPageLimit)

	hotels, err := q.store.ListHotels(ctx, skip, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list hotels")
	}
	return hotels, nil
}

func (q *catalogQueriesImpl) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	h, err := q.store.FindHotel(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to find hotel")
	}
	return h, nil
}

func (q *catalogQueriesImpl) ListHotelRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	rooms, err := q.store.ListRooms(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return rooms, nil
}

func (q *catalogQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	r, err := q.store.FindRoom(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return r, nil
}

// SearchHotels serves repeated criteria from the cache until it expires or the catalog changes.
func (q *catalogQueriesImpl) SearchHotels(ctx context.Context, criteria SearchCriteria) ([]*HotelView, error) {
	criteria = q.normalize(criteria)
	key := SearchCacheKey(criteria)

	if q.cache != nil {
		if hotels, ok := q.cache.Get(ctx, key); ok {
			return hotels, nil
		}
	}

	hotels, err := q.store.SearchHotels(ctx, criteria)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search hotels")
	}

	if q.cache != nil {
		q.cache.Set(ctx, key, hotels)
	}
	return hotels, nil
}

func (q *catalogQueriesImpl) normalize(c SearchCriteria) SearchCriteria {
	c.City = strings.TrimSpace(c.City)
	c.HotelName = strings.TrimSpace(c.HotelName)
	if c.Limit <= 0 {
		c.Limit = q.limits.Default
	}
	c.Limit = min(c.Limit, q.limits.Max)
	return c
}

func SearchCacheKey(c SearchCriteria) string {
	return fmt.Sprintf("%s|%s|%d", strings.ToLower(c.City), strings.ToLower(c.HotelName), c.Limit)
}
