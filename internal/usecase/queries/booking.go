package queries

import (
	"context"
	"strings"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, guestName string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return NewBookingView(b), nil
}

// List returns every booking regardless of status in insertion order; an empty
// guest name returns all of them.
func (q *bookingQueriesImpl) List(ctx context.Context, guestName string) ([]*BookingView, error) {
	bookings, err := q.store.List(ctx, strings.TrimSpace(guestName))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = NewBookingView(b)
	}
	return views, nil
}
