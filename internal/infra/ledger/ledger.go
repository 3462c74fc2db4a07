package ledger

import (
	"context"
	"log/slog"
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Ledger holds every booking for the lifetime of the process. Records are
// stored in insertion order and handed out as copies.
type Ledger struct {
	mu      sync.RWMutex
	records []*booking.Booking
	index   map[uuid.UUID]int
	logger  *slog.Logger
}

func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{
		index:  make(map[uuid.UUID]int),
		logger: logger,
	}
}

func (l *Ledger) HasConflict(_ context.Context, roomID uuid.UUID, stay booking.StayRange) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.conflictLocked(roomID, stay), nil
}

func (l *Ledger) conflictLocked(roomID uuid.UUID, stay booking.StayRange) bool {
	for _, rec := range l.records {
		if rec.Blocks(roomID, stay) {
			return true
		}
	}
	return false
}

// Append refuses ids already present and confirmed bookings that would overlap
// another confirmed booking of the same room.
func (l *Ledger) Append(_ context.Context, b *booking.Booking) error {
	if b == nil {
		return infra.WrapRepoErr(l.logger, infra.KindUnavailable, "nil booking", errs.New("booking is required"))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.index[b.ID()]; exists {
		return infra.WrapRepoErr(l.logger, infra.KindDuplicateKey, "booking id already recorded", nil)
	}
	if b.IsActive() && l.conflictLocked(b.RoomID(), b.Stay()) {
		return infra.WrapRepoErr(l.logger, infra.KindConflict, "overlapping confirmed booking", nil)
	}

	l.index[b.ID()] = len(l.records)
	l.records = append(l.records, b.Snapshot())
	return nil
}

// SetStatus applies the single allowed transition, confirmed to cancelled.
func (l *Ledger) SetStatus(_ context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if status != booking.StatusCancelled {
		return nil, errs.Wrapf(booking.ErrInvalidStatusTransition, "to %q", status)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return nil, infra.WrapRepoErr(l.logger, infra.KindNotFound, "booking not found", nil)
	}
	if err := l.records[i].Cancel(); err != nil {
		return nil, err
	}
	return l.records[i].Snapshot(), nil
}

func (l *Ledger) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return nil, infra.WrapRepoErr(l.logger, infra.KindNotFound, "booking not found", nil)
	}
	return l.records[i].Snapshot(), nil
}

// List matches guestName as a case-insensitive substring of the guest name.
// Cancelled bookings are included.
func (l *Ledger) List(_ context.Context, guestName string) ([]*booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*booking.Booking, 0, len(l.records))
	for _, rec := range l.records {
		if guestName == "" || rec.Guest().NameContains(guestName) {
			result = append(result, rec.Snapshot())
		}
	}
	return result, nil
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
