package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBusy             = errs.New("an identical booking request is already in progress")
	ErrRoomNotFound     = errs.New("room not found")
	ErrDateConflict     = errs.New("room is already booked for the selected dates")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrAlreadyCancelled = errs.New("booking is already cancelled")
	ErrRateLimited      = errs.New("too many booking attempts")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateBookingParams struct {
	RoomID     uuid.UUID
	GuestName  string
	GuestEmail string
	CheckIn    string
	CheckOut   string
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	ledger    BookingLedger
	catalog   RoomCatalog
	arbiter   Arbiter
	gate      RoomGate
	limiter   GuestRateLimiter
	publisher EventPublisher
	services  *booking.Services
	logger    *slog.Logger
}

func NewBookingCommands(
	ledger BookingLedger,
	catalog RoomCatalog,
	arbiter Arbiter,
	gate RoomGate,
	limiter GuestRateLimiter,
	publisher EventPublisher,
	services *booking.Services,
	logger *slog.Logger,
) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		ledger:    ledger,
		catalog:   catalog,
		arbiter:   arbiter,
		gate:      gate,
		limiter:   limiter,
		publisher: publisher,
		services:  services,
		logger:    logger,
	}
}

func ArbiterKey(roomID uuid.UUID, stay booking.StayRange) string {
	return roomID.String() + ":" + stay.Key()
}

// Create admits a booking through the arbiter. Duplicates in flight fail with
// ErrBusy before the guest rate limit is consulted. The arbiter slot is
// released on every exit path, including panics from collaborators.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	guest, err := booking.NewGuest(params.GuestName, params.GuestEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stay, err := booking.ParseStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	guard, err := c.arbiter.Acquire(ArbiterKey(params.RoomID, stay))
	if err != nil {
		if infra.IsKind(err, infra.KindBusy) {
			c.logger.Info("Booking request rejected as busy",
				slog.String("room_id", params.RoomID.String()),
				slog.String("check_in", stay.CheckIn().String()),
				slog.String("check_out", stay.CheckOut().String()))
			return nil, ErrBusy
		}
		return nil, errs.Wrap(err, "failed to acquire booking slot")
	}
	defer guard.Release()

	if err := c.services.ValidateStay(stay); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// only admitted, valid attempts count against the guest's quota
	if c.limiter != nil && !c.limiter.Allow(guest.Email()) {
		c.logger.Warn("Booking rate limited", slog.String("guest_email", guest.Email()))
		return nil, ErrRateLimited
	}

	room, err := c.lookupRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(c.services, room, guest, stay)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.commit(ctx, entity); err != nil {
		return nil, err
	}

	c.logger.Info("Booking created",
		slog.String("booking_id", entity.ID().String()),
		slog.String("room_id", entity.RoomID().String()),
		slog.String("check_in", stay.CheckIn().String()),
		slog.String("check_out", stay.CheckOut().String()),
		slog.Int64("total_price", entity.TotalPrice().Amount()))

	c.publish(ctx, EventBookingConfirmed, entity)

	return queries.NewBookingView(entity), nil
}

func (c *bookingCommandsImpl) lookupRoom(ctx context.Context, roomID uuid.UUID) (booking.RoomSpec, error) {
	snapshot, err := c.catalog.Lookup(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.RoomSpec{}, ErrRoomNotFound
		}
		return booking.RoomSpec{}, errs.Wrap(err, "failed to look up room")
	}
	if snapshot == nil {
		return booking.RoomSpec{}, ErrRoomNotFound
	}
	return booking.RoomSpec{
		ID:           snapshot.ID,
		HotelID:      snapshot.HotelID,
		NightlyPrice: booking.NewMoney(snapshot.NightlyPrice),
	}, nil
}

// commit runs the conflict check and the append under the room's gate so that
// overlapping but non-identical ranges cannot both pass the check.
func (c *bookingCommandsImpl) commit(ctx context.Context, entity *booking.Booking) error {
	unlock := c.gate.Lock(entity.RoomID())
	defer unlock()

	conflict, err := c.ledger.HasConflict(ctx, entity.RoomID(), entity.Stay())
	if err != nil {
		return errs.Wrap(err, "failed to check booking conflicts")
	}
	if conflict {
		c.logger.Info("Booking rejected by date conflict",
			slog.String("room_id", entity.RoomID().String()),
			slog.String("check_in", entity.Stay().CheckIn().String()),
			slog.String("check_out", entity.Stay().CheckOut().String()))
		return ErrDateConflict
	}

	if err := c.ledger.Append(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrDateConflict
		}
		return errs.Wrap(err, "failed to append booking")
	}
	return nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	cancelled, err := c.ledger.SetStatus(ctx, id, booking.StatusCancelled)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, booking.ErrAlreadyCancelled):
			return nil, ErrAlreadyCancelled
		default:
			return nil, errs.Wrap(err, "failed to cancel booking")
		}
	}

	c.logger.Info("Booking cancelled",
		slog.String("booking_id", cancelled.ID().String()),
		slog.String("room_id", cancelled.RoomID().String()))

	c.publish(ctx, EventBookingCancelled, cancelled)

	return queries.NewBookingView(cancelled), nil
}

// publish never fails the surrounding operation.
func (c *bookingCommandsImpl) publish(ctx context.Context, eventType string, b *booking.Booking) {
	if c.publisher == nil {
		return
	}
	event := NewBookingEvent(eventType, b, c.services.Clock.Now())
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("Failed to publish booking event",
			slog.String("type", eventType),
			slog.String("booking_id", b.ID().String()),
			slog.String("error", err.Error()))
	}
}
