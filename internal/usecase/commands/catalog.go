package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrDuplicateRoomNumber = errs.New("duplicate room number in hotel")

type CreateHotelParams struct {
	Hotel hotel.HotelParams
	Rooms []hotel.RoomParams
}

type CreatedHotel struct {
	Hotel *queries.HotelView
	Rooms []*queries.RoomView
}

type CatalogCommands interface {
	CreateHotel(ctx context.Context, params CreateHotelParams) (*CreatedHotel, error)
	UpdateRoomPrice(ctx context.Context, roomID uuid.UUID, price int64) (*queries.RoomView, error)
}

type catalogCommandsImpl struct {
	writer CatalogWriter
	logger *slog.Logger
}

func NewCatalogCommands(writer CatalogWriter, logger *slog.Logger) CatalogCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogCommandsImpl{writer: writer, logger: logger}
}

func (c *catalogCommandsImpl) CreateHotel(ctx context.Context, params CreateHotelParams) (*CreatedHotel, error) {
	h, err := hotel.NewHotel(uuid.Nil, params.Hotel)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	seen := make(map[string]struct{}, len(params.Rooms))
	rooms := make([]*hotel.Room, 0, len(params.Rooms))
	for _, p := range params.Rooms {
		r, err := hotel.NewRoom(uuid.Nil, h.ID(), p)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		if _, dup := seen[r.RoomNumber()]; dup {
			return nil, errs.Mark(ErrDuplicateRoomNumber, ErrDomainValidation)
		}
		seen[r.RoomNumber()] = struct{}{}
		rooms = append(rooms, r)
	}

	if err := c.writer.AddHotel(ctx, h, rooms); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return nil, errs.Wrap(err, "failed to add hotel")
	}

	c.logger.Info("Hotel created",
		slog.String("hotel_id", h.ID().String()),
		slog.Int("rooms", len(rooms)))

	created := &CreatedHotel{
		Hotel: queries.NewHotelView(h, len(rooms)),
		Rooms: make([]*queries.RoomView, len(rooms)),
	}
	for i, r := range rooms {
		created.Rooms[i] = queries.NewRoomView(r)
	}
	return created, nil
}

// UpdateRoomPrice reprices a room. Existing bookings keep the total they were
// created with.
func (c *catalogCommandsImpl) UpdateRoomPrice(ctx context.Context, roomID uuid.UUID, price int64) (*queries.RoomView, error) {
	room, err := c.writer.UpdateRoomPrice(ctx, roomID, price)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, hotel.ErrInvalidPrice):
			return nil, errs.Mark(err, ErrDomainValidation)
		default:
			return nil, errs.Wrap(err, "failed to update room price")
		}
	}

	c.logger.Info("Room price updated",
		slog.String("room_id", room.ID().String()),
		slog.String("hotel_id", room.HotelID().String()),
		slog.Int64("price", room.Price()))

	return queries.NewRoomView(room), nil
}
