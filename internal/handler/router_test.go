//go:build unit

package handler_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/arbiter"
	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/infra/ledger"
	"hotel-booking/internal/infra/messaging"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *catalog.Store
	roomID string
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	reqLogger := middleware.NewLogger(cfg.Log)
	logger := reqLogger.GetSlogLogger()

	clk := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local))
	services := booking.NewServices(clk, booking.NewNightlyPriceCalculator(), cfg.Booking.MaxStayNights)

	l := ledger.NewLedger(logger)
	s.store = catalog.NewStore(logger)
	searchCache := cache.NewMemoryCache(cfg.Search.CacheTTL, clk)
	s.store.OnChange(func() { searchCache.Purge(context.Background()) })

	h, rooms, err := builder.NewHotelBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.store.AddHotel(context.Background(), h, rooms))
	s.roomID = rooms[0].ID().String()

	bookingCmds := commands.NewBookingCommands(l, s.store, arbiter.NewArbiter(logger), arbiter.NewRoomGate(),
		nil, messaging.NewLogPublisher(logger), services, logger)
	catalogCmds := commands.NewCatalogCommands(s.store, logger)
	catalogQueries := queries.NewCatalogQueries(s.store, searchCache,
		queries.SearchLimits{Default: cfg.Search.DefaultLimit, Max: cfg.Search.MaxLimit})

	s.router = gin.New()
	s.Require().NoError(handler.NewRouter(s.router, cfg, reqLogger, handler.Handlers{
		Booking: api.NewBookingHandler(bookingCmds, queries.NewBookingQueries(l)),
		Catalog: api.NewCatalogHandler(catalogCmds, catalogQueries),
		Health:  api.NewHealthHandler(clk),
	}))
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) book(checkIn, checkOut string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", map[string]any{
		"room_id":        s.roomID,
		"guest_name":     "Ana Gomez",
		"guest_email":    "ana@example.com",
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
	})
}

func (s *RouterTestSuite) TestHealth() {
	for _, path := range []string{"/health", "/api/health"} {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
		s.Equal(http.StatusOK, rec.Code, path)
		s.Contains(rec.Body.String(), `"healthy"`)
	}
}

func (s *RouterTestSuite) TestBookingLifecycle() {
	rec := s.book("2025-03-01", "2025-03-05")
	var created resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	s.Equal(int64(100000), created.TotalPrice)

	rec = s.book("2025-03-04", "2025-03-08")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "DATE_CONFLICT")

	rec = s.book("2025-03-05", "2025-03-08")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	rec = s.book("2025-02-28", "2025-03-01")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "in the past")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+created.ID, nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+created.ID, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")

	rec = s.book("2025-03-01", "2025-03-05")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?guest_name=GOMEZ", nil)
	var listed []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
	s.Len(listed, 3)
	s.Equal("cancelled", listed[0].Status)
}

func (s *RouterTestSuite) TestUnknownRoom() {
	s.roomID = "6f1c1a52-3c1e-4c61-9a8e-2b0f3f7d9a10"
	rec := s.book("2025-03-01", "2025-03-05")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
}

func (s *RouterTestSuite) TestCatalogAndSearch() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/search", map[string]any{"city": "mumbai"})
	var found []resdto.HotelResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &found)
	s.Len(found, 1)

	reqBody := builder.NewHotelBuilder().WithName("Sea View Inn").BuildCreateRequestDTO()
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/hotels", reqBody)
	var created resdto.HotelWithRoomsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/search", map[string]any{"city": "Mumbai"})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &found)
	s.Len(found, 2, "new hotels are visible to cached searches")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/hotels/"+created.ID.String()+"/rooms", nil)
	var rooms []resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
	s.Len(rooms, 1)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/"+rooms[0].ID.String(), nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/hotels?limit=1", nil)
	var page []resdto.HotelResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
	s.Len(page, 1)
}

func (s *RouterTestSuite) TestRoomPriceChange() {
	rec := s.book("2025-03-01", "2025-03-03")
	var before resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &before)
	s.Equal(int64(50000), before.TotalPrice)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/search", map[string]any{"city": "Mumbai"})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/rooms/"+s.roomID, map[string]any{"price": 30000})
	var room resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &room)
	s.Equal(int64(30000), room.Price)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/"+s.roomID, nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &room)
	s.Equal(int64(30000), room.Price)

	rec = s.book("2025-03-10", "2025-03-12")
	var after resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &after)
	s.Equal(int64(60000), after.TotalPrice)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+before.ID, nil)
	var stored resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &stored)
	s.Equal(int64(50000), stored.TotalPrice)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/rooms/6f1c1a52-3c1e-4c61-9a8e-2b0f3f7d9a10", map[string]any{"price": 30000})
	httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "ROOM_NOT_FOUND")
}

func (s *RouterTestSuite) TestCORSPreflight() {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodOptions, "/api/bookings", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "POST",
	})
	s.Equal(http.StatusNoContent, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"})
}
