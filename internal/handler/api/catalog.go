package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 100)"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	var query reqdto.ListHotelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListHotels(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list hotels", nil)
		return
	}
	h.respondHotels(c, views)
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, ok := parseID(c, "Invalid hotel id")
	if !ok {
		return
	}

	view, err := h.q.GetHotel(c.Request.Context(), id)
	if err != nil {
		abortWithCatalogError(c, err)
		return
	}
	res, err := resdto.FromHotelView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List rooms of a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *CatalogHandler) ListHotelRooms(c *gin.Context) {
	id, ok := parseID(c, "Invalid hotel id")
	if !ok {
		return
	}

	views, err := h.q.ListHotelRooms(c.Request.Context(), id)
	if err != nil {
		abortWithCatalogError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "Invalid room id")
	if !ok {
		return
	}

	view, err := h.q.GetRoom(c.Request.Context(), id)
	if err != nil {
		abortWithCatalogError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Search hotels
// @Description City matches exactly, name matches per word; both intersect.
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRequest true "Search criteria"
// @Success 200 {array} resdto.HotelResponse
// @Router /search [post]
func (h *CatalogHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	views, err := h.q.SearchHotels(c.Request.Context(), req.ToCriteria())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	h.respondHotels(c, views)
}

// @Summary Create hotel
// @Description Add a hotel with its rooms to the catalog
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelWithRoomsResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels [post]
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.CreateHotel(c.Request.Context(), req.ToParams())
	if err != nil {
		if errs.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidation, err, "Invalid hotel", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create hotel", nil)
		return
	}

	hotelRes, err := resdto.FromHotelView(created.Hotel)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	rooms, err := resdto.FromRoomViews(created.Rooms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.HotelWithRoomsResponse{HotelResponse: *hotelRes, Rooms: rooms})
}

// @Summary Update room price
// @Description Change a room's nightly price. Existing bookings keep their total.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomPriceRequest true "New nightly price"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *CatalogHandler) UpdateRoomPrice(c *gin.Context) {
	id, ok := parseID(c, "Invalid room id")
	if !ok {
		return
	}

	var req reqdto.UpdateRoomPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateRoomPrice(c.Request.Context(), id, req.Price)
	if err != nil {
		abortWithCatalogError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CatalogHandler) respondHotels(c *gin.Context, views []*queries.HotelView) {
	res, err := resdto.FromHotelViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseID(c *gin.Context, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortWithCatalogError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrHotelNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeHotelNotFound, err, "Hotel not found", nil)
	case errs.Is(err, queries.ErrRoomNotFound), errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeRoomNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidation, err, "Price must be positive", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
