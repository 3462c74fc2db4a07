package api

import (
	"net/http"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a room for a date range. Identical concurrent requests get 409.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings, optionally filtered by a case-insensitive guest name fragment
// @Tags bookings
// @Produce json
// @Param guest_name query string false "Guest name fragment"
// @Param guest query string false "Alias of guest_name"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), query.Filter())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeBookingNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking. The record stays listed with status cancelled.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelBookingResponse{
		Message: "Booking cancelled successfully",
		Booking: resdto.FromBookingView(view),
	})
}

func abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrBusy):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeBookingBusy, err, "Another request for this room and dates is in progress, please try again", nil)
	case errs.Is(err, commands.ErrDateConflict):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeDateConflict, err, "Room is already booked for the selected dates", nil)
	case errs.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeAlreadyCancelled, err, "Booking is already cancelled", nil)
	case errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeRoomNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeBookingNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrRateLimited):
		httperr.AbortWithCode(c, http.StatusTooManyRequests, httperr.CodeRateLimited, err, "Too many booking attempts, please wait before trying again", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidation, err, validationMessage(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func validationMessage(err error) string {
	switch {
	case errs.Is(err, booking.ErrPastDate):
		return "Check-in date cannot be in the past"
	case errs.Is(err, booking.ErrInvertedRange):
		return "Check-out date must be after check-in date"
	case errs.Is(err, booking.ErrStayTooLong):
		return "Stay exceeds the maximum number of nights"
	case errs.Is(err, booking.ErrInvalidDate):
		return "Dates must use the YYYY-MM-DD format"
	case errs.Is(err, booking.ErrInvalidGuestName):
		return "Guest name must be between 1 and 100 characters"
	case errs.Is(err, booking.ErrInvalidEmail):
		return "Invalid guest email"
	default:
		return "Invalid booking request"
	}
}
