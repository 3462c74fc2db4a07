package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is the stable identifier clients switch on; messages may change.
type Code string

const (
	CodeInvalidRequest   Code = "INVALID_REQUEST"
	CodeValidation       Code = "VALIDATION_FAILED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeHotelNotFound    Code = "HOTEL_NOT_FOUND"
	CodeRoomNotFound     Code = "ROOM_NOT_FOUND"
	CodeBookingNotFound  Code = "BOOKING_NOT_FOUND"
	CodeBookingBusy      Code = "BOOKING_BUSY"
	CodeDateConflict     Code = "DATE_CONFLICT"
	CodeAlreadyCancelled Code = "ALREADY_CANCELLED"
	CodeConflict         Code = "CONFLICT"
	CodeRateLimited      Code = "RATE_LIMITED"
	CodeInternal         Code = "INTERNAL"
)

// Response renders as {"error":{"code":...,"message":...},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, code Code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

func Internal() Response {
	return New(http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// CodeFor is the generic code used when a handler does not pick one.
func CodeFor(status int) Code {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, CodeFor(status), err, msg, detail)
}

// AbortWithCode records err on the context for the request logger and writes
// the envelope. err never reaches the client.
func AbortWithCode(c *gin.Context, status int, code Code, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := New(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
