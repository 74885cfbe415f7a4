package handlers

import (
	"errors"
	"net/http"

	"busbuddy/internal/booking"
	"busbuddy/internal/http/middleware"
	"busbuddy/internal/store"
	"busbuddy/internal/ticket"

	"github.com/gin-gonic/gin"
)

// App bundles the shared application state the handlers operate on.
type App struct {
	Store *store.Store
	Flow  *booking.Flow
}

func (a *App) ticketService(c *gin.Context) ticket.Service {
	return ticket.Service{RequestID: middleware.GetRequestID(c)}
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// respondStoreError maps store and flow errors to HTTP responses.
func respondStoreError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, "validation_error", ve.Message)
	case errors.Is(err, store.ErrBusNotFound),
		errors.Is(err, store.ErrSeatNotFound),
		errors.Is(err, store.ErrBookingNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, store.ErrSeatBooked),
		errors.Is(err, store.ErrAlreadyCancelled),
		errors.Is(err, store.ErrNotCancellable):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, store.ErrNoBusSelected),
		errors.Is(err, store.ErrNothingSelected),
		errors.Is(err, store.ErrPassengerCount):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

// bindJSONOrError ensures body is present and parsable.
func bindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid request payload: "+err.Error())
		return false
	}
	return true
}
