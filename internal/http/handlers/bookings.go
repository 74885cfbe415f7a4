package handlers

import (
	"net/http"

	"busbuddy/internal/http/middleware"
	"busbuddy/internal/store"
	"busbuddy/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetBookings lists bookings, optionally narrowed by ?filter=
// all|upcoming|completed|cancelled. Newest first.
func (a *App) GetBookings(c *gin.Context) {
	filter := store.BookingFilter(c.DefaultQuery("filter", string(store.FilterAll)))
	switch filter {
	case store.FilterAll, store.FilterUpcoming, store.FilterCompleted, store.FilterCancelled:
	default:
		respondError(c, http.StatusBadRequest, "invalid_filter", "unknown booking filter")
		return
	}

	bookings := a.Store.Bookings(filter)
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GetBooking returns one booking by id.
func (a *App) GetBooking(c *gin.Context) {
	b, ok := a.Store.Booking(c.Param("id"))
	if !ok {
		respondStoreError(c, store.ErrBookingNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBooking cancels an upcoming booking.
func (a *App) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if err := a.Store.CancelBooking(id); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "cancel", "booking_id="+id)
	b, _ := a.Store.Booking(id)
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GetBookingETicket returns the booking's e-ticket PDF (inline).
func (a *App) GetBookingETicket(c *gin.Context) {
	b, ok := a.Store.Booking(c.Param("id"))
	if !ok {
		respondStoreError(c, store.ErrBookingNotFound)
		return
	}

	pdfBytes, filename, err := a.ticketService(c).ETicket(b)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pdf_failed", "failed to generate e-ticket")
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetBookingShareText returns the short shareable trip summary.
func (a *App) GetBookingShareText(c *gin.Context) {
	b, ok := a.Store.Booking(c.Param("id"))
	if !ok {
		respondStoreError(c, store.ErrBookingNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": a.ticketService(c).Summary(b)})
}
