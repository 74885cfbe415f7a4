package handlers

import (
	"net/http"
	"strconv"

	"busbuddy/internal/http/middleware"
	"busbuddy/internal/utils"

	"github.com/gin-gonic/gin"
)

// SelectBus picks a bus from the current results and resets the seat
// selection and checkout flow.
func (a *App) SelectBus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_bus_id", "invalid bus id")
		return
	}

	bus, err := a.Store.SelectBus(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	a.Flow.Reset()

	utils.LogEvent(middleware.GetRequestID(c), "seats", "select_bus",
		"bus_id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

// GetSeatMap returns the selected bus's full layout with live statuses.
func (a *App) GetSeatMap(c *gin.Context) {
	seats, err := a.Store.SeatMap()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	bus, _ := a.Store.SelectedBus()
	c.JSON(http.StatusOK, gin.H{"bus": bus, "seats": seats})
}

// ToggleSeat selects or deselects one seat by number.
func (a *App) ToggleSeat(c *gin.Context) {
	number := c.Param("number")

	selected, err := a.Store.ToggleSeat(number)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seatNumber": number,
		"selected":   selected,
		"selection":  a.Store.SelectedSeats(),
		"totalFare":  a.Store.TotalFare(),
	})
}

// SelectSeats selects a whole list of seats in one call. The list is a
// single string, comma/semicolon separated, e.g. "L1A, L1B".
func (a *App) SelectSeats(c *gin.Context) {
	var req struct {
		Seats string `json:"seats" binding:"required"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}
	numbers := utils.SplitSeatList(req.Seats)
	if len(numbers) == 0 {
		respondError(c, http.StatusBadRequest, "invalid_payload", "no seat numbers given")
		return
	}

	selection, err := a.Store.SelectSeats(numbers)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "seats", "select_bulk",
		"count="+strconv.Itoa(len(numbers)))
	c.JSON(http.StatusOK, gin.H{
		"selection": selection,
		"totalFare": a.Store.TotalFare(),
	})
}

// GetSelection summarizes the current seat selection and its fare.
func (a *App) GetSelection(c *gin.Context) {
	seats := a.Store.SelectedSeats()
	c.JSON(http.StatusOK, gin.H{
		"seats":     seats,
		"count":     len(seats),
		"totalFare": a.Store.TotalFare(),
	})
}
