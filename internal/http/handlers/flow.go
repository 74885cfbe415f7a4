package handlers

import (
	"net/http"
	"strconv"

	"busbuddy/internal/domain"
	"busbuddy/internal/http/middleware"
	"busbuddy/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetFlow reports the checkout state: stage, passenger slots, insurance
// choice and the itemized fare.
func (a *App) GetFlow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stage":      a.Flow.Stage(),
		"passengers": a.Flow.Passengers(),
		"insurance":  a.Flow.Insurance(),
		"fare":       a.Flow.FareSummary(),
	})
}

// ContinueFlow advances the checkout one stage.
func (a *App) ContinueFlow(c *gin.Context) {
	stage, err := a.Flow.Continue()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": stage, "passengers": a.Flow.Passengers()})
}

// BackFlow moves the checkout one stage backwards, keeping entered data.
func (a *App) BackFlow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stage": a.Flow.Back()})
}

// ResetFlow returns to seat selection and discards entered data.
func (a *App) ResetFlow(c *gin.Context) {
	a.Flow.Reset()
	c.JSON(http.StatusOK, gin.H{"stage": a.Flow.Stage()})
}

// SetPassenger fills one passenger slot during the details stage.
func (a *App) SetPassenger(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, http.StatusBadRequest, "invalid_index", "invalid passenger index")
		return
	}

	var p domain.Passenger
	if !bindJSONOrError(c, &p) {
		return
	}
	if err := a.Flow.SetPassenger(index, p); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"passengers": a.Flow.Passengers()})
}

// SetInsurance toggles the optional travel insurance.
func (a *App) SetInsurance(c *gin.Context) {
	var req struct {
		OptIn bool `json:"optIn"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}
	a.Flow.SetInsurance(req.OptIn)
	c.JSON(http.StatusOK, gin.H{"insurance": req.OptIn, "fare": a.Flow.FareSummary()})
}

// Pay submits the payment and, on success, returns the committed
// booking.
func (a *App) Pay(c *gin.Context) {
	var details domain.PaymentDetails
	if !bindJSONOrError(c, &details) {
		return
	}

	committed, err := a.Flow.Pay(c.Request.Context(), details)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "flow", "booking_confirmed",
		"booking_id="+committed.ID)
	c.JSON(http.StatusCreated, gin.H{"booking": committed})
}
