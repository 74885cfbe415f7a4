package handlers

import (
	"net/http"
	"strconv"

	"busbuddy/internal/catalog"
	"busbuddy/internal/http/middleware"
	"busbuddy/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetCities suggests city names matching the q prefix/substring.
func (a *App) GetCities(c *gin.Context) {
	q := c.Query("q")
	limit := 5
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"cities": catalog.Cities()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": catalog.SuggestCities(q, limit)})
}

// GetPopularRoutes returns the curated quick-pick routes.
func (a *App) GetPopularRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": catalog.PopularRoutes()})
}

// SearchBuses runs a new search and replaces the current result set.
func (a *App) SearchBuses(c *gin.Context) {
	var params catalog.SearchParams
	if !bindJSONOrError(c, &params) {
		return
	}

	buses := a.Store.SearchBuses(params)
	utils.LogEvent(middleware.GetRequestID(c), "search", "run",
		params.Source+" -> "+params.Destination+" on "+params.Date)
	c.JSON(http.StatusOK, gin.H{"buses": buses, "count": len(buses)})
}

// GetBuses returns the current result set without re-searching.
func (a *App) GetBuses(c *gin.Context) {
	buses := a.Store.Buses()
	c.JSON(http.StatusOK, gin.H{"buses": buses, "count": len(buses)})
}

// SortBuses reorders the current result set in place.
func (a *App) SortBuses(c *gin.Context) {
	var req struct {
		By string `json:"by" binding:"required"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}

	buses := a.Store.SortBuses(req.By)
	c.JSON(http.StatusOK, gin.H{"buses": buses, "count": len(buses)})
}

// FilterBuses returns a narrowed view of the current result set. The
// stored results stay intact so filters can be relaxed again.
func (a *App) FilterBuses(c *gin.Context) {
	var f catalog.Filter
	if !bindJSONOrError(c, &f) {
		return
	}

	buses := a.Store.FilterBuses(f)
	c.JSON(http.StatusOK, gin.H{"buses": buses, "count": len(buses)})
}
