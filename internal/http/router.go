package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"busbuddy/internal/booking"
	intconfig "busbuddy/internal/config"
	h "busbuddy/internal/http/handlers"
	"busbuddy/internal/http/middleware"
	"busbuddy/internal/payment"
	"busbuddy/internal/seatmap"
	"busbuddy/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the application state and mounts the API surface.
func NewRouter(env intconfig.Env) *gin.Engine {
	st := store.New(seatmap.NewCache(seatmap.Generator{}))
	fl := booking.NewFlow(st, payment.Simulated{Delay: env.PaymentDelay})
	app := &h.App{Store: st, Flow: fl}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		api.GET("/cities", app.GetCities)
		api.GET("/popular-routes", app.GetPopularRoutes)
		api.POST("/search", app.SearchBuses)

		buses := api.Group("/buses")
		buses.GET("", app.GetBuses)
		buses.POST("/sort", app.SortBuses)
		buses.POST("/filter", app.FilterBuses)
		buses.POST("/:id/select", app.SelectBus)

		seats := api.Group("/seats")
		seats.GET("", app.GetSeatMap)
		seats.POST("/select", app.SelectSeats)
		seats.POST("/:number/toggle", app.ToggleSeat)

		api.GET("/selection", app.GetSelection)

		flow := api.Group("/flow")
		flow.GET("", app.GetFlow)
		flow.POST("/continue", app.ContinueFlow)
		flow.POST("/back", app.BackFlow)
		flow.POST("/reset", app.ResetFlow)
		flow.PUT("/passengers/:index", app.SetPassenger)
		flow.PUT("/insurance", app.SetInsurance)
		flow.POST("/pay", app.Pay)

		bookings := api.Group("/bookings")
		bookings.GET("", app.GetBookings)
		bookings.GET("/:id", app.GetBooking)
		bookings.POST("/:id/cancel", app.CancelBooking)
		bookings.GET("/:id/e-ticket", app.GetBookingETicket)
		bookings.GET("/:id/share", app.GetBookingShareText)
	}

	h.SetRouter(r)
	return r
}
