package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListResourceBookings(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	EnqueueWaitlist(c *ginext.Context)
	CancelWaitlistEntry(c *ginext.Context)
	ConfirmWaitlistEntry(c *ginext.Context)
	ListResourceWaitlist(c *ginext.Context)
	ListMyWaitlist(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/resources/:id/bookings", h.ListResourceBookings)
		api.GET("/resources/:id/availability", h.GetAvailability)
		api.GET("/resources/:id/waitlist", h.ListResourceWaitlist)

		// Authenticated
		authed := api.Group("")
		authed.Use(authMW)
		{
			authed.POST("/bookings", h.CreateBooking)
			authed.DELETE("/bookings/:id", h.CancelBooking)
			authed.GET("/bookings", h.ListMyBookings)

			authed.POST("/waitlist", h.EnqueueWaitlist)
			authed.DELETE("/waitlist/:id", h.CancelWaitlistEntry)
			authed.POST("/waitlist/:id/confirm", h.ConfirmWaitlistEntry)
			authed.GET("/waitlist", h.ListMyWaitlist)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
