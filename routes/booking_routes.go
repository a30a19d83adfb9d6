package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pasoapp/paso/config/db"
	"github.com/pasoapp/paso/controllers/booking_controller"
	middleware "github.com/pasoapp/paso/middlewares"
	"github.com/pasoapp/paso/middlewares/auth"
)

func RegisterBookingRoutes(router *gin.Engine) {
	bookingController := booking_controller.NewBookingController(db.DB)

	// Public reservation wizard endpoint.
	router.POST("/api/bookings", middleware.NewRateLimiter("20-10m", "createBooking"), bookingController.Book)

	// Owner endpoints.
	protected := router.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/salons/:salon_id/bookings", bookingController.GetSalonBookings)
		protected.POST("/bookings/:booking_id/cancel", bookingController.CancelBooking)
	}
}
