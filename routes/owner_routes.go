package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pasoapp/paso/config/db"
	"github.com/pasoapp/paso/controllers/owner_controller"
	middleware "github.com/pasoapp/paso/middlewares"
)

func RegisterOwnerRoutes(router *gin.Engine) {
	ownerController := owner_controller.NewOwnerController(db.DB)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", middleware.NewRateLimiter("5-10m", "ownerRegister"), ownerController.Register)
		auth.POST("/login", middleware.NewRateLimiter("10-5m", "ownerLogin"), ownerController.Login)
	}
}
