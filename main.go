package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pasoapp/paso/config"
	"github.com/pasoapp/paso/config/db"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/middlewares/cors"
	"github.com/pasoapp/paso/routes"
)

func init() {
	logger.InitLoggers()
	config.LoadEnv()
}

func main() {
	db.RunMigrations("migrations")
	db.Connect()
	defer db.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.CorsMiddleware())

	// The payment gateway probes webhook URLs with GET; those must get a 405,
	// not a 404.
	r.HandleMethodNotAllowed = true

	routes.RegisterOwnerRoutes(r)
	if err := routes.RegisterSalonRoutes(r); err != nil {
		logger.ErrorLogger.Errorf("Failed to register salon routes: %v", err)
		os.Exit(1)
	}
	routes.RegisterBookingRoutes(r)
	routes.RegisterWebhookRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok from paso api"})
	})

	logger.InfoLogger.Infof("Starting PASO API on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.ErrorLogger.Errorf("Server exited: %v", err)
		os.Exit(1)
	}
}
