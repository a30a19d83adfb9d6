package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pasoapp/paso/config/db"
	"github.com/pasoapp/paso/controllers/employee_controller"
	"github.com/pasoapp/paso/controllers/salon_controller"
	"github.com/pasoapp/paso/controllers/services_controller"
	"github.com/pasoapp/paso/middlewares/auth"
)

func RegisterSalonRoutes(router *gin.Engine) error {
	salonController, err := salon_controller.NewSalonController(db.DB)
	if err != nil {
		return fmt.Errorf("salon routes init: %w", err)
	}
	serviceController, err := services_controller.NewServiceController(db.DB)
	if err != nil {
		return fmt.Errorf("salon routes init: %w", err)
	}
	employeeController, err := employee_controller.NewEmployeeController(db.DB)
	if err != nil {
		return fmt.Errorf("salon routes init: %w", err)
	}

	// Public marketplace endpoints used by the reservation wizard.
	public := router.Group("/api")
	{
		public.GET("/salons", salonController.ListSalons)
		public.GET("/salons/:salon_id", salonController.GetSalon)
		public.GET("/salons/:salon_id/services", serviceController.GetServicesBySalon)
		public.GET("/salons/:salon_id/employees", employeeController.GetEmployeesBySalon)
	}

	// Owner management endpoints.
	protected := router.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/salons", salonController.CreateSalon)
		protected.GET("/me/salons", salonController.GetMySalons)
		protected.PATCH("/salons/:salon_id", salonController.UpdateSalon)

		protected.POST("/salons/:salon_id/services", serviceController.CreateService)
		protected.PATCH("/salons/:salon_id/services/:service_id", serviceController.UpdateService)
		protected.DELETE("/salons/:salon_id/services/:service_id", serviceController.DeleteService)

		protected.POST("/salons/:salon_id/employees", employeeController.CreateEmployee)
		protected.DELETE("/salons/:salon_id/employees/:employee_id", employeeController.DeleteEmployee)
	}

	return nil
}
