package services_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models/salon_models"
	"github.com/pasoapp/paso/models/service_models"
	"github.com/pasoapp/paso/utils"
)

type ServiceController struct{ db *pgxpool.Pool }

// NewServiceController creates and returns a new instance of ServiceController.
func NewServiceController(db *pgxpool.Pool) (*ServiceController, error) {
	if db == nil {
		return nil, errors.New("database pool cannot be nil")
	}
	return &ServiceController{db: db}, nil
}

// GetServicesBySalon lists a salon's active services (public).
func (sc *ServiceController) GetServicesBySalon(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid salon id"})
		return
	}

	services, err := service_models.GetServicesBySalon(c.Request.Context(), sc.db, salonID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list services for salon %s: %v", salonID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
}

// CreateService adds a service to a salon owned by the caller.
func (sc *ServiceController) CreateService(c *gin.Context) {
	salon, ok := sc.requireOwnedSalon(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	service, err := service_models.NewService(salon.ID, req.Name, req.Description, req.Price, req.DurationMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := service_models.CreateService(c.Request.Context(), sc.db, service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"durationMinutes"`
	IsActive        *bool    `json:"isActive"`
}

// UpdateService edits a service of a salon owned by the caller.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	salon, ok := sc.requireOwnedSalon(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	services, err := service_models.GetServicesByIDs(c.Request.Context(), sc.db, salon.ID, []uuid.UUID{serviceID})
	if err != nil || len(services) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	service := services[0]

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := service_models.UpdateService(c.Request.Context(), sc.db, service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// DeleteService deactivates a service of a salon owned by the caller.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	salon, ok := sc.requireOwnedSalon(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	services, err := service_models.GetServicesByIDs(c.Request.Context(), sc.db, salon.ID, []uuid.UUID{serviceID})
	if err != nil || len(services) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	if err := service_models.DeactivateService(c.Request.Context(), sc.db, serviceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// requireOwnedSalon resolves the salon from the path and checks the caller
// owns it. Writes the error response itself when the check fails.
func (sc *ServiceController) requireOwnedSalon(c *gin.Context) (*salon_models.Salon, bool) {
	ownerID, err := utils.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid salon id"})
		return nil, false
	}

	salon, err := salon_models.GetSalonByID(c.Request.Context(), sc.db, salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return nil, false
	}
	if salon.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this salon"})
		return nil, false
	}
	return salon, true
}
