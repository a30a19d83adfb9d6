package employee_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models/employee_models"
	"github.com/pasoapp/paso/models/salon_models"
	"github.com/pasoapp/paso/utils"
)

type EmployeeController struct{ db *pgxpool.Pool }

// NewEmployeeController creates and returns a new instance of EmployeeController.
func NewEmployeeController(db *pgxpool.Pool) (*EmployeeController, error) {
	if db == nil {
		return nil, errors.New("database pool cannot be nil")
	}
	return &EmployeeController{db: db}, nil
}

// GetEmployeesBySalon lists a salon's active employees (public, used by the
// reservation wizard to pick a barber).
func (ec *EmployeeController) GetEmployeesBySalon(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid salon id"})
		return
	}

	employees, err := employee_models.GetEmployeesBySalon(c.Request.Context(), ec.db, salonID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list employees for salon %s: %v", salonID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
}

// CreateEmployee adds a staff member to a salon owned by the caller.
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	ownerID, err := utils.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid salon id"})
		return
	}

	salon, err := salon_models.GetSalonByID(c.Request.Context(), ec.db, salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}
	if salon.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this salon"})
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	employee, err := employee_models.NewEmployee(salonID, req.Name, req.Position)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if _, err := employee_models.CreateEmployee(c.Request.Context(), ec.db, employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

// DeleteEmployee deactivates a staff member of a salon owned by the caller.
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	ownerID, err := utils.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid salon id"})
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	salon, err := salon_models.GetSalonByID(c.Request.Context(), ec.db, salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}
	if salon.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this salon"})
		return
	}

	if err := employee_models.DeactivateEmployee(c.Request.Context(), ec.db, employeeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
