package salon_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models/salon_models"
	"github.com/pasoapp/paso/utils"
)

// SalonController holds dependencies for salon management operations.
type SalonController struct {
	DB *pgxpool.Pool
}

// NewSalonController creates and returns a new instance of SalonController.
func NewSalonController(db *pgxpool.Pool) (*SalonController, error) {
	if db == nil {
		return nil, errors.New("database pool cannot be nil")
	}
	return &SalonController{DB: db}, nil
}

type CreateSalonRequest struct {
	Name              string  `json:"name" binding:"required"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	Phone             string  `json:"phone"`
	DepositPercentage float64 `json:"depositPercentage" binding:"min=0,max=100"`
	TelegramBotToken  string  `json:"telegramBotToken"`
	TelegramChatID    string  `json:"telegramChatId"`
	BoldAPIKey        string  `json:"boldApiKey"`
	BoldSecretKey     string  `json:"boldSecretKey"`
}

// CreateSalon registers a new salon for the authenticated owner.
func (sc *SalonController) CreateSalon(c *gin.Context) {
	ownerID, err := utils.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	salon, err := salon_models.NewSalon(ownerID, req.Name, req.Address, req.City, req.Phone, req.DepositPercentage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	salon.TelegramBotToken = req.TelegramBotToken
	salon.TelegramChatID = req.TelegramChatID
	salon.BoldAPIKey = req.BoldAPIKey
	salon.BoldSecretKey = req.BoldSecretKey

	if _, err := salon_models.CreateSalon(c.Request.Context(), sc.DB, salon); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create salon"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"salon": salon})
}

// ListSalons returns the public listing of active salons.
func (sc *SalonController) ListSalons(c *gin.Context) {
	salons, err := salon_models.GetActiveSalons(c.Request.Context(), sc.DB)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list salons: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// GetMySalons returns the authenticated owner's salons, credentials included.
func (sc *SalonController) GetMySalons(c *gin.Context) {
	ownerID, err := utils.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	salons, err := salon_models.GetSalonsByOwner(c.Request.Context(), sc.DB, ownerID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list salons for owner %s: %v", ownerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// GetSalon returns one salon by ID.
func (sc *SalonController) GetSalon(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid salon id"})
		return
	}

	salon, err := salon_models.GetSalonByID(c.Request.Context(), sc.DB, salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salon": salon})
}

type UpdateSalonRequest struct {
	Name              *string  `json:"name"`
	Address           *string  `json:"address"`
	City              *string  `json:"city"`
	Phone             *string  `json:"phone"`
	DepositPercentage *float64 `json:"depositPercentage"`
	TelegramBotToken  *string  `json:"telegramBotToken"`
	TelegramChatID    *string  `json:"telegramChatId"`
	BoldAPIKey        *string  `json:"boldApiKey"`
	BoldSecretKey     *string  `json:"boldSecretKey"`
	IsActive          *bool    `json:"isActive"`
}

// UpdateSalon applies a partial update to a salon owned by the caller.
func (sc *SalonController) UpdateSalon(c *gin.Context) {
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

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DepositPercentage != nil {
		updates["deposit_percentage"] = *req.DepositPercentage
	}
	if req.TelegramBotToken != nil {
		updates["telegram_bot_token"] = *req.TelegramBotToken
	}
	if req.TelegramChatID != nil {
		updates["telegram_chat_id"] = *req.TelegramChatID
	}
	if req.BoldAPIKey != nil {
		updates["bold_api_key"] = *req.BoldAPIKey
	}
	if req.BoldSecretKey != nil {
		updates["bold_secret_key"] = *req.BoldSecretKey
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No changes detected for salon update"})
		return
	}

	if err := salon_models.UpdateSalon(c.Request.Context(), sc.DB, salonID, ownerID, updates); err != nil {
		logger.ErrorLogger.Errorf("Failed to update salon %s: %v", salonID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Salon updated"})
}
