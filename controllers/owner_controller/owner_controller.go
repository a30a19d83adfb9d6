package owner_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models/owner_models"
	"github.com/pasoapp/paso/utils"
	"github.com/pasoapp/paso/utils/jwt_tokens"
)

// OwnerController handles salon-owner account requests.
type OwnerController struct {
	DB *pgxpool.Pool
}

// NewOwnerController creates a new OwnerController.
func NewOwnerController(db *pgxpool.Pool) *OwnerController {
	return &OwnerController{DB: db}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
}

// Register creates a new owner account and returns a token pair.
func (oc *OwnerController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := c.Request.Context()

	if _, err := owner_models.GetOwnerByEmail(ctx, oc.DB, email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		logger.ErrorLogger.Errorf("Failed to check existing owner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	owner, err := owner_models.NewOwner(email, passwordHash, req.FirstName, req.LastName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if _, err := owner_models.CreateOwner(ctx, oc.DB, owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	oc.respondWithTokens(c, owner)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an owner and returns a token pair.
func (oc *OwnerController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	owner, err := owner_models.GetOwnerByEmail(c.Request.Context(), oc.DB, email)
	if err != nil {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if !utils.VerifyPassword(req.Password, owner.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	oc.respondWithTokens(c, owner)
}

func (oc *OwnerController) respondWithTokens(c *gin.Context, owner *owner_models.Owner) {
	accessToken, err := jwt_tokens.GenerateAccessToken(owner.ID, owner.TokenVersion)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to generate access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	refreshToken, err := jwt_tokens.GenerateRefreshToken(owner.ID, owner.TokenVersion)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to generate refresh token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"owner":        owner,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
