package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pasoapp/paso/logger"
)

// GetOwnerIDFromContext extracts the authenticated owner's ID from the Gin
// context. The auth middleware stores it as a string under "sub".
func GetOwnerIDFromContext(c *gin.Context) (uuid.UUID, error) {
	sub, exists := c.Get("sub")
	if !exists {
		logger.ErrorLogger.Error("Owner ID not found in context.")
		return uuid.Nil, ErrOwnerIDNotFound
	}

	ownerIDStr, ok := sub.(string)
	if !ok {
		logger.ErrorLogger.Errorf("Owner ID in context is not a string, actual type: %T", sub)
		return uuid.Nil, fmt.Errorf("internal server error: invalid owner ID format in context")
	}

	ownerID, err := uuid.Parse(ownerIDStr)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to parse owner ID string '%s' to UUID: %v", ownerIDStr, err)
		return uuid.Nil, fmt.Errorf("internal server error: invalid owner ID format")
	}
	return ownerID, nil
}
