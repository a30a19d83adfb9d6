package service_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	salonID := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		service, err := NewService(salonID, "Corte clásico", "Corte con tijera", 35000, 45)
		require.NoError(t, err)
		assert.Equal(t, salonID, service.SalonID)
		assert.Equal(t, 35000.0, service.Price)
		assert.True(t, service.IsActive)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		_, err := NewService(salonID, "Corte", "", -1, 30)
		assert.Error(t, err)
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		_, err := NewService(salonID, "Corte", "", 35000, 0)
		assert.Error(t, err)
	})
}
