package salon_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalon(t *testing.T) {
	ownerID := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		salon, err := NewSalon(ownerID, "Barbería El Corte", "Cra 7 #45-10", "Bogotá", "3001234567", 50)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, salon.ID)
		assert.Equal(t, ownerID, salon.OwnerID)
		assert.Equal(t, 50.0, salon.DepositPercentage)
		assert.True(t, salon.IsActive)
	})

	t.Run("DepositPercentageBounds", func(t *testing.T) {
		_, err := NewSalon(ownerID, "X", "", "", "", -1)
		assert.Error(t, err)

		_, err = NewSalon(ownerID, "X", "", "", "", 101)
		assert.Error(t, err)

		_, err = NewSalon(ownerID, "X", "", "", "", 0)
		assert.NoError(t, err)

		_, err = NewSalon(ownerID, "X", "", "", "", 100)
		assert.NoError(t, err)
	})
}
