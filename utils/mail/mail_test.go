package mail

import (
	"testing"

	"github.com/pasoapp/paso/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitLoggers()
	m.Run()
}

func TestSendBookingConfirmation_Skips(t *testing.T) {
	t.Run("EmptyRecipient", func(t *testing.T) {
		err := SendBookingConfirmation("", "Carlos", "Barbería", "2026-02-14", "15:30", 100000, 50000, "")
		assert.NoError(t, err)
	})

	t.Run("SMTPNotConfigured", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")
		err := SendBookingConfirmation("carlos@example.com", "Carlos", "Barbería", "2026-02-14", "15:30", 100000, 50000, "")
		assert.NoError(t, err)
	})
}
