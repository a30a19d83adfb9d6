package clients

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/pasoapp/paso/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitLoggers()
	m.Run()
}

func TestTelegramNotifier_SendMessage(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  func()
		expectedError bool
	}{
		{
			name: "Success",
			mockResponse: func() {
				gock.New("https://api.telegram.org").
					Post("/bottest-token/sendMessage").
					Reply(200).
					JSON(map[string]interface{}{"ok": true})
			},
			expectedError: false,
		},
		{
			name: "TelegramError",
			mockResponse: func() {
				gock.New("https://api.telegram.org").
					Post("/bottest-token/sendMessage").
					Reply(400).
					JSON(map[string]interface{}{"ok": false, "description": "chat not found"})
			},
			expectedError: true,
		},
		{
			name: "ServerError",
			mockResponse: func() {
				gock.New("https://api.telegram.org").
					Post("/bottest-token/sendMessage").
					Reply(502)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()
			tt.mockResponse()

			notifier := NewTelegramNotifier()
			err := notifier.SendMessage(context.Background(), "test-token", "123456", "✅ Pago confirmado")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, gock.IsDone())
		})
	}
}

func TestTelegramNotifier_SkipsWithoutCredentials(t *testing.T) {
	defer gock.Off()
	// No mock registered: any outbound request would fail the test.
	gock.DisableNetworking()
	defer gock.EnableNetworking()

	notifier := NewTelegramNotifier()

	assert.NoError(t, notifier.SendMessage(context.Background(), "", "123", "text"))
	assert.NoError(t, notifier.SendMessage(context.Background(), "token", "", "text"))
}
