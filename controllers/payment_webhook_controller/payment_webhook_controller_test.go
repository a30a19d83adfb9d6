package payment_webhook_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pasoapp/paso/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	controller := &PaymentWebhookController{}
	r.POST("/api/webhooks/bold/:salon_id", controller.BoldWebhook)
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/api/webhooks/bold/3f2c4f90-0000-0000-0000-000000000001", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMain(m *testing.M) {
	logger.InitLoggers()
	m.Run()
}

func TestBoldWebhook_MethodNotAllowed(t *testing.T) {
	r := newWebhookRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/webhooks/bold/3f2c4f90-0000-0000-0000-000000000001", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestBoldWebhook_MalformedJSON(t *testing.T) {
	r := newWebhookRouter()

	for _, body := range []string{"", "not json", "{broken"} {
		w := postWebhook(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %q", body)

		resp := decodeResponse(t, w)
		assert.Equal(t, "error", resp["status"])
	}
}

func TestBoldWebhook_MissingReference(t *testing.T) {
	r := newWebhookRouter()

	w := postWebhook(t, r, `{"transactionStatus": 4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["message"], "reference")
}

func TestBoldWebhook_UnrelatedEventIgnored(t *testing.T) {
	r := newWebhookRouter()

	w := postWebhook(t, r, `{"orderId": "ORD-9", "transactionStatus": 1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "ignored", resp["status"])
}

func TestBoldWebhook_V2RejectionIgnored(t *testing.T) {
	r := newWebhookRouter()

	w := postWebhook(t, r, `{"type": "SALE_REJECTED", "data": {"metadata": {"reference": "55"}}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "ignored", resp["status"])
}
