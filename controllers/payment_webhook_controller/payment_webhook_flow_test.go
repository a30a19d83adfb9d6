package payment_webhook_controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/pasoapp/paso/clients"
	"github.com/pasoapp/paso/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	flowSalonID    = uuid.MustParse("0198c6f2-0000-7000-8000-000000000001")
	flowOwnerID    = uuid.MustParse("0198c6f2-0000-7000-8000-000000000002")
	flowCustomerID = uuid.MustParse("0198c6f2-0000-7000-8000-000000000003")
	flowEmployeeID = uuid.MustParse("0198c6f2-0000-7000-8000-000000000004")
	flowBookingID  = uuid.MustParse("0198c6f2-0000-7000-8000-000000000005")
)

const flowReference = "abc123def456"

func newMockedRouter(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	controller := &PaymentWebhookController{DB: mock, Notifier: clients.NewTelegramNotifier()}
	r.POST("/api/webhooks/bold/:salon_id", controller.BoldWebhook)
	return r, mock
}

func postWebhookTo(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingRowColumns() []string {
	return []string{
		"id", "customer_id", "salon_id", "employee_id", "date", "time", "status",
		"total_price", "deposit_amount", "payment_id", "created_at", "updated_at",
	}
}

func addBookingRow(rows *pgxmock.Rows, id uuid.UUID, status string, totalPrice float64) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, flowCustomerID, flowSalonID, flowEmployeeID, "2026-09-15", "10:00",
		status, totalPrice, 0.0, flowReference, now, now,
	)
}

func salonRows(depositPercentage float64) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "owner_id", "name", "address", "city", "phone", "deposit_percentage",
		"telegram_bot_token", "telegram_chat_id", "bold_api_key", "bold_secret_key",
		"is_active", "created_at", "updated_at",
	}).AddRow(
		flowSalonID, flowOwnerID, "Barbería Central", "Cra 7 #45", "Bogotá", "3001234567",
		depositPercentage, "", "", "", "", true, now, now,
	)
}

func expectAuditInsert(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec("INSERT INTO webhook_events").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func expectPaidTransition(mock pgxmock.PgxPoolIface, depositPaid float64, affected int64) {
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusPaid, depositPaid, flowReference, models.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", affected))
	mock.ExpectCommit()
}

func expectCustomerLookup(mock pgxmock.PgxPoolIface) {
	mock.ExpectQuery("FROM customers").
		WithArgs(flowCustomerID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "phone", "email", "created_at"}).
			AddRow(flowCustomerID, "Carlos", "3009876543", "", time.Now()))
}

// One pending booking, approved payment without an explicit amount: the
// deposit falls back to the salon's percentage and every booking under the
// reference transitions to paid.
func TestBoldWebhook_ApprovedPaymentMarksBookingsPaid(t *testing.T) {
	r, mock := newMockedRouter(t)

	expectAuditInsert(mock)
	mock.ExpectQuery("FROM bookings").
		WithArgs(flowReference).
		WillReturnRows(addBookingRow(pgxmock.NewRows(bookingRowColumns()), flowBookingID, models.BookingStatusPending, 100000))
	mock.ExpectQuery("FROM salons").
		WithArgs(flowSalonID).
		WillReturnRows(salonRows(50))
	expectPaidTransition(mock, 50000, 1)
	expectCustomerLookup(mock)

	w := postWebhookTo(t, r,
		"/api/webhooks/bold/"+flowSalonID.String(),
		`{"orderId": "ORD-`+flowReference+`", "transactionStatus": 4}`,
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeResponse(t, w)["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Delivering the same approved payload twice must leave the bookings in the
// same final state: the second delivery rewrites status and deposit to the
// values the first one set.
func TestBoldWebhook_RepeatedDeliveryIsIdempotent(t *testing.T) {
	r, mock := newMockedRouter(t)
	payload := `{"orderId": "ORD-` + flowReference + `", "transactionStatus": 4}`
	path := "/api/webhooks/bold/" + flowSalonID.String()

	statuses := []string{models.BookingStatusPending, models.BookingStatusPaid}
	for _, status := range statuses {
		expectAuditInsert(mock)
		mock.ExpectQuery("FROM bookings").
			WithArgs(flowReference).
			WillReturnRows(addBookingRow(pgxmock.NewRows(bookingRowColumns()), flowBookingID, status, 100000))
		mock.ExpectQuery("FROM salons").
			WithArgs(flowSalonID).
			WillReturnRows(salonRows(50))
		// Same deposit both times: the transition args are identical, so the
		// second delivery cannot change the stored state.
		expectPaidTransition(mock, 50000, 1)
		expectCustomerLookup(mock)

		w := postWebhookTo(t, r, path, payload)
		assert.Equal(t, http.StatusOK, w.Code, "status %s", status)
		assert.Equal(t, "ok", decodeResponse(t, w)["status"], "status %s", status)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

// An approved payment whose reference matches no booking is acknowledged with
// "ok" so the gateway stops retrying, and nothing past the lookup runs.
func TestBoldWebhook_UnknownReferenceAnsweredOk(t *testing.T) {
	r, mock := newMockedRouter(t)

	expectAuditInsert(mock)
	mock.ExpectQuery("FROM bookings").
		WithArgs(flowReference).
		WillReturnRows(pgxmock.NewRows(bookingRowColumns()))

	w := postWebhookTo(t, r,
		"/api/webhooks/bold/"+flowSalonID.String(),
		`{"orderId": "ORD-`+flowReference+`", "transactionStatus": 4}`,
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeResponse(t, w)["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The booking's own salon is authoritative; a path parameter naming a
// different salon must not select that salon's configuration.
func TestBoldWebhook_PathSalonMismatchUsesBookingSalon(t *testing.T) {
	r, mock := newMockedRouter(t)
	otherSalonID := uuid.MustParse("0198c6f2-0000-7000-8000-0000000000ff")

	expectAuditInsert(mock)
	mock.ExpectQuery("FROM bookings").
		WithArgs(flowReference).
		WillReturnRows(addBookingRow(pgxmock.NewRows(bookingRowColumns()), flowBookingID, models.BookingStatusPending, 100000))
	// The salon lookup must carry the booking's salon id, not the path's.
	mock.ExpectQuery("FROM salons").
		WithArgs(flowSalonID).
		WillReturnRows(salonRows(50))
	expectPaidTransition(mock, 50000, 1)
	expectCustomerLookup(mock)

	w := postWebhookTo(t, r,
		"/api/webhooks/bold/"+otherSalonID.String(),
		`{"orderId": "ORD-`+flowReference+`", "transactionStatus": 4}`,
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeResponse(t, w)["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A cancelled booking sharing the reference stays out of the reported totals;
// the deposit is computed from the live bookings only.
func TestBoldWebhook_CancelledBookingExcludedFromTotals(t *testing.T) {
	r, mock := newMockedRouter(t)
	cancelledID := uuid.MustParse("0198c6f2-0000-7000-8000-0000000000aa")

	expectAuditInsert(mock)
	rows := pgxmock.NewRows(bookingRowColumns())
	rows = addBookingRow(rows, flowBookingID, models.BookingStatusPending, 100000)
	rows = addBookingRow(rows, cancelledID, models.BookingStatusCancelled, 40000)
	mock.ExpectQuery("FROM bookings").
		WithArgs(flowReference).
		WillReturnRows(rows)
	mock.ExpectQuery("FROM salons").
		WithArgs(flowSalonID).
		WillReturnRows(salonRows(50))
	// 50% of the pending 100000 only; the cancelled 40000 must not leak in.
	expectPaidTransition(mock, 50000, 1)
	expectCustomerLookup(mock)

	w := postWebhookTo(t, r,
		"/api/webhooks/bold/"+flowSalonID.String(),
		`{"orderId": "ORD-`+flowReference+`", "transactionStatus": 4}`,
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeResponse(t, w)["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
