package payment_webhook_controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pasoapp/paso/clients"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
	"github.com/pasoapp/paso/models/booking_models"
	"github.com/pasoapp/paso/models/customer_models"
	"github.com/pasoapp/paso/models/salon_models"
)

// PaymentWebhookController converts inbound Bold payment notifications into
// booking state transitions plus a best-effort Telegram notification.
type PaymentWebhookController struct {
	DB       models.Querier
	Notifier *clients.TelegramNotifier
}

// NewPaymentWebhookController creates a new payment webhook controller.
func NewPaymentWebhookController(db models.Querier) *PaymentWebhookController {
	return &PaymentWebhookController{
		DB:       db,
		Notifier: clients.NewTelegramNotifier(),
	}
}

// BoldWebhook is the single entry point for Bold payment notifications.
// Bold retries deliveries, so every successfully parsed request gets a
// 200-class response — including unrelated events ("ignored") and references
// we no longer recognize ("ok" with an anomaly log). Only malformed input and
// internal failures produce error statuses.
func (pc *PaymentWebhookController) BoldWebhook(c *gin.Context) {
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to read webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid body"})
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil || payload == nil {
		logger.ErrorLogger.Errorf("Invalid webhook payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid JSON payload"})
		return
	}

	ctx := c.Request.Context()
	salonParam := c.Param("salon_id")

	// Audit the raw event before doing anything with it. A failed insert is
	// logged but never stops processing.
	pc.auditEvent(ctx, salonParam, payload, bodyBytes)

	reference := ExtractOrderReference(payload)
	if reference == "" {
		logger.ErrorLogger.Errorf("Webhook for salon %s carried no order reference", salonParam)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "missing order reference"})
		return
	}

	if !IsApprovedPayment(payload) {
		logger.InfoLogger.Infof("Ignoring non-approval event for reference %s", reference)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	bookings, err := booking_models.GetBookingsByPaymentReference(ctx, pc.DB, reference)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings for reference %s: %v", reference, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if len(bookings) == 0 {
		// Idempotent no-op. Answering "ok" avoids gateway retries and does
		// not leak whether a booking exists.
		logger.WarnLogger.Warnf("Approved payment for unknown reference %s (salon %s)", reference, salonParam)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	// Cancelled bookings under the reference are excluded from the transition,
	// so they must not inflate the totals reported to the salon either.
	var totalPrice float64
	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		totalPrice += b.TotalPrice
	}

	// The salon record supplies the deposit percentage fallback and the
	// Telegram credentials. Per the hardened webhook behavior, a missing or
	// unparseable salon never fails the transition.
	salon := pc.lookupSalon(ctx, salonParam, bookings[0].SalonID)

	var explicitAmount *float64
	if amount, ok := ExtractPaidAmount(payload); ok {
		explicitAmount = &amount
	}
	depositPercentage := 0.0
	if salon != nil {
		depositPercentage = salon.DepositPercentage
	}
	depositPaid, balanceDue := ComputeAmounts(totalPrice, explicitAmount, depositPercentage)

	if _, err := booking_models.MarkBookingsPaidByReference(ctx, pc.DB, reference, depositPaid); err != nil {
		logger.ErrorLogger.Errorf("Failed to confirm bookings for reference %s: %v", reference, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	pc.notifySalon(ctx, salon, bookings[0].CustomerID, reference, totalPrice, depositPaid, balanceDue)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// auditEvent records the raw webhook payload for replay and debugging.
func (pc *PaymentWebhookController) auditEvent(ctx context.Context, salonParam string, payload map[string]interface{}, raw []byte) {
	if pc.DB == nil {
		return
	}

	eventType, _ := payload["type"].(string)

	var salonID interface{}
	if id, err := uuid.Parse(salonParam); err == nil {
		salonID = id
	}

	if _, err := pc.DB.Exec(ctx,
		`INSERT INTO webhook_events (salon_id, event_type, raw_payload) VALUES ($1, $2, $3)`,
		salonID, eventType, string(raw),
	); err != nil {
		logger.ErrorLogger.Errorf("Failed to log webhook event: %v", err)
	}
}

// lookupSalon resolves the salon for the matched bookings. The booking's own
// salon is authoritative: the path parameter only gets logged when it is
// invalid or points at a different salon, so a misrouted delivery can never
// borrow another tenant's deposit percentage or Telegram credentials. Returns
// nil when the salon row is gone; callers must tolerate that.
func (pc *PaymentWebhookController) lookupSalon(ctx context.Context, salonParam string, bookingSalonID uuid.UUID) *salon_models.Salon {
	if paramID, err := uuid.Parse(salonParam); err != nil {
		logger.WarnLogger.Warnf("Webhook path carried invalid salon id %q, using booking's salon %s", salonParam, bookingSalonID)
	} else if paramID != bookingSalonID {
		logger.WarnLogger.Warnf("Webhook path salon %s does not match booking salon %s, using booking's salon", paramID, bookingSalonID)
	}

	salon, err := salon_models.GetSalonByID(ctx, pc.DB, bookingSalonID)
	if err != nil {
		logger.WarnLogger.Warnf("Salon %s not found for webhook: %v", bookingSalonID, err)
		return nil
	}
	return salon
}

// notifySalon sends the confirmation summary to the salon's Telegram channel.
// Fire-and-forget: any failure is logged and swallowed.
func (pc *PaymentWebhookController) notifySalon(ctx context.Context, salon *salon_models.Salon, customerID uuid.UUID, reference string, total, depositPaid, balanceDue float64) {
	if salon == nil {
		return
	}

	customerName := "Cliente"
	if customer, err := customer_models.GetCustomerByID(ctx, pc.DB, customerID); err == nil {
		customerName = customer.Name
	} else {
		logger.WarnLogger.Warnf("Customer %s not found for notification: %v", customerID, err)
	}

	text := FormatConfirmationMessage(customerName, reference, total, depositPaid, balanceDue)
	if err := pc.Notifier.SendMessage(ctx, salon.TelegramBotToken, salon.TelegramChatID, text); err != nil {
		logger.ErrorLogger.Errorf("Failed to send Telegram notification for reference %s: %v", reference, err)
	}
}
