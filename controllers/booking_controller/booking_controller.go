package booking_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pasoapp/paso/clients"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
	"github.com/pasoapp/paso/models/booking_models"
	"github.com/pasoapp/paso/models/customer_models"
	"github.com/pasoapp/paso/models/salon_models"
	"github.com/pasoapp/paso/models/service_models"
	"github.com/pasoapp/paso/utils"
	"github.com/pasoapp/paso/utils/mail"
)

// BookingController handles the public reservation wizard and the owner's
// booking management endpoints.
type BookingController struct {
	DB *pgxpool.Pool
}

// NewBookingController creates a new instance of BookingController.
func NewBookingController(db *pgxpool.Pool) *BookingController {
	return &BookingController{DB: db}
}

type CreateBookingRequest struct {
	CustomerName  string   `json:"customerName" binding:"required"`
	CustomerPhone string   `json:"customerPhone" binding:"required"`
	CustomerEmail string   `json:"customerEmail"`
	SalonID       string   `json:"salonId" binding:"required,uuid"`
	EmployeeID    string   `json:"employeeId" binding:"required,uuid"`
	ServiceIDs    []string `json:"serviceIds" binding:"required,min=1"`
	Date          string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string   `json:"time" binding:"required"` // HH:MM
}

// Book completes the reservation wizard: it stores a pending booking priced
// from the selected services, creates a Bold payment link for the deposit and
// returns the link so the customer can pay and confirm.
func (bc *BookingController) Book(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	salonID := uuid.MustParse(req.SalonID)
	employeeID := uuid.MustParse(req.EmployeeID)

	salon, err := salon_models.GetSalonByID(ctx, bc.DB, salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}
	if !salon.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salon is not accepting bookings"})
		return
	}

	serviceIDs := make([]uuid.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id: " + raw})
			return
		}
		serviceIDs = append(serviceIDs, id)
	}

	services, err := service_models.GetServicesByIDs(ctx, bc.DB, salonID, serviceIDs)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch services for booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve services"})
		return
	}
	if len(services) != len(serviceIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "one or more services not found for this salon"})
		return
	}

	var totalPrice float64
	for _, s := range services {
		totalPrice += s.Price
	}
	depositAmount := totalPrice * salon.DepositPercentage / 100

	customer, err := customer_models.GetOrCreateCustomer(ctx, bc.DB, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to resolve customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}

	// The payment reference ties the Bold payment back to this booking.
	paymentReference := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]

	booking, err := booking_models.NewBooking(
		customer.ID, salonID, employeeID, serviceIDs,
		req.Date, req.Time, totalPrice, depositAmount, paymentReference,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if _, err := booking_models.CreateBooking(ctx, bc.DB, booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	// The deposit is charged through a Bold payment link carrying the
	// prefixed reference; the webhook strips the prefix on the way back.
	var paymentURL string
	if salon.BoldAPIKey != "" && depositAmount > 0 {
		bold := clients.NewBoldClient(salon.BoldAPIKey)
		link, err := bold.CreatePaymentLink(ctx, clients.BoldPaymentLinkRequest{
			Amount:      clients.BoldLinkAmount{Currency: "COP", TotalAmount: depositAmount},
			Description: "Abono reserva " + salon.Name,
			Reference:   models.OrderReferencePrefix + paymentReference,
		})
		if err != nil {
			// The booking stays pending; the salon can re-send a link or
			// collect the deposit in person.
			logger.ErrorLogger.Errorf("Failed to create Bold payment link for reference %s: %v", paymentReference, err)
		} else {
			paymentURL = link.URL
			if paymentURL == "" {
				paymentURL = link.PaymentLink
			}
		}
	}

	if err := mail.SendBookingConfirmation(
		customer.Email, customer.Name, salon.Name,
		req.Date, req.Time, totalPrice, depositAmount, paymentURL,
	); err != nil {
		logger.ErrorLogger.Errorf("Booking confirmation email failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":          booking,
		"paymentReference": paymentReference,
		"paymentUrl":       paymentURL,
	})
}

// GetSalonBookings lists bookings of a salon owned by the caller.
func (bc *BookingController) GetSalonBookings(c *gin.Context) {
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

	salon, err := salon_models.GetSalonByID(c.Request.Context(), bc.DB, salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}
	if salon.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this salon"})
		return
	}

	limit := 20
	offset := 0
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if o := c.Query("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	bookings, err := booking_models.GetBookingsBySalon(c.Request.Context(), bc.DB, salonID, limit, offset)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list bookings for salon %s: %v", salonID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"limit":    limit,
		"offset":   offset,
	})
}

// CancelBooking marks a booking cancelled (staff action).
func (bc *BookingController) CancelBooking(c *gin.Context) {
	ownerID, err := utils.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	ctx := c.Request.Context()
	booking, err := booking_models.GetBookingByID(ctx, bc.DB, bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	salon, err := salon_models.GetSalonByID(ctx, bc.DB, booking.SalonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salon not found"})
		return
	}
	if salon.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this salon"})
		return
	}

	if err := booking_models.CancelBooking(ctx, bc.DB, bookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
