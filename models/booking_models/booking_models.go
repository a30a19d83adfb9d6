package booking_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
)

// Booking represents a customer's appointment at a salon. A booking is
// created pending by the reservation wizard and transitions to paid when the
// Bold webhook reports an approved deposit payment. Bookings are never
// hard-deleted; cancellation is a status change.
type Booking struct {
	ID            uuid.UUID   `json:"id"`
	CustomerID    uuid.UUID   `json:"customerId"`
	SalonID       uuid.UUID   `json:"salonId"`
	EmployeeID    uuid.UUID   `json:"employeeId"`
	ServiceIDs    []uuid.UUID `json:"serviceIds"`
	Date          string      `json:"date"` // YYYY-MM-DD
	Time          string      `json:"time"` // HH:MM
	Status        string      `json:"status"`
	TotalPrice    float64     `json:"totalPrice"`
	DepositAmount float64     `json:"depositAmount"`
	PaymentID     string      `json:"paymentId"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// NewBooking creates a new pending Booking struct.
func NewBooking(customerID, salonID, employeeID uuid.UUID, serviceIDs []uuid.UUID, date, bookingTime string, totalPrice, depositAmount float64, paymentID string) (*Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for booking: %w", err)
	}
	now := time.Now()
	return &Booking{
		ID:            id,
		CustomerID:    customerID,
		SalonID:       salonID,
		EmployeeID:    employeeID,
		ServiceIDs:    serviceIDs,
		Date:          date,
		Time:          bookingTime,
		Status:        models.BookingStatusPending,
		TotalPrice:    totalPrice,
		DepositAmount: depositAmount,
		PaymentID:     paymentID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CreateBooking inserts a booking and its service rows in one transaction.
func CreateBooking(ctx context.Context, db models.Querier, booking *Booking) (*Booking, error) {
	logger.InfoLogger.Infof("Attempting to create booking record with payment reference: %s", booking.PaymentID)

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (
			id, customer_id, salon_id, employee_id, date, time, status,
			total_price, deposit_amount, payment_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id`

	var insertedID uuid.UUID
	err = tx.QueryRow(ctx, query,
		booking.ID, booking.CustomerID, booking.SalonID, booking.EmployeeID,
		booking.Date, booking.Time, booking.Status, booking.TotalPrice,
		booking.DepositAmount, booking.PaymentID, booking.CreatedAt, booking.UpdatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking: %v", err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	for _, serviceID := range booking.ServiceIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO booking_services (booking_id, service_id) VALUES ($1, $2)`,
			insertedID, serviceID,
		); err != nil {
			logger.ErrorLogger.Errorf("Failed to link service %s to booking %s: %v", serviceID, insertedID, err)
			return nil, fmt.Errorf("failed to link booking services: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	booking.ID = insertedID
	logger.InfoLogger.Infof("Booking %s created successfully (payment reference %s)", booking.ID, booking.PaymentID)
	return booking, nil
}

// GetBookingsByPaymentReference returns every booking that shares the given
// payment reference. The wizard may create one booking per appointment under
// a single payment, so the webhook has to treat them as a unit.
func GetBookingsByPaymentReference(ctx context.Context, db models.Querier, reference string) ([]*Booking, error) {
	query := `
		SELECT id, customer_id, salon_id, employee_id, date, time, status,
		       total_price, deposit_amount, payment_id, created_at, updated_at
		FROM bookings
		WHERE payment_id = $1`

	rows, err := db.Query(ctx, query, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings by payment reference: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b := &Booking{}
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.SalonID, &b.EmployeeID, &b.Date, &b.Time,
			&b.Status, &b.TotalPrice, &b.DepositAmount, &b.PaymentID,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// MarkBookingsPaidByReference transitions every booking under the payment
// reference to paid in a single transaction, recording the deposit actually
// collected. Already-paid rows are rewritten to the same values, so the
// gateway retrying a delivery is harmless.
func MarkBookingsPaidByReference(ctx context.Context, db models.Querier, reference string, depositPaid float64) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE bookings
		 SET status = $1, deposit_amount = $2, updated_at = NOW()
		 WHERE payment_id = $3 AND status <> $4`,
		models.BookingStatusPaid, depositPaid, reference, models.BookingStatusCancelled,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to mark bookings paid for reference %s: %v", reference, err)
		return 0, fmt.Errorf("failed to mark bookings paid: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit payment transition: %w", err)
	}

	logger.InfoLogger.Infof("Marked %d booking(s) paid for reference %s", cmdTag.RowsAffected(), reference)
	return cmdTag.RowsAffected(), nil
}

// GetBookingsBySalon returns a salon's bookings, newest first.
func GetBookingsBySalon(ctx context.Context, db models.Querier, salonID uuid.UUID, limit, offset int) ([]*Booking, error) {
	query := `
		SELECT id, customer_id, salon_id, employee_id, date, time, status,
		       total_price, deposit_amount, payment_id, created_at, updated_at
		FROM bookings
		WHERE salon_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := db.Query(ctx, query, salonID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b := &Booking{}
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.SalonID, &b.EmployeeID, &b.Date, &b.Time,
			&b.Status, &b.TotalPrice, &b.DepositAmount, &b.PaymentID,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetBookingByID fetches a booking record by its ID, including service links.
func GetBookingByID(ctx context.Context, db models.Querier, id uuid.UUID) (*Booking, error) {
	b := &Booking{}
	query := `
		SELECT id, customer_id, salon_id, employee_id, date, time, status,
		       total_price, deposit_amount, payment_id, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	err := db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.CustomerID, &b.SalonID, &b.EmployeeID, &b.Date, &b.Time,
		&b.Status, &b.TotalPrice, &b.DepositAmount, &b.PaymentID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, `SELECT service_id FROM booking_services WHERE booking_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var serviceID uuid.UUID
		if err := rows.Scan(&serviceID); err != nil {
			return nil, err
		}
		b.ServiceIDs = append(b.ServiceIDs, serviceID)
	}
	return b, rows.Err()
}

// CancelBooking marks a booking cancelled. Staff action only; the payment
// webhook never cancels.
func CancelBooking(ctx context.Context, db models.Querier, id uuid.UUID) error {
	cmdTag, err := db.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status <> $1`,
		models.BookingStatusCancelled, id,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to cancel booking %s: %v", id, err)
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("booking with ID %s not found or already cancelled", id)
	}
	return nil
}
