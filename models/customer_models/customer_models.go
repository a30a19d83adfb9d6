package customer_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pasoapp/paso/models"
)

// Customer is an end user booking appointments through the public wizard.
// Customers are created on the fly during checkout and keyed by phone number.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomer creates a new Customer struct.
func NewCustomer(name, phone, email string) (*Customer, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for customer: %w", err)
	}
	return &Customer{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

// GetOrCreateCustomer returns the existing customer for the phone number or
// inserts a new record. The reservation wizard has no login step, so the
// phone number is the customer's identity.
func GetOrCreateCustomer(ctx context.Context, db models.Querier, name, phone, email string) (*Customer, error) {
	customer := &Customer{}
	err := db.QueryRow(ctx,
		`SELECT id, name, phone, email, created_at FROM customers WHERE phone = $1`,
		phone,
	).Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.CreatedAt)

	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	customer, err = NewCustomer(name, phone, email)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO customers (id, name, phone, email, created_at) VALUES ($1, $2, $3, $4, $5)`,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// GetCustomerByID fetches a customer record by its ID.
func GetCustomerByID(ctx context.Context, db models.Querier, id uuid.UUID) (*Customer, error) {
	customer := &Customer{}
	err := db.QueryRow(ctx,
		`SELECT id, name, phone, email, created_at FROM customers WHERE id = $1`,
		id,
	).Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}
