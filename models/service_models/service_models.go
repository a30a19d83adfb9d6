package service_models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
)

// Service is a bookable service offered by a salon (haircut, beard trim, ...).
type Service struct {
	ID              uuid.UUID `json:"id"`
	SalonID         uuid.UUID `json:"salonId"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
}

// NewService creates a new Service struct.
func NewService(salonID uuid.UUID, name, description string, price float64, durationMinutes int) (*Service, error) {
	if price < 0 {
		return nil, fmt.Errorf("service price cannot be negative")
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for service: %w", err)
	}
	return &Service{
		ID:              id,
		SalonID:         salonID,
		Name:            name,
		Description:     description,
		Price:           price,
		DurationMinutes: durationMinutes,
		IsActive:        true,
	}, nil
}

// CreateService inserts a new service record into the database.
func CreateService(ctx context.Context, db models.Querier, service *Service) (*Service, error) {
	query := `
		INSERT INTO services (id, salon_id, name, description, price, duration_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		service.ID, service.SalonID, service.Name, service.Description,
		service.Price, service.DurationMinutes, service.IsActive,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert service for salon %s: %v", service.SalonID, err)
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	service.ID = insertedID
	return service, nil
}

// GetServicesBySalon returns all active services of a salon.
func GetServicesBySalon(ctx context.Context, db models.Querier, salonID uuid.UUID) ([]*Service, error) {
	query := `
		SELECT id, salon_id, name, description, price, duration_minutes, is_active
		FROM services
		WHERE salon_id = $1 AND is_active = TRUE
		ORDER BY name`

	rows, err := db.Query(ctx, query, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		s := &Service{}
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.IsActive); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetServicesByIDs fetches the given services, restricted to one salon so a
// wizard request cannot mix services across tenants.
func GetServicesByIDs(ctx context.Context, db models.Querier, salonID uuid.UUID, ids []uuid.UUID) ([]*Service, error) {
	query := `
		SELECT id, salon_id, name, description, price, duration_minutes, is_active
		FROM services
		WHERE salon_id = $1 AND id = ANY($2) AND is_active = TRUE`

	rows, err := db.Query(ctx, query, salonID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		s := &Service{}
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.IsActive); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// UpdateService updates a service record.
func UpdateService(ctx context.Context, db models.Querier, service *Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, price = $4, duration_minutes = $5, is_active = $6
		WHERE id = $1`

	cmdTag, err := db.Exec(ctx, query,
		service.ID, service.Name, service.Description, service.Price,
		service.DurationMinutes, service.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service with ID %s not found for update", service.ID)
	}
	return nil
}

// DeactivateService soft-deletes a service so historical bookings keep their reference.
func DeactivateService(ctx context.Context, db models.Querier, id uuid.UUID) error {
	cmdTag, err := db.Exec(ctx, `UPDATE services SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service with ID %s not found", id)
	}
	return nil
}
