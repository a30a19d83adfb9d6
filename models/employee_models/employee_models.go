package employee_models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
)

// Employee is a staff member of a salon a booking can be assigned to.
type Employee struct {
	ID       uuid.UUID `json:"id"`
	SalonID  uuid.UUID `json:"salonId"`
	Name     string    `json:"name"`
	Position string    `json:"position,omitempty"`
	IsActive bool      `json:"isActive"`
}

// NewEmployee creates a new Employee struct.
func NewEmployee(salonID uuid.UUID, name, position string) (*Employee, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for employee: %w", err)
	}
	return &Employee{
		ID:       id,
		SalonID:  salonID,
		Name:     name,
		Position: position,
		IsActive: true,
	}, nil
}

// CreateEmployee inserts a new employee record into the database.
func CreateEmployee(ctx context.Context, db models.Querier, employee *Employee) (*Employee, error) {
	query := `
		INSERT INTO employees (id, salon_id, name, position, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		employee.ID, employee.SalonID, employee.Name, employee.Position, employee.IsActive,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert employee for salon %s: %v", employee.SalonID, err)
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	employee.ID = insertedID
	return employee, nil
}

// GetEmployeesBySalon returns all active employees of a salon.
func GetEmployeesBySalon(ctx context.Context, db models.Querier, salonID uuid.UUID) ([]*Employee, error) {
	query := `
		SELECT id, salon_id, name, position, is_active
		FROM employees
		WHERE salon_id = $1 AND is_active = TRUE
		ORDER BY name`

	rows, err := db.Query(ctx, query, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*Employee
	for rows.Next() {
		e := &Employee{}
		if err := rows.Scan(&e.ID, &e.SalonID, &e.Name, &e.Position, &e.IsActive); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// DeactivateEmployee soft-deletes an employee.
func DeactivateEmployee(ctx context.Context, db models.Querier, id uuid.UUID) error {
	cmdTag, err := db.Exec(ctx, `UPDATE employees SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee with ID %s not found", id)
	}
	return nil
}
