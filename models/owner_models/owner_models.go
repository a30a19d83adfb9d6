package owner_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
)

// Owner is a salon owner account able to manage salons, staff and bookings.
type Owner struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	TokenVersion int       `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewOwner creates a new Owner struct with a generated ID.
func NewOwner(email, passwordHash, firstName, lastName string) (*Owner, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for owner: %w", err)
	}
	return &Owner{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now(),
	}, nil
}

// CreateOwner inserts a new owner record into the database.
func CreateOwner(ctx context.Context, db models.Querier, owner *Owner) (*Owner, error) {
	query := `
		INSERT INTO owners (id, email, password_hash, first_name, last_name, token_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		owner.ID, owner.Email, owner.PasswordHash, owner.FirstName,
		owner.LastName, owner.TokenVersion, owner.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert owner %s: %v", owner.Email, err)
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	owner.ID = insertedID
	return owner, nil
}

// GetOwnerByEmail fetches an owner record by email.
func GetOwnerByEmail(ctx context.Context, db models.Querier, email string) (*Owner, error) {
	owner := &Owner{}
	query := `
		SELECT id, email, password_hash, first_name, last_name, token_version, created_at
		FROM owners WHERE email = $1`

	err := db.QueryRow(ctx, query, email).Scan(
		&owner.ID, &owner.Email, &owner.PasswordHash,
		&owner.FirstName, &owner.LastName, &owner.TokenVersion, &owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return owner, nil
}

// GetOwnerByID fetches an owner record by ID.
func GetOwnerByID(ctx context.Context, db models.Querier, id uuid.UUID) (*Owner, error) {
	owner := &Owner{}
	query := `
		SELECT id, email, password_hash, first_name, last_name, token_version, created_at
		FROM owners WHERE id = $1`

	err := db.QueryRow(ctx, query, id).Scan(
		&owner.ID, &owner.Email, &owner.PasswordHash,
		&owner.FirstName, &owner.LastName, &owner.TokenVersion, &owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return owner, nil
}
