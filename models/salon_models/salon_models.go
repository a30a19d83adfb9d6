package salon_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models"
)

// Salon represents a tenant business (barbershop/salon) in the marketplace.
// Payment and notification credentials are stored per salon so each tenant
// charges deposits into its own Bold account and receives its own Telegram
// notifications.
type Salon struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"ownerId"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	Phone             string    `json:"phone"`
	DepositPercentage float64   `json:"depositPercentage"`
	TelegramBotToken  string    `json:"-"`
	TelegramChatID    string    `json:"-"`
	BoldAPIKey        string    `json:"-"`
	BoldSecretKey     string    `json:"-"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewSalon creates a new Salon struct with a generated ID and initial timestamps.
func NewSalon(ownerID uuid.UUID, name, address, city, phone string, depositPercentage float64) (*Salon, error) {
	if depositPercentage < 0 || depositPercentage > 100 {
		return nil, fmt.Errorf("deposit percentage must be between 0 and 100, got %.2f", depositPercentage)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for salon: %w", err)
	}
	now := time.Now()
	return &Salon{
		ID:                id,
		OwnerID:           ownerID,
		Name:              name,
		Address:           address,
		City:              city,
		Phone:             phone,
		DepositPercentage: depositPercentage,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// CreateSalon inserts a new salon record into the database.
func CreateSalon(ctx context.Context, db models.Querier, salon *Salon) (*Salon, error) {
	logger.InfoLogger.Infof("Executing query to create salon: %s", salon.Name)

	query := `
		INSERT INTO salons (
			id, owner_id, name, address, city, phone, deposit_percentage,
			telegram_bot_token, telegram_chat_id, bold_api_key, bold_secret_key,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		salon.ID, salon.OwnerID, salon.Name, salon.Address, salon.City, salon.Phone,
		salon.DepositPercentage, salon.TelegramBotToken, salon.TelegramChatID,
		salon.BoldAPIKey, salon.BoldSecretKey, salon.IsActive,
		salon.CreatedAt, salon.UpdatedAt,
	).Scan(&insertedID)

	if err != nil {
		logger.ErrorLogger.Errorf("Error creating salon in DB: %v", err)
		return nil, fmt.Errorf("failed to create salon: %w", err)
	}

	salon.ID = insertedID
	logger.InfoLogger.Infof("Successfully created salon %s in DB", salon.ID)
	return salon, nil
}

// GetSalonByID fetches a salon record by its ID.
func GetSalonByID(ctx context.Context, db models.Querier, id uuid.UUID) (*Salon, error) {
	salon := &Salon{}
	query := `
		SELECT
			id, owner_id, name, address, city, phone, deposit_percentage,
			telegram_bot_token, telegram_chat_id, bold_api_key, bold_secret_key,
			is_active, created_at, updated_at
		FROM salons
		WHERE id = $1`

	err := db.QueryRow(ctx, query, id).Scan(
		&salon.ID, &salon.OwnerID, &salon.Name, &salon.Address, &salon.City,
		&salon.Phone, &salon.DepositPercentage, &salon.TelegramBotToken,
		&salon.TelegramChatID, &salon.BoldAPIKey, &salon.BoldSecretKey,
		&salon.IsActive, &salon.CreatedAt, &salon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return salon, nil
}

// GetSalonsByOwner returns all salons owned by the given user.
func GetSalonsByOwner(ctx context.Context, db models.Querier, ownerID uuid.UUID) ([]*Salon, error) {
	query := `
		SELECT
			id, owner_id, name, address, city, phone, deposit_percentage,
			telegram_bot_token, telegram_chat_id, bold_api_key, bold_secret_key,
			is_active, created_at, updated_at
		FROM salons
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	defer rows.Close()

	var salons []*Salon
	for rows.Next() {
		salon := &Salon{}
		if err := rows.Scan(
			&salon.ID, &salon.OwnerID, &salon.Name, &salon.Address, &salon.City,
			&salon.Phone, &salon.DepositPercentage, &salon.TelegramBotToken,
			&salon.TelegramChatID, &salon.BoldAPIKey, &salon.BoldSecretKey,
			&salon.IsActive, &salon.CreatedAt, &salon.UpdatedAt,
		); err != nil {
			return nil, err
		}
		salons = append(salons, salon)
	}
	return salons, rows.Err()
}

// GetActiveSalons returns all active salons for the public marketplace listing.
func GetActiveSalons(ctx context.Context, db models.Querier) ([]*Salon, error) {
	query := `
		SELECT
			id, owner_id, name, address, city, phone, deposit_percentage,
			telegram_bot_token, telegram_chat_id, bold_api_key, bold_secret_key,
			is_active, created_at, updated_at
		FROM salons
		WHERE is_active = TRUE
		ORDER BY name`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active salons: %w", err)
	}
	defer rows.Close()

	var salons []*Salon
	for rows.Next() {
		salon := &Salon{}
		if err := rows.Scan(
			&salon.ID, &salon.OwnerID, &salon.Name, &salon.Address, &salon.City,
			&salon.Phone, &salon.DepositPercentage, &salon.TelegramBotToken,
			&salon.TelegramChatID, &salon.BoldAPIKey, &salon.BoldSecretKey,
			&salon.IsActive, &salon.CreatedAt, &salon.UpdatedAt,
		); err != nil {
			return nil, err
		}
		salons = append(salons, salon)
	}
	return salons, rows.Err()
}

// UpdateSalon applies the given column updates to a salon owned by ownerID.
func UpdateSalon(ctx context.Context, db models.Querier, id, ownerID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	if pct, ok := updates["deposit_percentage"]; ok {
		if v, ok := pct.(float64); ok && (v < 0 || v > 100) {
			return fmt.Errorf("deposit percentage must be between 0 and 100, got %.2f", v)
		}
	}

	query := "UPDATE salons SET updated_at = NOW()"
	args := []interface{}{}
	i := 1
	for col, val := range updates {
		query += fmt.Sprintf(", %s = $%d", col, i)
		args = append(args, val)
		i++
	}
	query += fmt.Sprintf(" WHERE id = $%d AND owner_id = $%d", i, i+1)
	args = append(args, id, ownerID)

	cmdTag, err := db.Exec(ctx, query, args...)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update salon %s: %v", id, err)
		return fmt.Errorf("failed to update salon: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("salon %s not found for owner %s", id, ownerID)
	}
	return nil
}
