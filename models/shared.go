package models

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Booking status constants. The payment webhook only ever moves a booking
// from pending to paid; cancellation is a staff action.
const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

// OrderReferencePrefix is prepended to the internal payment reference when a
// payment link is created with Bold. Inbound webhooks may carry the reference
// with or without it.
const OrderReferencePrefix = "ORD-"

// Querier is the subset of pgxpool.Pool the model layer uses. Handlers pass
// the shared pool; tests pass a pgxmock pool.
type Querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
