package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"customer-service/internal/pkg/apperrors"
)

const createCustomersTable = `
CREATE TABLE IF NOT EXISTS customers (
    id          BIGSERIAL PRIMARY KEY,
    first_name  TEXT NOT NULL,
    last_name   TEXT NOT NULL,
    email       TEXT NOT NULL,
    CONSTRAINT customers_email_key UNIQUE (email)
)`

// EnsureSchema creates the customers table and its unique email constraint
// when they do not exist yet. The constraint is the final arbiter for
// concurrent creates with the same email.
func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.Info("Ensuring customers schema exists...")
	if _, err := db.Exec(ctx, createCustomersTable); err != nil {
		logger.Error("Failed to ensure customers schema", "error", err)
		return fmt.Errorf("%w: failed to ensure customers schema: %w", apperrors.ErrDatabase, err)
	}
	return nil
}
