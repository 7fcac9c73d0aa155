package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var errMsgFormat = "%w: %w"

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

// WithinTx begins a transaction and binds a repository view to it. pgx.Tx
// satisfies DBPool, so the transaction-bound repository reuses every query
// method unchanged.
func (r *CustomerRepository) WithinTx(ctx context.Context, fn func(repo customer.CustomerRepository) error) error {
	r.logger.DebugContext(ctx, "Beginning transaction")
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrDatabase, err)
	}

	txRepo := &CustomerRepository{db: tx, logger: r.logger}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to commit transaction: %w", apperrors.ErrDatabase, err)
	}
	r.logger.DebugContext(ctx, "Transaction committed successfully")
	return nil
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.ID == 0 {
		return r.insertCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) insertCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("email", cust.Email))

	query := `
        INSERT INTO customers (first_name, last_name, email)
        VALUES ($1, $2, $3)
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.Email,
	).Scan(&cust.ID)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.String("email", cust.Email))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", cust.ID))

	query := `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            email = $3
        WHERE id = $4`

	cmdTag, err := r.db.Exec(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.Email,
		cust.ID,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to update customer due to unique constraint violation", slog.String("email", cust.Email))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by ID", slog.Int64("customerID", customerID))

	query := `
        SELECT id, first_name, last_name, email
        FROM customers
        WHERE id = $1`

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by email")

	query := `
        SELECT id, first_name, last_name, email
        FROM customers
        WHERE email = $1`

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, email).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by email", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by email: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) FindByFirstNameContaining(ctx context.Context, keyword string) ([]*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to search customers by first name", slog.String("keyword", keyword))

	// ILIKE with a concatenated pattern keeps the keyword itself a bind
	// parameter. An empty keyword matches every row.
	query := `
        SELECT id, first_name, last_name, email
        FROM customers
        WHERE first_name ILIKE '%' || $1 || '%'
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, keyword)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers by first name", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to search customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	return scanCustomers(rows, r.logger)
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find all customers")

	query := `
        SELECT id, first_name, last_name, email
        FROM customers
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	return scanCustomers(rows, r.logger)
}

func scanCustomers(rows pgx.Rows, logger *slog.Logger) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.ID,
			&cust.FirstName,
			&cust.LastName,
			&cust.Email,
		)
		if err != nil {
			logger.Error("Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	return customers, nil
}

// DeleteByID is idempotent at the store level: deleting an absent row is not
// an error here. Existence is checked one layer up, in the service.
func (r *CustomerRepository) DeleteByID(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	query := `DELETE FROM customers WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.DebugContext(ctx, "Delete affected zero rows, customer already absent")
		return nil
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
