package customer

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("customer not found")

	ErrEmailAlreadyExists = errors.New("email already used by another customer")
)

type CustomerRepository interface {
	// WithinTx runs fn against a transaction-bound view of the repository.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(repo CustomerRepository) error) error

	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindByEmail(ctx context.Context, email string) (*Customer, error)

	FindByFirstNameContaining(ctx context.Context, keyword string) ([]*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	DeleteByID(ctx context.Context, customerID int64) error
}
