package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"customer-service/internal/pkg/apperrors"
)

const customerNotFound = "Customer not found by repository"

type CustomerService interface {
	CreateCustomer(ctx context.Context, rep Representation) (Representation, error)
	ListCustomers(ctx context.Context) ([]Representation, error)
	GetCustomer(ctx context.Context, customerID int64) (Representation, error)
	SearchCustomers(ctx context.Context, keyword string) ([]Representation, error)
	UpdateCustomer(ctx context.Context, customerID int64, rep Representation) (Representation, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	mapper Mapper
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, mapper Mapper, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		mapper: mapper,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, rep Representation) (Representation, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer", slog.String("email", rep.Email))

	var created Representation
	err := s.repo.WithinTx(ctx, func(repo CustomerRepository) error {
		existing, err := repo.FindByEmail(ctx, rep.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Repository error checking email uniqueness", slog.Any("error", err))
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil {
			s.logger.WarnContext(ctx, "Email already in use", slog.String("email", rep.Email))
			return ErrEmailAlreadyExists
		}

		entity := s.mapper.ToEntity(rep)
		// The store assigns the identifier; whatever the caller sent is ignored.
		entity.ID = 0
		if err := repo.Save(ctx, &entity); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				// A concurrent create won the race between the uniqueness
				// check and the write; the unique index is the final arbiter.
				s.logger.WarnContext(ctx, "Unique constraint hit on save", slog.String("email", rep.Email))
				return ErrEmailAlreadyExists
			}
			s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
			return fmt.Errorf("failed to save new customer: %w", err)
		}

		created, err = s.mapper.ToRepresentation(&entity)
		return err
	})
	if err != nil {
		return Representation{}, err
	}

	s.logger.InfoContext(ctx, "Successfully created new customer", slog.Int64("customerID", created.ID))
	return created, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]Representation, error) {
	s.logger.InfoContext(ctx, "Attempting to list all customers")

	var reps []Representation
	err := s.repo.WithinTx(ctx, func(repo CustomerRepository) error {
		customers, err := repo.FindAll(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
			return fmt.Errorf("failed to list customers: %w", err)
		}
		reps, err = s.mapper.ToRepresentationList(customers)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Successfully listed customers", slog.Int("count", len(reps)))
	return reps, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (Representation, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer", slog.Int64("customerID", customerID))

	var rep Representation
	err := s.repo.WithinTx(ctx, func(repo CustomerRepository) error {
		cust, err := repo.FindByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
				return ErrNotFound
			}
			s.logger.ErrorContext(ctx, "Repository error finding customer by ID", slog.Any("error", err))
			return fmt.Errorf("failed to get customer %d: %w", customerID, err)
		}
		rep, err = s.mapper.ToRepresentation(cust)
		return err
	})
	if err != nil {
		return Representation{}, err
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customer", slog.Int64("customerID", customerID))
	return rep, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, keyword string) ([]Representation, error) {
	s.logger.InfoContext(ctx, "Attempting to search customers by first name", slog.String("keyword", keyword))

	var reps []Representation
	err := s.repo.WithinTx(ctx, func(repo CustomerRepository) error {
		customers, err := repo.FindByFirstNameContaining(ctx, keyword)
		if err != nil {
			s.logger.ErrorContext(ctx, "Repository error searching customers", slog.Any("error", err))
			return fmt.Errorf("failed to search customers: %w", err)
		}
		reps, err = s.mapper.ToRepresentationList(customers)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Successfully searched customers", slog.Int("count", len(reps)))
	return reps, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, rep Representation) (Representation, error) {
	s.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", customerID))

	var updated Representation
	err := s.repo.WithinTx(ctx, func(repo CustomerRepository) error {
		if _, err := repo.FindByID(ctx, customerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
				return ErrNotFound
			}
			s.logger.ErrorContext(ctx, "Repository error finding customer for update", slog.Any("error", err))
			return fmt.Errorf("failed to find customer %d for update: %w", customerID, err)
		}

		// Full replace addressed by the path identifier; whatever id the
		// request body carried is overridden.
		rep.ID = customerID
		entity := s.mapper.ToEntity(rep)
		if err := repo.Save(ctx, &entity); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				s.logger.WarnContext(ctx, "Unique constraint hit on update", slog.String("email", rep.Email))
				return ErrEmailAlreadyExists
			}
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.ErrorContext(ctx, "Customer disappeared before save could complete", slog.Int64("customerID", customerID))
				return ErrNotFound
			}
			s.logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
			return fmt.Errorf("failed to update customer %d: %w", customerID, err)
		}

		var mapErr error
		updated, mapErr = s.mapper.ToRepresentation(&entity)
		return mapErr
	})
	if err != nil {
		return Representation{}, err
	}

	s.logger.InfoContext(ctx, "Successfully updated customer", slog.Int64("customerID", customerID))
	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	s.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	err := s.repo.WithinTx(ctx, func(repo CustomerRepository) error {
		if _, err := repo.FindByID(ctx, customerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
				return ErrNotFound
			}
			s.logger.ErrorContext(ctx, "Repository error finding customer for delete", slog.Any("error", err))
			return fmt.Errorf("failed to find customer %d for delete: %w", customerID, err)
		}

		if err := repo.DeleteByID(ctx, customerID); err != nil {
			s.logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
			return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Successfully deleted customer", slog.Int64("customerID", customerID))
	return nil
}
