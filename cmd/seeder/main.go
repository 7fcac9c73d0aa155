package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"customer-service/internal/config"
	"customer-service/internal/domain/customer"
	"customer-service/internal/infrastructure/database/postgres"
	"customer-service/internal/infrastructure/logging"
)

var sampleCustomers = []customer.Representation{
	{FirstName: "Mohamed", LastName: "Youssfi", Email: "med@gmail.com"},
	{FirstName: "Ahmed", LastName: "Yassine", Email: "ahmed@gmail.com"},
	{FirstName: "Hanane", LastName: "yamal", Email: "hanane@gmail.com"},
}

// One-shot seeder: loads the sample customers through the regular service so
// the same uniqueness rules apply. Re-running it skips rows that are already
// present.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger).With("component", "seeder")
	ctx := context.Background()

	dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := postgres.EnsureSchema(ctx, dbPool, logger); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewCustomerRepository(dbPool, logger)
	service := customer.NewCustomerService(repo, customer.NewMapper(), logger)

	seeded := 0
	for _, rep := range sampleCustomers {
		created, err := service.CreateCustomer(ctx, rep)
		if err != nil {
			if errors.Is(err, customer.ErrEmailAlreadyExists) {
				logger.Warn("Sample customer already present, skipping", "email", rep.Email)
				continue
			}
			logger.Error("Failed to seed customer", "email", rep.Email, "error", err)
			os.Exit(1)
		}
		logger.Info("Seeded customer", "customerID", created.ID, "email", created.Email)
		seeded++
	}

	logger.Info("Database seeding completed", "seeded", seeded, "skipped", len(sampleCustomers)-seeded)
}
