package postgres

import (
	"context"
	"errors"
	"testing"

	"customer-service/internal/pkg/apperrors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestEnsureSchemaWhenSuccess(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}
	defer mockPool.Close()

	mockPool.ExpectExec("CREATE TABLE IF NOT EXISTS customers").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	err = EnsureSchema(context.Background(), mockPool, testLogger)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestEnsureSchemaWhenExecFails(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}
	defer mockPool.Close()

	mockPool.ExpectExec("CREATE TABLE IF NOT EXISTS customers").
		WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), mockPool, testLogger)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
