//go:build integration

package database_test

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/zatekoja/shiftboard/internal/adapters/database"
	"github.com/zatekoja/shiftboard/internal/adapters/memory"
	"github.com/zatekoja/shiftboard/internal/application/services"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/shiftboard/pkg/config"
	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ShiftLookupIntegrationTestSuite runs the lookup gateway against a real PostgreSQL
type ShiftLookupIntegrationTestSuite struct {
	suite.Suite
	client  *postgres.Client
	adapter *database.ShiftLookupAdapter
	seeder  *database.Seeder
}

func (s *ShiftLookupIntegrationTestSuite) SetupSuite() {
	cfg := &config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "shiftboard_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	client, err := postgres.NewClient(cfg)
	require.NoError(s.T(), err, "Failed to create postgres client")
	s.client = client
	s.adapter = database.NewShiftLookupAdapter(client)
	s.seeder = database.NewSeeder(client)

	migrationSQL, err := os.ReadFile("../../../migrations/001_initial_schema.sql")
	require.NoError(s.T(), err, "Failed to read migration file")
	_, err = client.DB().Exec(string(migrationSQL))
	require.NoError(s.T(), err, "Failed to execute migrations")
}

func (s *ShiftLookupIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *ShiftLookupIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	fixtures, err := memory.LoadFixtures("../../../fixtures/scenario.yaml")
	s.Require().NoError(err)
	s.Require().NoError(s.seeder.Reset(ctx))
	s.Require().NoError(s.seeder.Seed(ctx, fixtures.Facilities, fixtures.Workers, fixtures.Shifts))
}

func (s *ShiftLookupIntegrationTestSuite) TestGetFacilityActive() {
	ctx := context.Background()

	active, err := s.adapter.GetFacilityActive(ctx, 5)
	s.Require().NoError(err)
	s.True(active)

	active, err = s.adapter.GetFacilityActive(ctx, 4)
	s.Require().NoError(err)
	s.False(active)

	_, err = s.adapter.GetFacilityActive(ctx, 5000)
	s.True(apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func (s *ShiftLookupIntegrationTestSuite) TestGetWorker() {
	ctx := context.Background()

	worker, err := s.adapter.GetWorker(ctx, 4)
	s.Require().NoError(err)
	s.Equal(entities.WorkerID(4), worker.ID)
	s.Equal(entities.ProfessionRN, worker.Profession)
	s.True(worker.IsActive)

	worker, err = s.adapter.GetWorker(ctx, 5)
	s.Require().NoError(err)
	s.False(worker.IsActive)

	_, err = s.adapter.GetWorker(ctx, 5000)
	s.True(apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func (s *ShiftLookupIntegrationTestSuite) TestQueryEligibleShifts() {
	window, err := entities.NewTimeWindow(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 31, 23, 59, 0, 0, time.UTC),
	)
	s.Require().NoError(err)

	shifts, err := s.adapter.QueryEligibleShifts(context.Background(), repositories.ShiftQuery{
		FacilityID: 5,
		Window:     window,
		Profession: entities.ProfessionRN,
		WorkerID:   4,
	})
	s.Require().NoError(err)

	ids := make([]entities.ShiftID, 0, len(shifts))
	for _, sh := range shifts {
		ids = append(ids, sh.ID)
		s.Equal(time.UTC, sh.Start.Location())
	}
	s.Equal([]entities.ShiftID{1, 9, 3, 12}, ids)
}

func (s *ShiftLookupIntegrationTestSuite) TestEligibilityScenario() {
	service := services.NewEligibilityService(s.adapter, nil)
	window, err := entities.ParseTimeWindow("2023-01-01 00:00", "2023-01-31 23:59")
	s.Require().NoError(err)
	ctx := context.Background()

	_, err = service.ListEligibleShifts(ctx, 4, 4, window)
	reason, ok := services.IneligibilityReasonOf(err)
	s.True(ok)
	s.Equal(entities.IneligibilityReasonInactiveFacility, reason)

	_, err = service.ListEligibleShifts(ctx, 5, 5, window)
	reason, ok = services.IneligibilityReasonOf(err)
	s.True(ok)
	s.Equal(entities.IneligibilityReasonInactiveWorker, reason)

	_, err = service.ListEligibleShifts(ctx, 5000, 5, window)
	s.True(apperrors.IsType(err, apperrors.ErrorTypeDatabase))

	shifts, err := service.ListEligibleShifts(ctx, 4, 1, window)
	s.Require().NoError(err)
	s.NotNil(shifts)
	s.Empty(shifts)
}

func TestShiftLookupIntegrationTestSuite(t *testing.T) {
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("Skipping integration test: TEST_DB_HOST not set")
	}
	suite.Run(t, new(ShiftLookupIntegrationTestSuite))
}
