package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.CountryRepository())
	assert.NotNil(t, uow.TourRepository())
	assert.NotNil(t, uow.ApplicationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Country Repository", func(t *testing.T) {
		count, err := uow.CountryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Country count: %d", count)
	})

	t.Run("Check Tour Repository", func(t *testing.T) {
		count, err := uow.TourRepository().Count(context.Background(), specification.ActiveOnly{})
		assert.NoError(t, err)
		t.Logf("Active tour count: %d", count)
	})

	t.Run("Check Transactional Application Intake", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		appId := uuid.New()
		app := &entity.Application{
			Id:       appId,
			FullName: "Integration Test Lead",
			Phone:    "+998901234567",
			Email:    "integration-" + uuid.New().String() + "@example.com",
			Adults:   2,
			Currency: "USD",
			Status:   entity.ApplicationStatusNew,
			Base:     entity.Base{IsActive: true},
		}

		err = uow.ApplicationRepository().Create(ctx, app)
		assert.NoError(t, err)

		attachment := &entity.ApplicationAttachment{
			Id:            uuid.New(),
			ApplicationId: appId,
			File:          "applications/integration-test.pdf",
			Title:         "itinerary.pdf",
			Base:          entity.Base{IsActive: true},
		}

		err = uow.ApplicationRepository().CreateAttachment(ctx, attachment)
		assert.NoError(t, err)

		// Rolled back by the deferred call; nothing persists past the test.
		t.Log("Successfully created Application with Attachment in Transaction")
	})
}
