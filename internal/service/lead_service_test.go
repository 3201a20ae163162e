package service

import (
	"context"
	"testing"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// recordingPublisher captures published lead events in order.
type recordingPublisher struct {
	events []dto.PublishLeadEventMessage
}

func (p *recordingPublisher) PublishLeadEvent(_ context.Context, payload *dto.PublishLeadEventMessage) error {
	p.events = append(p.events, *payload)
	return nil
}

func newLeadTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	schema := []string{
		`CREATE TABLE applications (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			country_id TEXT,
			city_id TEXT,
			preferred_contact TEXT NOT NULL DEFAULT 'phone',
			tour_id TEXT,
			alt_destination TEXT,
			desired_start_date DATE,
			days INTEGER,
			adults INTEGER NOT NULL DEFAULT 1,
			children INTEGER NOT NULL DEFAULT 0,
			infants INTEGER NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'USD',
			budget_from REAL,
			budget_to REAL,
			message TEXT,
			status TEXT NOT NULL DEFAULT 'new',
			assigned_to_id TEXT,
			utm_source TEXT,
			utm_medium TEXT,
			utm_campaign TEXT,
			referrer TEXT,
			client_ip TEXT,
			user_agent TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE application_attachments (
			id TEXT PRIMARY KEY,
			application_id TEXT NOT NULL,
			file TEXT NOT NULL,
			title TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE contact_messages (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			subject TEXT NOT NULL DEFAULT 'general',
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new',
			assigned_to_id TEXT,
			client_ip TEXT,
			user_agent TEXT,
			referrer TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newLeadService(t *testing.T) (ILeadService, *recordingPublisher, unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := newLeadTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	pub := &recordingPublisher{}
	svc := NewLeadService(factory, validation.NewLeadValidator(), pub, nopLogger{})
	return svc, pub, factory, db
}

func validApplicationRequest() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		FullName: "Aziza Karimova",
		Phone:    "+998 90 123-45-67",
		Email:    "aziza@example.com",
		Adults:   2,
	}
}

func testMeta() entity.RequestMeta {
	return entity.RequestMeta{
		ClientIP:  "203.0.113.7",
		UserAgent: "test-agent/1.0",
		Referrer:  "https://ads.example.com/summer",
	}
}

func TestCreateApplication_PersistsWithMetadataAndDefaults(t *testing.T) {
	svc, pub, factory, _ := newLeadService(t)
	ctx := context.Background()

	req := validApplicationRequest()
	req.Adults = 0 // normalized up to 1
	req.DesiredStartDate = "2026-09-15"

	res, err := svc.CreateApplication(ctx, req, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "new", res.Status)
	assert.Equal(t, 1, res.Adults)
	assert.Equal(t, "phone", res.PreferredContact)
	assert.Equal(t, "USD", res.Currency)
	require.NotNil(t, res.DesiredStartDate)
	assert.Equal(t, "2026-09-15", *res.DesiredStartDate)

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "203.0.113.7", stored.ClientIP)
	assert.Equal(t, "test-agent/1.0", stored.UserAgent)
	assert.Equal(t, "https://ads.example.com/summer", stored.Referrer)

	require.Len(t, pub.events, 1)
	assert.Equal(t, dto.LeadEventApplicationCreated, pub.events[0].Type)
	assert.Equal(t, res.Id, pub.events[0].EntityId)
}

func TestCreateApplication_InvertedBudgetPersistsNothing(t *testing.T) {
	svc, pub, factory, _ := newLeadService(t)
	ctx := context.Background()

	req := validApplicationRequest()
	from, to := 5000.0, 1000.0
	req.BudgetFrom = &from
	req.BudgetTo = &to

	_, err := svc.CreateApplication(ctx, req, testMeta())
	require.Error(t, err)

	verr, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "budget_to")

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.ApplicationRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, pub.events)
}

func TestCreateApplication_AttachmentsCommitWithParent(t *testing.T) {
	svc, _, factory, _ := newLeadService(t)
	ctx := context.Background()

	req := validApplicationRequest()
	req.Attachments = []dto.AttachmentPayload{
		{File: "applications/itinerary.pdf", Title: "itinerary.pdf"},
		{File: "applications/passport.jpg", Title: "passport.jpg"},
	}

	res, err := svc.CreateApplication(ctx, req, testMeta())
	require.NoError(t, err)
	assert.Len(t, res.Attachments, 2)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.ApplicationRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	attachments, err := uow.ApplicationRepository().AttachmentsFor(ctx, res.Id)
	require.NoError(t, err)
	assert.Len(t, attachments, 2)
}

func TestCreateApplication_AttachmentFailureRollsBackParent(t *testing.T) {
	svc, pub, factory, db := newLeadService(t)
	ctx := context.Background()

	// Force the attachment insert to fail mid-transaction.
	require.NoError(t, db.Exec(`DROP TABLE application_attachments`).Error)

	req := validApplicationRequest()
	req.Attachments = []dto.AttachmentPayload{
		{File: "applications/itinerary.pdf", Title: "itinerary.pdf"},
	}

	_, err := svc.CreateApplication(ctx, req, testMeta())
	require.Error(t, err)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.ApplicationRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "parent row must not survive a failed attachment insert")
	assert.Empty(t, pub.events)
}

func TestUpdateApplicationStatus_PublishesOnTransitionOnly(t *testing.T) {
	svc, pub, _, _ := newLeadService(t)
	ctx := context.Background()

	res, err := svc.CreateApplication(ctx, validApplicationRequest(), testMeta())
	require.NoError(t, err)
	pub.events = nil

	_, err = svc.UpdateApplicationStatus(ctx, res.Id, &dto.UpdateApplicationStatusRequest{Status: "won"})
	require.NoError(t, err)

	require.Len(t, pub.events, 1, "a real transition publishes exactly one event")
	assert.Equal(t, dto.LeadEventStatusChanged, pub.events[0].Type)
	assert.Equal(t, "new", pub.events[0].OldStatus)
	assert.Equal(t, "won", pub.events[0].NewStatus)

	// Saving the same status again is not a transition.
	pub.events = nil
	_, err = svc.UpdateApplicationStatus(ctx, res.Id, &dto.UpdateApplicationStatusRequest{Status: "won"})
	require.NoError(t, err)
	assert.Empty(t, pub.events)
}

func TestUpdateApplicationStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newLeadService(t)
	ctx := context.Background()

	res, err := svc.CreateApplication(ctx, validApplicationRequest(), testMeta())
	require.NoError(t, err)

	_, err = svc.UpdateApplicationStatus(ctx, res.Id, &dto.UpdateApplicationStatusRequest{Status: "archived"})
	require.Error(t, err)
	verr, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "status")
}

func TestCreateContactMessage_DefaultsAndEvent(t *testing.T) {
	svc, pub, factory, _ := newLeadService(t)
	ctx := context.Background()

	res, err := svc.CreateContactMessage(ctx, &dto.CreateContactMessageRequest{
		FullName: "John Smith",
		Email:    "john@example.com",
		Message:  "Do you run winter departures?",
	}, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "general", res.Subject)
	assert.Equal(t, "new", res.Status)

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.ContactMessageRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "203.0.113.7", stored.ClientIP)

	require.Len(t, pub.events, 1)
	assert.Equal(t, dto.LeadEventContactCreated, pub.events[0].Type)
}

func TestSoftDeleteApplication_HidesFromActiveListing(t *testing.T) {
	svc, _, factory, _ := newLeadService(t)
	ctx := context.Background()

	res, err := svc.CreateApplication(ctx, validApplicationRequest(), testMeta())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDeleteApplication(ctx, res.Id))

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, stored, "soft delete keeps the row")
	assert.True(t, stored.IsDeleted)
	assert.False(t, stored.IsActive)

	visible, err := uow.ApplicationRepository().Count(ctx, specification.NotDeleted{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), visible)
}
