package service

import (
	"context"
	"time"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILeadService interface {
	CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest, meta entity.RequestMeta) (*dto.ApplicationResponse, error)
	CreateContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest, meta entity.RequestMeta) (*dto.ContactMessageResponse, error)

	ListApplications(ctx context.Context, status string, limit, offset int) ([]*dto.ApplicationResponse, int64, error)
	ShowApplication(ctx context.Context, id uuid.UUID) (*dto.ApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)

	ListContactMessages(ctx context.Context, status string, limit, offset int) ([]*dto.ContactMessageResponse, int64, error)
	UpdateContactStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateContactStatusRequest) (*dto.ContactMessageResponse, error)

	SoftDeleteApplication(ctx context.Context, id uuid.UUID) error
	SoftDeleteContactMessage(ctx context.Context, id uuid.UUID) error
}

type leadService struct {
	uowFactory unitofwork.RepositoryFactory
	validator  *validation.LeadValidator
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewLeadService(
	uowFactory unitofwork.RepositoryFactory,
	validator *validation.LeadValidator,
	publisher IPublisherService,
	log logger.ILogger,
) ILeadService {
	return &leadService{
		uowFactory: uowFactory,
		validator:  validator,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *leadService) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest, meta entity.RequestMeta) (*dto.ApplicationResponse, error) {
	normalizeApplicationRequest(req)

	if err := s.validator.ValidateApplication(req); err != nil {
		return nil, err
	}

	app := &entity.Application{
		Id:               uuid.New(),
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		CountryId:        req.CountryId,
		CityId:           req.CityId,
		PreferredContact: entity.PreferredContact(req.PreferredContact),
		TourId:           req.TourId,
		AltDestination:   req.AltDestination,
		Days:             req.Days,
		Adults:           req.Adults,
		Children:         req.Children,
		Infants:          req.Infants,
		Currency:         req.Currency,
		BudgetFrom:       req.BudgetFrom,
		BudgetTo:         req.BudgetTo,
		Message:          req.Message,
		Status:           entity.ApplicationStatusNew,
		UtmSource:        req.UtmSource,
		UtmMedium:        req.UtmMedium,
		UtmCampaign:      req.UtmCampaign,
		Referrer:         meta.Referrer,
		ClientIP:         meta.ClientIP,
		UserAgent:        meta.UserAgent,
	}
	app.IsActive = true

	if req.DesiredStartDate != "" {
		// Format already checked by the validator.
		parsed, err := time.Parse("2006-01-02", req.DesiredStartDate)
		if err == nil {
			app.DesiredStartDate = &parsed
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ApplicationRepository().Create(ctx, app); err != nil {
		return nil, err
	}

	// Attachments commit with the parent or not at all.
	for _, payload := range req.Attachments {
		attachment := &entity.ApplicationAttachment{
			Id:            uuid.New(),
			ApplicationId: app.Id,
			File:          payload.File,
			Title:         payload.Title,
		}
		attachment.IsActive = true
		if err := uow.ApplicationRepository().CreateAttachment(ctx, attachment); err != nil {
			return nil, err
		}
		app.Attachments = append(app.Attachments, attachment)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishLeadEvent(ctx, &dto.PublishLeadEventMessage{
		Type:     dto.LeadEventApplicationCreated,
		Entity:   "application",
		EntityId: app.Id,
	})

	return toApplicationResponse(app), nil
}

func (s *leadService) CreateContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest, meta entity.RequestMeta) (*dto.ContactMessageResponse, error) {
	if req.Subject == "" {
		req.Subject = string(entity.ContactSubjectGeneral)
	}

	if err := s.validator.ValidateContactMessage(req); err != nil {
		return nil, err
	}

	cm := &entity.ContactMessage{
		Id:        uuid.New(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   entity.ContactSubject(req.Subject),
		Message:   req.Message,
		Status:    entity.ContactStatusNew,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	}
	cm.IsActive = true

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactMessageRepository().Create(ctx, cm); err != nil {
		return nil, err
	}

	s.publishLeadEvent(ctx, &dto.PublishLeadEventMessage{
		Type:     dto.LeadEventContactCreated,
		Entity:   "contact_message",
		EntityId: cm.Id,
	})

	return toContactMessageResponse(cm), nil
}

func (s *leadService) ListApplications(ctx context.Context, status string, limit, offset int) ([]*dto.ApplicationResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.NotDeleted{}}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	total, err := uow.ApplicationRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	apps, err := uow.ApplicationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, toApplicationResponse(app))
	}
	return result, total, nil
}

func (s *leadService) ShowApplication(ctx context.Context, id uuid.UUID) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Application not found")
	}

	attachments, err := uow.ApplicationRepository().AttachmentsFor(ctx, app.Id)
	if err != nil {
		return nil, err
	}
	app.Attachments = attachments

	return toApplicationResponse(app), nil
}

func (s *leadService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The pre-update row decides whether a transition happened.
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Application not found")
	}

	oldStatus := app.Status
	newStatus := entity.ApplicationStatus(req.Status)
	if !newStatus.Valid() {
		verr := validation.NewValidationError()
		verr.Add("status", "must be one of: new, in_review, contacted, won, lost, spam")
		return nil, verr.Err()
	}

	app.Status = newStatus
	if err := uow.ApplicationRepository().Update(ctx, app); err != nil {
		return nil, err
	}

	if oldStatus != newStatus {
		s.publishLeadEvent(ctx, &dto.PublishLeadEventMessage{
			Type:      dto.LeadEventStatusChanged,
			Entity:    "application",
			EntityId:  app.Id,
			OldStatus: string(oldStatus),
			NewStatus: string(newStatus),
		})
	}

	return toApplicationResponse(app), nil
}

func (s *leadService) ListContactMessages(ctx context.Context, status string, limit, offset int) ([]*dto.ContactMessageResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.NotDeleted{}}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	total, err := uow.ContactMessageRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	messages, err := uow.ContactMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ContactMessageResponse, 0, len(messages))
	for _, cm := range messages {
		result = append(result, toContactMessageResponse(cm))
	}
	return result, total, nil
}

func (s *leadService) UpdateContactStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateContactStatusRequest) (*dto.ContactMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cm, err := uow.ContactMessageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if cm == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Contact message not found")
	}

	oldStatus := cm.Status
	newStatus := entity.ContactStatus(req.Status)
	if !newStatus.Valid() {
		verr := validation.NewValidationError()
		verr.Add("status", "must be one of: new, read, answered, spam")
		return nil, verr.Err()
	}

	cm.Status = newStatus
	if err := uow.ContactMessageRepository().Update(ctx, cm); err != nil {
		return nil, err
	}

	if oldStatus != newStatus {
		s.publishLeadEvent(ctx, &dto.PublishLeadEventMessage{
			Type:      dto.LeadEventStatusChanged,
			Entity:    "contact_message",
			EntityId:  cm.Id,
			OldStatus: string(oldStatus),
			NewStatus: string(newStatus),
		})
	}

	return toContactMessageResponse(cm), nil
}

func (s *leadService) SoftDeleteApplication(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if app == nil {
		return fiber.NewError(fiber.StatusNotFound, "Application not found")
	}

	app.SoftDelete()
	return uow.ApplicationRepository().Update(ctx, app)
}

func (s *leadService) SoftDeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cm, err := uow.ContactMessageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if cm == nil {
		return fiber.NewError(fiber.StatusNotFound, "Contact message not found")
	}

	cm.SoftDelete()
	return uow.ContactMessageRepository().Update(ctx, cm)
}

func (s *leadService) publishLeadEvent(ctx context.Context, payload *dto.PublishLeadEventMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLeadEvent(ctx, payload); err != nil {
		s.logger.Error("LeadService", "failed to publish lead event", map[string]interface{}{
			"type":      string(payload.Type),
			"entity_id": payload.EntityId.String(),
			"error":     err.Error(),
		})
	}
}

func normalizeApplicationRequest(req *dto.CreateApplicationRequest) {
	if req.Adults < 1 {
		req.Adults = 1
	}
	if req.Children < 0 {
		req.Children = 0
	}
	if req.Infants < 0 {
		req.Infants = 0
	}
	if req.PreferredContact == "" {
		req.PreferredContact = string(entity.PreferredContactPhone)
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
}

func toApplicationResponse(app *entity.Application) *dto.ApplicationResponse {
	res := &dto.ApplicationResponse{
		Id:               app.Id,
		FullName:         app.FullName,
		Phone:            app.Phone,
		Email:            app.Email,
		CountryId:        app.CountryId,
		CityId:           app.CityId,
		PreferredContact: string(app.PreferredContact),
		TourId:           app.TourId,
		AltDestination:   app.AltDestination,
		Days:             app.Days,
		Adults:           app.Adults,
		Children:         app.Children,
		Infants:          app.Infants,
		Currency:         app.Currency,
		BudgetFrom:       app.BudgetFrom,
		BudgetTo:         app.BudgetTo,
		Message:          app.Message,
		Status:           string(app.Status),
		CreatedAt:        app.CreatedAt,
	}
	if app.DesiredStartDate != nil {
		formatted := app.DesiredStartDate.Format("2006-01-02")
		res.DesiredStartDate = &formatted
	}
	for _, attachment := range app.Attachments {
		res.Attachments = append(res.Attachments, dto.AttachmentResponse{
			Id:    attachment.Id,
			File:  attachment.File,
			Title: attachment.Title,
		})
	}
	return res
}

func toContactMessageResponse(cm *entity.ContactMessage) *dto.ContactMessageResponse {
	return &dto.ContactMessageResponse{
		Id:        cm.Id,
		FullName:  cm.FullName,
		Email:     cm.Email,
		Phone:     cm.Phone,
		Subject:   string(cm.Subject),
		Message:   cm.Message,
		Status:    string(cm.Status),
		CreatedAt: cm.CreatedAt,
	}
}
