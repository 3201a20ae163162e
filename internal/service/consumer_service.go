package service

import (
	"context"
	"encoding/json"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	notification INotificationService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	notification INotificationService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		notification: notification,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishLeadEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "failed to unmarshal lead event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become valid on retry
		return
	}

	if err := cs.handleEvent(ctx, &payload); err != nil {
		cs.logger.Error("ConsumerService", "failed to handle lead event", map[string]interface{}{
			"type":      string(payload.Type),
			"entity_id": payload.EntityId.String(),
			"error":     err.Error(),
		})
	}
	// Delivery is best-effort, no redelivery loop for a notification.
	msg.Ack()
}

func (cs *consumerService) handleEvent(ctx context.Context, payload *dto.PublishLeadEventMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	switch payload.Entity {
	case "application":
		app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: payload.EntityId})
		if err != nil {
			return err
		}
		if app == nil {
			cs.logger.Warn("ConsumerService", "application vanished before notification", map[string]interface{}{
				"entity_id": payload.EntityId.String(),
			})
			return nil
		}

		tourTitle := ""
		if app.TourId != nil {
			tour, err := uow.TourRepository().FindOne(ctx, specification.ByID{ID: *app.TourId})
			if err == nil && tour != nil {
				tourTitle = tour.Title
			}
		}

		switch payload.Type {
		case dto.LeadEventApplicationCreated:
			cs.notification.NotifyApplicationCreated(app, tourTitle)
		case dto.LeadEventStatusChanged:
			cs.notification.NotifyApplicationStatusChanged(app, tourTitle,
				entity.ApplicationStatus(payload.OldStatus),
				entity.ApplicationStatus(payload.NewStatus))
		}

	case "contact_message":
		cm, err := uow.ContactMessageRepository().FindOne(ctx, specification.ByID{ID: payload.EntityId})
		if err != nil {
			return err
		}
		if cm == nil {
			cs.logger.Warn("ConsumerService", "contact message vanished before notification", map[string]interface{}{
				"entity_id": payload.EntityId.String(),
			})
			return nil
		}

		switch payload.Type {
		case dto.LeadEventContactCreated:
			cs.notification.NotifyContactMessageCreated(cm)
		case dto.LeadEventStatusChanged:
			cs.notification.NotifyContactStatusChanged(cm,
				entity.ContactStatus(payload.OldStatus),
				entity.ContactStatus(payload.NewStatus))
		}
	}

	return nil
}
