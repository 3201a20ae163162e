package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingNotifier struct {
	mu             sync.Mutex
	created        []string
	statusChanges  []string
	contactCreated []string
}

func (n *capturingNotifier) NotifyApplicationCreated(app *entity.Application, tourTitle string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, app.FullName)
}

func (n *capturingNotifier) NotifyContactMessageCreated(msg *entity.ContactMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contactCreated = append(n.contactCreated, msg.FullName)
}

func (n *capturingNotifier) NotifyApplicationStatusChanged(app *entity.Application, tourTitle string, oldStatus, newStatus entity.ApplicationStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusChanges = append(n.statusChanges, string(oldStatus)+">"+string(newStatus))
}

func (n *capturingNotifier) NotifyContactStatusChanged(msg *entity.ContactMessage, oldStatus, newStatus entity.ContactStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusChanges = append(n.statusChanges, string(oldStatus)+">"+string(newStatus))
}

func (n *capturingNotifier) createdCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.created)
}

func (n *capturingNotifier) statusChangeCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.statusChanges)
}

func TestConsumer_DispatchesCreatedEvent(t *testing.T) {
	db := newLeadTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()

	app := &entity.Application{
		Id:       uuid.New(),
		FullName: "Aziza Karimova",
		Phone:    "+998901234567",
		Adults:   2,
		Currency: "USD",
		Status:   entity.ApplicationStatusNew,
	}
	app.IsActive = true
	require.NoError(t, factory.NewUnitOfWork(ctx).ApplicationRepository().Create(ctx, app))

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	notifier := &capturingNotifier{}
	consumer := NewConsumerService(pubSub, "lead.notifications.test", factory, notifier, nopLogger{})
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("lead.notifications.test", pubSub)
	require.NoError(t, publisher.PublishLeadEvent(ctx, &dto.PublishLeadEventMessage{
		Type:     dto.LeadEventApplicationCreated,
		EntityId: app.Id,
		Entity:   "application",
	}))

	require.Eventually(t, func() bool {
		return notifier.createdCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"Aziza Karimova"}, notifier.created)
}

func TestConsumer_VanishedRowIsSkipped(t *testing.T) {
	db := newLeadTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	notifier := &capturingNotifier{}
	consumer := NewConsumerService(pubSub, "lead.notifications.test", factory, notifier, nopLogger{})
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("lead.notifications.test", pubSub)
	require.NoError(t, publisher.PublishLeadEvent(ctx, &dto.PublishLeadEventMessage{
		Type:      dto.LeadEventStatusChanged,
		EntityId:  uuid.New(),
		Entity:    "application",
		OldStatus: "new",
		NewStatus: "won",
	}))

	// The event targets a row that does not exist; nothing must be delivered.
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, notifier.createdCount())
	assert.Zero(t, notifier.statusChangeCount())
}
