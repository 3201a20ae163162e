package service

import (
	"testing"

	"travel-agency-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBotClient struct {
	enabled  bool
	messages []string
	err      error
}

func (f *fakeBotClient) Enabled() bool { return f.enabled }
func (f *fakeBotClient) SendMessage(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

type fakeMailer struct {
	enabled  bool
	subjects []string
	bodies   []string
}

func (f *fakeMailer) Enabled() bool { return f.enabled }
func (f *fakeMailer) SendNotification(subject, plainBody, htmlBody string) error {
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, plainBody)
	return nil
}

func TestNotifyApplicationCreated_MessageContent(t *testing.T) {
	bot := &fakeBotClient{enabled: true}
	mail := &fakeMailer{enabled: true}
	svc := NewNotificationService(bot, mail, nopLogger{})

	days := 7
	budgetFrom, budgetTo := 1000.0, 2500.0
	app := &entity.Application{
		FullName:   "Aziza Karimova",
		Phone:      "+998901234567",
		Email:      "aziza@example.com",
		Days:       &days,
		Adults:     2,
		Children:   1,
		Currency:   "USD",
		BudgetFrom: &budgetFrom,
		BudgetTo:   &budgetTo,
		Status:     entity.ApplicationStatusNew,
	}

	svc.NotifyApplicationCreated(app, "Seven Lakes Trek")

	require.Len(t, bot.messages, 1)
	msg := bot.messages[0]
	assert.Contains(t, msg, "Aziza Karimova")
	assert.Contains(t, msg, "+998901234567")
	assert.Contains(t, msg, "Seven Lakes Trek")
	assert.Contains(t, msg, "1000 - 2500 USD")
	assert.Contains(t, msg, "Status: New")

	require.Len(t, mail.bodies, 1)
	assert.Equal(t, msg, mail.bodies[0])
}

func TestNotifyApplicationCreated_PlaceholderWithoutTour(t *testing.T) {
	bot := &fakeBotClient{enabled: true}
	svc := NewNotificationService(bot, &fakeMailer{}, nopLogger{})

	svc.NotifyApplicationCreated(&entity.Application{
		FullName: "John Smith",
		Phone:    "+1 202 555 0101",
		Adults:   1,
		Status:   entity.ApplicationStatusNew,
	}, "")

	require.Len(t, bot.messages, 1)
	assert.Contains(t, bot.messages[0], "Tour: —")
}

func TestNotifyApplicationStatusChanged_CarriesBothLabels(t *testing.T) {
	bot := &fakeBotClient{enabled: true}
	svc := NewNotificationService(bot, &fakeMailer{}, nopLogger{})

	app := &entity.Application{FullName: "Aziza Karimova", Phone: "+998901234567"}
	svc.NotifyApplicationStatusChanged(app, "Seven Lakes Trek",
		entity.ApplicationStatusNew, entity.ApplicationStatusWon)

	require.Len(t, bot.messages, 1)
	assert.Contains(t, bot.messages[0], "New")
	assert.Contains(t, bot.messages[0], "Won")
	assert.Contains(t, bot.messages[0], "Seven Lakes Trek")
}

func TestDeliver_SkipsDisabledChannels(t *testing.T) {
	bot := &fakeBotClient{enabled: false}
	mail := &fakeMailer{enabled: false}
	svc := NewNotificationService(bot, mail, nopLogger{})

	svc.NotifyContactMessageCreated(&entity.ContactMessage{
		FullName: "John Smith",
		Email:    "john@example.com",
		Subject:  entity.ContactSubjectGeneral,
		Message:  "Hello",
	})

	assert.Empty(t, bot.messages)
	assert.Empty(t, mail.subjects)
}

func TestDeliver_BotFailureDoesNotBlockEmail(t *testing.T) {
	bot := &fakeBotClient{enabled: true, err: assert.AnError}
	mail := &fakeMailer{enabled: true}
	svc := NewNotificationService(bot, mail, nopLogger{})

	svc.NotifyContactMessageCreated(&entity.ContactMessage{
		FullName: "John Smith",
		Email:    "john@example.com",
		Subject:  entity.ContactSubjectBooking,
		Message:  "Hello",
	})

	require.Len(t, bot.messages, 1)
	require.Len(t, mail.subjects, 1, "email still goes out when telegram fails")
}
