package service

import (
	"fmt"
	"strings"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/pkg/mailer"
	"travel-agency-be/internal/pkg/telegram"
)

// INotificationService formats staff notifications and pushes them over the
// configured channels. Delivery is best-effort: a failed channel is logged
// and never surfaces to the caller.
type INotificationService interface {
	NotifyApplicationCreated(app *entity.Application, tourTitle string)
	NotifyContactMessageCreated(msg *entity.ContactMessage)
	NotifyApplicationStatusChanged(app *entity.Application, tourTitle string, oldStatus, newStatus entity.ApplicationStatus)
	NotifyContactStatusChanged(msg *entity.ContactMessage, oldStatus, newStatus entity.ContactStatus)
}

type notificationService struct {
	bot    telegram.IBotClient
	mail   mailer.IEmailService
	logger logger.ILogger
}

func NewNotificationService(bot telegram.IBotClient, mail mailer.IEmailService, log logger.ILogger) INotificationService {
	return &notificationService{
		bot:    bot,
		mail:   mail,
		logger: log,
	}
}

func (s *notificationService) NotifyApplicationCreated(app *entity.Application, tourTitle string) {
	var b strings.Builder
	fmt.Fprintf(&b, "New tour application\n\n")
	fmt.Fprintf(&b, "Name: %s\n", app.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", app.Phone)
	if app.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", app.Email)
	}
	if app.PreferredContact != "" {
		fmt.Fprintf(&b, "Preferred contact: %s\n", app.PreferredContact)
	}
	if tourTitle == "" {
		tourTitle = "—"
	}
	fmt.Fprintf(&b, "Tour: %s\n", tourTitle)
	if app.AltDestination != "" {
		fmt.Fprintf(&b, "Destination: %s\n", app.AltDestination)
	}
	if app.DesiredStartDate != nil {
		fmt.Fprintf(&b, "Start date: %s\n", app.DesiredStartDate.Format("2006-01-02"))
	}
	if app.Days != nil {
		fmt.Fprintf(&b, "Days: %d\n", *app.Days)
	}
	fmt.Fprintf(&b, "Travellers: %d adults, %d children, %d infants\n", app.Adults, app.Children, app.Infants)
	if app.BudgetFrom != nil || app.BudgetTo != nil {
		fmt.Fprintf(&b, "Budget: %s\n", formatBudget(app.BudgetFrom, app.BudgetTo, app.Currency))
	}
	if app.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", app.Message)
	}
	if app.UtmSource != "" {
		fmt.Fprintf(&b, "\nSource: %s / %s / %s\n", app.UtmSource, app.UtmMedium, app.UtmCampaign)
	}
	fmt.Fprintf(&b, "Status: %s\n", app.Status.Label())

	subject := fmt.Sprintf("New application from %s", app.FullName)
	s.deliver("application", subject, b.String())
}

func (s *notificationService) NotifyContactMessageCreated(msg *entity.ContactMessage) {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact message\n\n")
	fmt.Fprintf(&b, "Name: %s\n", msg.FullName)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject.Label())
	fmt.Fprintf(&b, "\n%s\n", msg.Message)

	subject := fmt.Sprintf("Contact message from %s", msg.FullName)
	s.deliver("contact", subject, b.String())
}

func (s *notificationService) NotifyApplicationStatusChanged(app *entity.Application, tourTitle string, oldStatus, newStatus entity.ApplicationStatus) {
	if tourTitle == "" {
		tourTitle = "—"
	}
	text := fmt.Sprintf("Application from %s (tour: %s): %s -> %s",
		app.FullName, tourTitle, oldStatus.Label(), newStatus.Label())
	subject := fmt.Sprintf("Application status: %s", newStatus.Label())
	s.deliver("application", subject, text)
}

func (s *notificationService) NotifyContactStatusChanged(msg *entity.ContactMessage, oldStatus, newStatus entity.ContactStatus) {
	text := fmt.Sprintf("Contact message from %s (%s): %s -> %s",
		msg.FullName, msg.Email, oldStatus.Label(), newStatus.Label())
	subject := fmt.Sprintf("Contact status: %s", newStatus.Label())
	s.deliver("contact", subject, text)
}

func (s *notificationService) deliver(kind, subject, text string) {
	if s.bot != nil && s.bot.Enabled() {
		if err := s.bot.SendMessage(text); err != nil {
			s.logger.Error("NotificationService", "telegram delivery failed", map[string]interface{}{
				"kind":  kind,
				"error": err.Error(),
			})
		}
	}

	if s.mail != nil && s.mail.Enabled() {
		if err := s.mail.SendNotification(subject, text, ""); err != nil {
			s.logger.Error("NotificationService", "email delivery failed", map[string]interface{}{
				"kind":  kind,
				"error": err.Error(),
			})
		}
	}
}

func formatBudget(from, to *float64, currency string) string {
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("%.0f - %.0f %s", *from, *to, currency)
	case from != nil:
		return fmt.Sprintf("from %.0f %s", *from, currency)
	case to != nil:
		return fmt.Sprintf("up to %.0f %s", *to, currency)
	}
	return ""
}
