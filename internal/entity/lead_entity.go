package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string
type PreferredContact string
type ContactSubject string
type ContactStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "new"
	ApplicationStatusInReview  ApplicationStatus = "in_review"
	ApplicationStatusContacted ApplicationStatus = "contacted"
	ApplicationStatusWon       ApplicationStatus = "won"
	ApplicationStatusLost      ApplicationStatus = "lost"
	ApplicationStatusSpam      ApplicationStatus = "spam"

	PreferredContactPhone    PreferredContact = "phone"
	PreferredContactWhatsapp PreferredContact = "whatsapp"
	PreferredContactTelegram PreferredContact = "telegram"
	PreferredContactEmail    PreferredContact = "email"

	ContactSubjectGeneral     ContactSubject = "general"
	ContactSubjectBooking     ContactSubject = "booking"
	ContactSubjectSupport     ContactSubject = "support"
	ContactSubjectPartnership ContactSubject = "partnership"
	ContactSubjectOther       ContactSubject = "other"

	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusAnswered ContactStatus = "answered"
	ContactStatusSpam     ContactStatus = "spam"
)

var applicationStatusLabels = map[ApplicationStatus]string{
	ApplicationStatusNew:       "New",
	ApplicationStatusInReview:  "In review",
	ApplicationStatusContacted: "Contacted",
	ApplicationStatusWon:       "Won",
	ApplicationStatusLost:      "Lost",
	ApplicationStatusSpam:      "Spam",
}

var contactSubjectLabels = map[ContactSubject]string{
	ContactSubjectGeneral:     "General question",
	ContactSubjectBooking:     "Booking",
	ContactSubjectSupport:     "Support",
	ContactSubjectPartnership: "Partnership",
	ContactSubjectOther:       "Other",
}

var contactStatusLabels = map[ContactStatus]string{
	ContactStatusNew:      "New",
	ContactStatusRead:     "Read",
	ContactStatusAnswered: "Answered",
	ContactStatusSpam:     "Spam",
}

func (s ApplicationStatus) Label() string {
	if label, ok := applicationStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationStatusLabels[s]
	return ok
}

func (s ContactStatus) Valid() bool {
	_, ok := contactStatusLabels[s]
	return ok
}

func (s ContactSubject) Label() string {
	if label, ok := contactSubjectLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s ContactStatus) Label() string {
	if label, ok := contactStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// RequestMeta is captured server-side from the triggering request. It is
// never accepted from client-supplied fields.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	Referrer  string
}

// Application is a tour inquiry lead. Status is mutated only by staff action;
// the record itself is never hard-deleted.
type Application struct {
	Id               uuid.UUID
	FullName         string
	Phone            string
	Email            string
	CountryId        *uuid.UUID
	CityId           *uuid.UUID
	PreferredContact PreferredContact

	TourId           *uuid.UUID
	AltDestination   string
	DesiredStartDate *time.Time
	Days             *int
	Adults           int
	Children         int
	Infants          int

	Currency   string
	BudgetFrom *float64
	BudgetTo   *float64

	Message      string
	Status       ApplicationStatus
	AssignedToId *uuid.UUID

	UtmSource   string
	UtmMedium   string
	UtmCampaign string
	Referrer    string
	ClientIP    string
	UserAgent   string

	Attachments []*ApplicationAttachment
	Base
}

type ApplicationAttachment struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	File          string
	Title         string
	Base
}

// ContactMessage is a standalone inquiry from the contact page.
type ContactMessage struct {
	Id           uuid.UUID
	FullName     string
	Email        string
	Phone        string
	Subject      ContactSubject
	Message      string
	Status       ContactStatus
	AssignedToId *uuid.UUID

	ClientIP  string
	UserAgent string
	Referrer  string
	Base
}
