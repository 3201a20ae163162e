package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentPayload references an already-stored upload. The controller saves
// incoming files before the service is invoked.
type AttachmentPayload struct {
	File  string `json:"file" validate:"required,max=500"`
	Title string `json:"title" validate:"max=150"`
}

type CreateApplicationRequest struct {
	FullName         string     `json:"full_name" form:"full_name" validate:"required,max=120"`
	Phone            string     `json:"phone" form:"phone" validate:"required,phone"`
	Email            string     `json:"email" form:"email" validate:"omitempty,email"`
	CountryId        *uuid.UUID `json:"country_id" form:"country_id"`
	CityId           *uuid.UUID `json:"city_id" form:"city_id"`
	PreferredContact string     `json:"preferred_contact" form:"preferred_contact" validate:"omitempty,oneof=phone whatsapp telegram email"`

	TourId           *uuid.UUID `json:"tour_id" form:"tour_id"`
	AltDestination   string     `json:"alt_destination" form:"alt_destination" validate:"max=150"`
	DesiredStartDate string     `json:"desired_start_date" form:"desired_start_date" validate:"omitempty,datetime=2006-01-02"`
	Days             *int       `json:"days" form:"days" validate:"omitempty,min=1"`
	Adults           int        `json:"adults" form:"adults" validate:"min=1"`
	Children         int        `json:"children" form:"children" validate:"min=0"`
	Infants          int        `json:"infants" form:"infants" validate:"min=0"`

	Currency   string   `json:"currency" form:"currency" validate:"omitempty,len=3"`
	BudgetFrom *float64 `json:"budget_from" form:"budget_from" validate:"omitempty,min=0"`
	BudgetTo   *float64 `json:"budget_to" form:"budget_to" validate:"omitempty,min=0"`

	Message string `json:"message" form:"message"`

	UtmSource   string `json:"utm_source" form:"utm_source" validate:"max=64"`
	UtmMedium   string `json:"utm_medium" form:"utm_medium" validate:"max=64"`
	UtmCampaign string `json:"utm_campaign" form:"utm_campaign" validate:"max=64"`

	Attachments []AttachmentPayload `json:"attachments" validate:"omitempty,dive"`
}

type CreateContactMessageRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=120"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Subject  string `json:"subject" form:"subject" validate:"omitempty,oneof=general booking support partnership other"`
	Message  string `json:"message" form:"message" validate:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_review contacted won lost spam"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read answered spam"`
}

type AttachmentResponse struct {
	Id    uuid.UUID `json:"id"`
	File  string    `json:"file"`
	Title string    `json:"title,omitempty"`
}

type ApplicationResponse struct {
	Id               uuid.UUID  `json:"id"`
	FullName         string     `json:"full_name"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email,omitempty"`
	CountryId        *uuid.UUID `json:"country_id,omitempty"`
	CityId           *uuid.UUID `json:"city_id,omitempty"`
	PreferredContact string     `json:"preferred_contact"`
	TourId           *uuid.UUID `json:"tour_id,omitempty"`
	AltDestination   string     `json:"alt_destination,omitempty"`
	DesiredStartDate *string    `json:"desired_start_date,omitempty"`
	Days             *int       `json:"days,omitempty"`
	Adults           int        `json:"adults"`
	Children         int        `json:"children"`
	Infants          int        `json:"infants"`
	Currency         string     `json:"currency"`
	BudgetFrom       *float64   `json:"budget_from,omitempty"`
	BudgetTo         *float64   `json:"budget_to,omitempty"`
	Message          string     `json:"message,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`

	Attachments []AttachmentResponse `json:"attachments,omitempty"`
}

type ContactMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
