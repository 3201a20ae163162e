package model

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName         string     `gorm:"type:varchar(120);not null"`
	Phone            string     `gorm:"type:varchar(32);not null"`
	Email            string     `gorm:"type:varchar(255)"`
	CountryId        *uuid.UUID `gorm:"type:uuid;index"`
	CityId           *uuid.UUID `gorm:"type:uuid;index"`
	PreferredContact string     `gorm:"type:varchar(16);not null;default:'phone'"`

	TourId           *uuid.UUID `gorm:"type:uuid;index"`
	Tour             *Tour      `gorm:"foreignKey:TourId"`
	AltDestination   string     `gorm:"type:varchar(150)"`
	DesiredStartDate *time.Time `gorm:"type:date"`
	Days             *int
	Adults           int `gorm:"not null;default:1"`
	Children         int `gorm:"not null;default:0"`
	Infants          int `gorm:"not null;default:0"`

	Currency   string `gorm:"type:varchar(3);not null;default:'USD'"`
	BudgetFrom *float64 `gorm:"type:numeric(12,2)"`
	BudgetTo   *float64 `gorm:"type:numeric(12,2)"`

	Message      string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(16);not null;default:'new';index"`
	AssignedToId *uuid.UUID `gorm:"type:uuid;index"`

	UtmSource   string `gorm:"type:varchar(64)"`
	UtmMedium   string `gorm:"type:varchar(64)"`
	UtmCampaign string `gorm:"type:varchar(64)"`
	Referrer    string `gorm:"type:varchar(500)"`
	ClientIP    string `gorm:"type:varchar(45)"`
	UserAgent   string `gorm:"type:varchar(300)"`
	Base
}

func (Application) TableName() string {
	return "applications"
}

type ApplicationAttachment struct {
	Id            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID    `gorm:"type:uuid;not null;index"`
	Application   *Application `gorm:"foreignKey:ApplicationId;constraint:OnDelete:CASCADE"`
	File          string       `gorm:"type:varchar(500);not null"`
	Title         string       `gorm:"type:varchar(150)"`
	Base
}

func (ApplicationAttachment) TableName() string {
	return "application_attachments"
}

type ContactMessage struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string     `gorm:"type:varchar(120);not null"`
	Email        string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(32)"`
	Subject      string     `gorm:"type:varchar(20);not null;default:'general'"`
	Message      string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:varchar(16);not null;default:'new';index"`
	AssignedToId *uuid.UUID `gorm:"type:uuid;index"`

	ClientIP  string `gorm:"type:varchar(45)"`
	UserAgent string `gorm:"type:varchar(300)"`
	Referrer  string `gorm:"type:varchar(500)"`
	Base
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
