package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SiteSettings struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SingletonKey string         `gorm:"type:varchar(32);not null;uniqueIndex;default:'default'"`
	OrgName      string         `gorm:"type:varchar(200)"`
	Slogan       string         `gorm:"type:varchar(200)"`
	Logo         string         `gorm:"type:varchar(500)"`
	LogoDark     string         `gorm:"type:varchar(500)"`
	Favicon      string         `gorm:"type:varchar(500)"`
	PrimaryPhone string         `gorm:"type:varchar(32)"`
	PrimaryEmail string         `gorm:"type:varchar(255)"`
	MetaTitle    string         `gorm:"type:varchar(255)"`
	MetaDesc     string         `gorm:"type:varchar(255)"`
	SocialLinks  datatypes.JSON `gorm:"type:jsonb"`
	Base
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

type Page struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug      string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	MetaTitle string    `gorm:"type:varchar(255)"`
	MetaDesc  string    `gorm:"type:varchar(255)"`
	Order     int       `gorm:"not null;default:0"`
	Base
}

func (Page) TableName() string {
	return "pages"
}
