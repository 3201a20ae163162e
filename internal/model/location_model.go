package model

import "github.com/google/uuid"

type Country struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(128);not null;index"`
	Iso2      string    `gorm:"type:varchar(2);not null;uniqueIndex"`
	Iso3      *string   `gorm:"type:varchar(3);uniqueIndex"`
	Numeric   *int
	M49       *int
	PhoneCode string `gorm:"type:varchar(8)"`
	Region    string `gorm:"type:varchar(64)"`
	Subregion string `gorm:"type:varchar(64)"`
	Capital   string `gorm:"type:varchar(128)"`
	Currency  string `gorm:"type:varchar(3)"`
	TzPrimary string `gorm:"type:varchar(64)"`
	Lat       *float64
	Lng       *float64
	Base
}

func (Country) TableName() string {
	return "countries"
}

type City struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(150);not null;index"`
	AsciiName  string    `gorm:"type:varchar(150)"`
	CountryId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Country    *Country  `gorm:"foreignKey:CountryId;constraint:OnDelete:RESTRICT"`
	Admin1     string    `gorm:"type:varchar(150)"`
	Admin2     string    `gorm:"type:varchar(150)"`
	Tz         string    `gorm:"type:varchar(64)"`
	Population *int64    `gorm:"index"`
	Lat        *float64
	Lng        *float64
	GeonameId  *int64 `gorm:"uniqueIndex"`
	Base
}

func (City) TableName() string {
	return "cities"
}
