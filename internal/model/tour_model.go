package model

import (
	"time"

	"github.com/google/uuid"
)

type TourCategory struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"type:varchar(150);not null"`
	Slug  string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Order int       `gorm:"not null;default:0"`
	Base
}

func (TourCategory) TableName() string {
	return "tour_categories"
}

type TourTag struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(80);not null;uniqueIndex"`
	Slug string    `gorm:"type:varchar(80);not null;uniqueIndex"`
	Base
}

func (TourTag) TableName() string {
	return "tour_tags"
}

type Tour struct {
	Id               uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string        `gorm:"type:varchar(200);not null"`
	Slug             string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	CategoryId       uuid.UUID     `gorm:"type:uuid;not null;index"`
	Category         *TourCategory `gorm:"foreignKey:CategoryId;constraint:OnDelete:RESTRICT"`
	ShortDescription string        `gorm:"type:text"`
	LongDescription  string        `gorm:"type:text"`
	Days             int           `gorm:"not null"`
	MinGroup         int           `gorm:"not null;default:1"`
	MaxGroup         int           `gorm:"not null;default:20"`
	BasePrice        *float64      `gorm:"type:numeric(12,2)"`
	Currency         string        `gorm:"type:varchar(3);not null;default:'USD'"`
	DiscountPercent  *float64      `gorm:"type:numeric(5,2)"`
	DiscountAmount   *float64      `gorm:"type:numeric(12,2)"`
	Difficulty       string        `gorm:"type:varchar(10);not null;default:'easy'"`
	IsFeatured       bool          `gorm:"not null;default:false"`
	Status           string        `gorm:"type:varchar(10);not null;default:'published';index"`
	MetaTitle        string        `gorm:"type:varchar(255)"`
	MetaDescription  string        `gorm:"type:varchar(255)"`
	Order            int           `gorm:"not null;default:0"`
	Base
}

func (Tour) TableName() string {
	return "tours"
}

// TourTagLink is the explicit m2m join between tours and tags.
type TourTagLink struct {
	TourId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (TourTagLink) TableName() string {
	return "tour_tag_links"
}

type TourStop struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourId     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_tour_stop_order"`
	Order      int        `gorm:"not null;default:0;uniqueIndex:idx_tour_stop_order"`
	CountryId  *uuid.UUID `gorm:"type:uuid;index"`
	CityId     *uuid.UUID `gorm:"type:uuid;index"`
	StayNights *int
	Note       string `gorm:"type:varchar(255)"`
	Base
}

func (TourStop) TableName() string {
	return "tour_stops"
}

type ItineraryDay struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourId      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_itinerary_day"`
	DayNumber   int       `gorm:"not null;uniqueIndex:idx_itinerary_day"`
	Title       string    `gorm:"type:varchar(200)"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(500)"`
	Base
}

func (ItineraryDay) TableName() string {
	return "itinerary_days"
}

type TourImage struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Image   string    `gorm:"type:varchar(500);not null"`
	Alt     string    `gorm:"type:varchar(200)"`
	IsCover bool      `gorm:"not null;default:false"`
	Order   int       `gorm:"not null;default:0"`
	Base
}

func (TourImage) TableName() string {
	return "tour_images"
}

type TourVideo struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider string    `gorm:"type:varchar(10);not null;default:'youtube'"`
	URL      string    `gorm:"type:varchar(500);not null"`
	Title    string    `gorm:"type:varchar(200)"`
	Order    int       `gorm:"not null;default:0"`
	Base
}

func (TourVideo) TableName() string {
	return "tour_videos"
}

type TourDeparture struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourId     uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"type:date;not null;index"`
	EndDate    time.Time `gorm:"type:date;not null"`
	SeatsTotal *int
	SeatsLeft  *int
	Base
}

func (TourDeparture) TableName() string {
	return "tour_departures"
}
