package dto

import (
	"time"

	"github.com/google/uuid"
)

type TourListQuery struct {
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Featured bool   `query:"featured"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type TourCategoryResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type TourTagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type TourDepartureResponse struct {
	Id         uuid.UUID `json:"id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	SeatsTotal *int      `json:"seats_total,omitempty"`
	SeatsLeft  *int      `json:"seats_left,omitempty"`
}

type TourStopResponse struct {
	Id         uuid.UUID  `json:"id"`
	Order      int        `json:"order"`
	CountryId  *uuid.UUID `json:"country_id,omitempty"`
	CityId     *uuid.UUID `json:"city_id,omitempty"`
	StayNights *int       `json:"stay_nights,omitempty"`
	Note       string     `json:"note,omitempty"`
}

type ItineraryDayResponse struct {
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type TourImageResponse struct {
	Image   string `json:"image"`
	Alt     string `json:"alt,omitempty"`
	IsCover bool   `json:"is_cover"`
}

type TourVideoResponse struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
}

type TourListItemResponse struct {
	Id               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description,omitempty"`
	Days             int       `json:"days"`
	BasePrice        *float64  `json:"base_price,omitempty"`
	EffectivePrice   *float64  `json:"effective_price,omitempty"`
	Currency         string    `json:"currency"`
	Difficulty       string    `json:"difficulty"`
	IsFeatured       bool      `json:"is_featured"`
}

type TourDetailResponse struct {
	Id               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Category         *TourCategoryResponse `json:"category,omitempty"`
	Tags             []TourTagResponse     `json:"tags,omitempty"`
	ShortDescription string    `json:"short_description,omitempty"`
	LongDescription  string    `json:"long_description,omitempty"`
	Days             int       `json:"days"`
	MinGroup         int       `json:"min_group"`
	MaxGroup         int       `json:"max_group"`
	BasePrice        *float64  `json:"base_price,omitempty"`
	EffectivePrice   *float64  `json:"effective_price,omitempty"`
	Currency         string    `json:"currency"`
	DiscountPercent  *float64  `json:"discount_percent,omitempty"`
	DiscountAmount   *float64  `json:"discount_amount,omitempty"`
	Difficulty       string    `json:"difficulty"`
	IsFeatured       bool      `json:"is_featured"`
	MetaTitle        string    `json:"meta_title,omitempty"`
	MetaDescription  string    `json:"meta_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	Stops      []TourStopResponse      `json:"stops,omitempty"`
	Itinerary  []ItineraryDayResponse  `json:"itinerary,omitempty"`
	Images     []TourImageResponse     `json:"images,omitempty"`
	Videos     []TourVideoResponse     `json:"videos,omitempty"`
	Departures []TourDepartureResponse `json:"departures,omitempty"`
}
