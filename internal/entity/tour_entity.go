package entity

import (
	"time"

	"github.com/google/uuid"
)

type TourStatus string
type TourDifficulty string
type VideoProvider string

const (
	TourStatusDraft     TourStatus = "draft"
	TourStatusPublished TourStatus = "published"
	TourStatusArchived  TourStatus = "archived"

	TourDifficultyEasy     TourDifficulty = "easy"
	TourDifficultyModerate TourDifficulty = "moderate"
	TourDifficultyHard     TourDifficulty = "hard"

	VideoProviderYoutube VideoProvider = "youtube"
	VideoProviderVimeo   VideoProvider = "vimeo"
	VideoProviderFile    VideoProvider = "file"
)

type TourCategory struct {
	Id    uuid.UUID
	Name  string
	Slug  string
	Order int
	Base
}

type TourTag struct {
	Id   uuid.UUID
	Name string
	Slug string
	Base
}

type Tour struct {
	Id               uuid.UUID
	Title            string
	Slug             string
	CategoryId       uuid.UUID
	ShortDescription string
	LongDescription  string
	Days             int
	MinGroup         int
	MaxGroup         int
	BasePrice        *float64
	Currency         string
	DiscountPercent  *float64
	DiscountAmount   *float64
	Difficulty       TourDifficulty
	IsFeatured       bool
	Status           TourStatus
	MetaTitle        string
	MetaDescription  string
	Order            int
	Tags             []*TourTag
	Base
}

// EffectivePrice returns the price after applying at most one discount mode.
// Percent mode wins if both fields are somehow populated; upstream validation
// rejects that combination before it can be stored.
func (t *Tour) EffectivePrice() *float64 {
	return DiscountedPrice(t.BasePrice, t.DiscountPercent, t.DiscountAmount)
}

// DiscountedPrice computes the effective price from a base price and the two
// optional discount modes. A nil base yields nil. A flat discount larger than
// the base clamps to zero, never negative.
func DiscountedPrice(base, percent, amount *float64) *float64 {
	if base == nil {
		return nil
	}
	price := *base
	if percent != nil && *percent != 0 {
		price = price * (1 - *percent/100)
	} else if amount != nil && *amount != 0 {
		price = price - *amount
		if price < 0 {
			price = 0
		}
	}
	return &price
}

// TourStop is an ordered waypoint on a tour route. At least one of country or
// city must be set; a city stop implies its country.
type TourStop struct {
	Id         uuid.UUID
	TourId     uuid.UUID
	Order      int
	CountryId  *uuid.UUID
	CityId     *uuid.UUID
	StayNights *int
	Note       string
	Base
}

type ItineraryDay struct {
	Id          uuid.UUID
	TourId      uuid.UUID
	DayNumber   int
	Title       string
	Description string
	Image       string
	Base
}

type TourImage struct {
	Id      uuid.UUID
	TourId  uuid.UUID
	Image   string
	Alt     string
	IsCover bool
	Order   int
	Base
}

type TourVideo struct {
	Id       uuid.UUID
	TourId   uuid.UUID
	Provider VideoProvider
	URL      string
	Title    string
	Order    int
	Base
}

// TourDeparture is a fixed-date run. The seat counters are passive; no booking
// flow decrements them.
type TourDeparture struct {
	Id         uuid.UUID
	TourId     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	SeatsTotal *int
	SeatsLeft  *int
	Base
}
