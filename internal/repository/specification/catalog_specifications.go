package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySlug filters slug-addressed content (tours, categories, pages)
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// ByStatus filters by a status column value
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// FeaturedOnly keeps featured tours
type FeaturedOnly struct{}

func (s FeaturedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_featured = ?", true)
}

// ByCategoryID filters tours by their category
type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

// ByTagID filters tours carrying the given tag
type ByTagID struct {
	TagID uuid.UUID
}

func (s ByTagID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN (?)", db.Session(&gorm.Session{NewDB: true}).
		Table("tour_tag_links").
		Select("tour_id").
		Where("tag_id = ?", s.TagID))
}

// ByTourID filters tour-owned rows (stops, images, departures)
type ByTourID struct {
	TourID uuid.UUID
}

func (s ByTourID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tour_id = ?", s.TourID)
}
