package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByIso2 filters countries by their natural key
type ByIso2 struct {
	Iso2 string
}

func (s ByIso2) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("iso2 = ?", s.Iso2)
}

// ByIso2In filters countries by a set of codes
type ByIso2In struct {
	Codes []string
}

func (s ByIso2In) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("iso2 IN ?", s.Codes)
}

// ByGeonameID filters cities by the external GeoNames id
type ByGeonameID struct {
	GeonameID int64
}

func (s ByGeonameID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("geoname_id = ?", s.GeonameID)
}

// ByGeonameIDs filters cities by a set of external ids
type ByGeonameIDs struct {
	GeonameIDs []int64
}

func (s ByGeonameIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("geoname_id IN ?", s.GeonameIDs)
}

// ByCountryID filters cities belonging to one country
type ByCountryID struct {
	CountryID uuid.UUID
}

func (s ByCountryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("country_id = ?", s.CountryID)
}

// ByCountryIDs filters cities belonging to a set of countries
type ByCountryIDs struct {
	CountryIDs []uuid.UUID
}

func (s ByCountryIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("country_id IN ?", s.CountryIDs)
}
