package entity

import "github.com/google/uuid"

// Country is reference data maintained exclusively by the country importer.
// Iso2 is the natural key and never changes once cities reference it.
type Country struct {
	Id        uuid.UUID
	Name      string
	Iso2      string
	Iso3      *string
	Numeric   *int
	M49       *int
	PhoneCode string
	Region    string
	Subregion string
	Capital   string
	Currency  string
	TzPrimary string
	Lat       *float64
	Lng       *float64
	Base
}

// City is reference data keyed on the external GeoNames id.
type City struct {
	Id         uuid.UUID
	Name       string
	AsciiName  string
	CountryId  uuid.UUID
	Admin1     string
	Admin2     string
	Tz         string
	Population *int64
	Lat        *float64
	Lng        *float64
	GeonameId  *int64
	Base
}
