package dto

import "github.com/google/uuid"

type CountryOption struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Iso2      string    `json:"iso2"`
	PhoneCode string    `json:"phone_code,omitempty"`
	Region    string    `json:"region,omitempty"`
}

type CountryListResponse struct {
	Countries []CountryOption `json:"countries"`
}

type CityOption struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Admin1     string    `json:"admin1,omitempty"`
	Population *int64    `json:"population,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
}

type CityListResponse struct {
	Country string       `json:"country"`
	Cities  []CityOption `json:"cities"`
}
