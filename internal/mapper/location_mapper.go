package mapper

import (
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/model"
)

type CountryMapper struct{}

func NewCountryMapper() *CountryMapper {
	return &CountryMapper{}
}

func (m *CountryMapper) ToEntity(c *model.Country) *entity.Country {
	if c == nil {
		return nil
	}
	return &entity.Country{
		Id:        c.Id,
		Name:      c.Name,
		Iso2:      c.Iso2,
		Iso3:      c.Iso3,
		Numeric:   c.Numeric,
		M49:       c.M49,
		PhoneCode: c.PhoneCode,
		Region:    c.Region,
		Subregion: c.Subregion,
		Capital:   c.Capital,
		Currency:  c.Currency,
		TzPrimary: c.TzPrimary,
		Lat:       c.Lat,
		Lng:       c.Lng,
		Base:      baseToEntity(c.Base),
	}
}

func (m *CountryMapper) ToModel(c *entity.Country) *model.Country {
	if c == nil {
		return nil
	}
	return &model.Country{
		Id:        c.Id,
		Name:      c.Name,
		Iso2:      c.Iso2,
		Iso3:      c.Iso3,
		Numeric:   c.Numeric,
		M49:       c.M49,
		PhoneCode: c.PhoneCode,
		Region:    c.Region,
		Subregion: c.Subregion,
		Capital:   c.Capital,
		Currency:  c.Currency,
		TzPrimary: c.TzPrimary,
		Lat:       c.Lat,
		Lng:       c.Lng,
		Base:      baseToModel(c.Base),
	}
}

func (m *CountryMapper) ToEntities(countries []*model.Country) []*entity.Country {
	entities := make([]*entity.Country, len(countries))
	for i, c := range countries {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type CityMapper struct{}

func NewCityMapper() *CityMapper {
	return &CityMapper{}
}

func (m *CityMapper) ToEntity(c *model.City) *entity.City {
	if c == nil {
		return nil
	}
	return &entity.City{
		Id:         c.Id,
		Name:       c.Name,
		AsciiName:  c.AsciiName,
		CountryId:  c.CountryId,
		Admin1:     c.Admin1,
		Admin2:     c.Admin2,
		Tz:         c.Tz,
		Population: c.Population,
		Lat:        c.Lat,
		Lng:        c.Lng,
		GeonameId:  c.GeonameId,
		Base:       baseToEntity(c.Base),
	}
}

func (m *CityMapper) ToModel(c *entity.City) *model.City {
	if c == nil {
		return nil
	}
	return &model.City{
		Id:         c.Id,
		Name:       c.Name,
		AsciiName:  c.AsciiName,
		CountryId:  c.CountryId,
		Admin1:     c.Admin1,
		Admin2:     c.Admin2,
		Tz:         c.Tz,
		Population: c.Population,
		Lat:        c.Lat,
		Lng:        c.Lng,
		GeonameId:  c.GeonameId,
		Base:       baseToModel(c.Base),
	}
}

func (m *CityMapper) ToEntities(cities []*model.City) []*entity.City {
	entities := make([]*entity.City, len(cities))
	for i, c := range cities {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
