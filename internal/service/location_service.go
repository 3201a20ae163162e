package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
)

type ILocationService interface {
	Countries(ctx context.Context) (*dto.CountryListResponse, error)
	Cities(ctx context.Context, iso2 string) (*dto.CityListResponse, error)
}

type locationService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewLocationService(uowFactory unitofwork.RepositoryFactory) ILocationService {
	return &locationService{
		uowFactory: uowFactory,
		// Reference data changes only on importer runs, a long TTL is fine.
		cache: gocache.New(30*time.Minute, time.Hour),
	}
}

func (s *locationService) Countries(ctx context.Context) (*dto.CountryListResponse, error) {
	if cached, found := s.cache.Get("countries"); found {
		return cached.(*dto.CountryListResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	countries, err := uow.CountryRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CountryListResponse{Countries: make([]dto.CountryOption, 0, len(countries))}
	for _, country := range countries {
		res.Countries = append(res.Countries, dto.CountryOption{
			Id:        country.Id,
			Name:      country.Name,
			Iso2:      country.Iso2,
			PhoneCode: country.PhoneCode,
			Region:    country.Region,
		})
	}

	s.cache.Set("countries", res, gocache.DefaultExpiration)
	return res, nil
}

func (s *locationService) Cities(ctx context.Context, iso2 string) (*dto.CityListResponse, error) {
	iso2 = strings.ToUpper(strings.TrimSpace(iso2))
	if iso2 == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "country parameter is required")
	}

	cacheKey := fmt.Sprintf("cities:%s", iso2)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.CityListResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	country, err := uow.CountryRepository().FindOne(ctx,
		specification.ActiveOnly{},
		specification.ByIso2{Iso2: iso2},
	)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Country not found")
	}

	cities, err := uow.CityRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.ByCountryID{CountryID: country.Id},
		specification.OrderBy{Field: "population", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CityListResponse{
		Country: country.Iso2,
		Cities:  make([]dto.CityOption, 0, len(cities)),
	}
	for _, city := range cities {
		res.Cities = append(res.Cities, dto.CityOption{
			Id:         city.Id,
			Name:       city.Name,
			Admin1:     city.Admin1,
			Population: city.Population,
			Lat:        city.Lat,
			Lng:        city.Lng,
		})
	}

	s.cache.Set(cacheKey, res, gocache.DefaultExpiration)
	return res, nil
}
