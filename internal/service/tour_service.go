package service

import (
	"context"
	"fmt"
	"time"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
)

type ITourService interface {
	List(ctx context.Context, query *dto.TourListQuery) ([]*dto.TourListItemResponse, int64, error)
	Show(ctx context.Context, slug string) (*dto.TourDetailResponse, error)
}

type tourService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewTourService(uowFactory unitofwork.RepositoryFactory) ITourService {
	return &tourService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *tourService) List(ctx context.Context, query *dto.TourListQuery) ([]*dto.TourListItemResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.ByStatus{Status: string(entity.TourStatusPublished)},
	}

	if query.Category != "" {
		category, err := uow.TourCategoryRepository().FindOne(ctx,
			specification.ActiveOnly{}, specification.BySlug{Slug: query.Category})
		if err != nil {
			return nil, 0, err
		}
		if category == nil {
			return []*dto.TourListItemResponse{}, 0, nil
		}
		specs = append(specs, specification.ByCategoryID{CategoryID: category.Id})
	}

	if query.Tag != "" {
		tag, err := uow.TourTagRepository().FindOne(ctx,
			specification.ActiveOnly{}, specification.BySlug{Slug: query.Tag})
		if err != nil {
			return nil, 0, err
		}
		if tag == nil {
			return []*dto.TourListItemResponse{}, 0, nil
		}
		specs = append(specs, specification.ByTagID{TagID: tag.Id})
	}

	if query.Featured {
		specs = append(specs, specification.FeaturedOnly{})
	}

	total, err := uow.TourRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	specs = append(specs,
		specification.OrderBy{Field: "\"order\""},
		specification.Pagination{Limit: limit, Offset: query.Offset},
	)

	tours, err := uow.TourRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.TourListItemResponse, 0, len(tours))
	for _, tour := range tours {
		result = append(result, &dto.TourListItemResponse{
			Id:               tour.Id,
			Title:            tour.Title,
			Slug:             tour.Slug,
			ShortDescription: tour.ShortDescription,
			Days:             tour.Days,
			BasePrice:        tour.BasePrice,
			EffectivePrice:   tour.EffectivePrice(),
			Currency:         tour.Currency,
			Difficulty:       string(tour.Difficulty),
			IsFeatured:       tour.IsFeatured,
		})
	}
	return result, total, nil
}

func (s *tourService) Show(ctx context.Context, slug string) (*dto.TourDetailResponse, error) {
	cacheKey := fmt.Sprintf("tour:%s", slug)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.TourDetailResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tour, err := uow.TourRepository().FindOne(ctx,
		specification.ActiveOnly{},
		specification.ByStatus{Status: string(entity.TourStatusPublished)},
		specification.BySlug{Slug: slug},
	)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Tour not found")
	}

	res := &dto.TourDetailResponse{
		Id:               tour.Id,
		Title:            tour.Title,
		Slug:             tour.Slug,
		ShortDescription: tour.ShortDescription,
		LongDescription:  tour.LongDescription,
		Days:             tour.Days,
		MinGroup:         tour.MinGroup,
		MaxGroup:         tour.MaxGroup,
		BasePrice:        tour.BasePrice,
		EffectivePrice:   tour.EffectivePrice(),
		Currency:         tour.Currency,
		DiscountPercent:  tour.DiscountPercent,
		DiscountAmount:   tour.DiscountAmount,
		Difficulty:       string(tour.Difficulty),
		IsFeatured:       tour.IsFeatured,
		MetaTitle:        tour.MetaTitle,
		MetaDescription:  tour.MetaDescription,
		CreatedAt:        tour.CreatedAt,
	}

	category, err := uow.TourCategoryRepository().FindOne(ctx, specification.ByID{ID: tour.CategoryId})
	if err != nil {
		return nil, err
	}
	if category != nil {
		res.Category = &dto.TourCategoryResponse{
			Id:   category.Id,
			Name: category.Name,
			Slug: category.Slug,
		}
	}

	tags, err := uow.TourRepository().TagsFor(ctx, tour.Id)
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		res.Tags = append(res.Tags, dto.TourTagResponse{
			Id:   tag.Id,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}

	content := uow.TourContentRepository()

	stops, err := content.StopsFor(ctx, tour.Id)
	if err != nil {
		return nil, err
	}
	for _, stop := range stops {
		res.Stops = append(res.Stops, dto.TourStopResponse{
			Id:         stop.Id,
			Order:      stop.Order,
			CountryId:  stop.CountryId,
			CityId:     stop.CityId,
			StayNights: stop.StayNights,
			Note:       stop.Note,
		})
	}

	days, err := content.ItineraryFor(ctx, tour.Id)
	if err != nil {
		return nil, err
	}
	for _, day := range days {
		res.Itinerary = append(res.Itinerary, dto.ItineraryDayResponse{
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
			Image:       day.Image,
		})
	}

	images, err := content.ImagesFor(ctx, tour.Id)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		res.Images = append(res.Images, dto.TourImageResponse{
			Image:   img.Image,
			Alt:     img.Alt,
			IsCover: img.IsCover,
		})
	}

	videos, err := content.VideosFor(ctx, tour.Id)
	if err != nil {
		return nil, err
	}
	for _, video := range videos {
		res.Videos = append(res.Videos, dto.TourVideoResponse{
			Provider: string(video.Provider),
			URL:      video.URL,
			Title:    video.Title,
		})
	}

	departures, err := uow.TourDepartureRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.ByTourID{TourID: tour.Id},
		specification.OrderBy{Field: "start_date"},
	)
	if err != nil {
		return nil, err
	}
	for _, dep := range departures {
		res.Departures = append(res.Departures, dto.TourDepartureResponse{
			Id:         dep.Id,
			StartDate:  dep.StartDate.Format("2006-01-02"),
			EndDate:    dep.EndDate.Format("2006-01-02"),
			SeatsTotal: dep.SeatsTotal,
			SeatsLeft:  dep.SeatsLeft,
		})
	}

	s.cache.Set(cacheKey, res, gocache.DefaultExpiration)
	return res, nil
}
