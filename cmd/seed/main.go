package main

import (
	"context"
	"log"
	"time"

	"travel-agency-be/internal/config"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/internal/validation"
	"travel-agency-be/pkg/database"

	"github.com/google/uuid"
)

// Seeds a minimal demo catalog. Safe to re-run: existing slugs are left alone.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	category := seedCategory(ctx, uow, "Mountain", "mountain")
	tagTrekking := seedTag(ctx, uow, "Trekking", "trekking")
	tagFamily := seedTag(ctx, uow, "Family friendly", "family-friendly")

	existing, err := uow.TourRepository().FindOne(ctx, specification.BySlug{Slug: "seven-lakes-trek"})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if existing != nil {
		log.Println("Seed tour already present, nothing to do")
		return
	}

	basePrice := 890.0
	discount := 10.0
	tour := &entity.Tour{
		Id:               uuid.New(),
		Title:            "Seven Lakes Trek",
		Slug:             "seven-lakes-trek",
		CategoryId:       category.Id,
		ShortDescription: "A week of alpine lakes, passes and yurt camps.",
		LongDescription:  "Day-by-day guided trek through the seven lakes valley with local guides, full board and transfers included.",
		Days:             7,
		MinGroup:         2,
		MaxGroup:         12,
		BasePrice:        &basePrice,
		Currency:         "USD",
		DiscountPercent:  &discount,
		Difficulty:       entity.TourDifficultyModerate,
		IsFeatured:       true,
		Status:           entity.TourStatusPublished,
	}
	tour.IsActive = true

	if err := validation.ValidateTourPricing(tour); err != nil {
		log.Fatalf("Error: Invalid tour pricing: %v", err)
	}
	if err := uow.TourRepository().Create(ctx, tour); err != nil {
		log.Fatalf("Error: Failed to create tour: %v", err)
	}
	if err := uow.TourRepository().ReplaceTags(ctx, tour.Id, []uuid.UUID{tagTrekking.Id, tagFamily.Id}); err != nil {
		log.Fatalf("Error: Failed to attach tags: %v", err)
	}

	seedItinerary(ctx, uow, tour.Id)
	seedMedia(ctx, uow, tour.Id)
	seedDeparture(ctx, uow, tour.Id)
	seedRoute(ctx, uow, tour.Id)

	log.Println("Success: Demo catalog seeded")
}

func seedItinerary(ctx context.Context, uow unitofwork.UnitOfWork, tourId uuid.UUID) {
	days := []struct {
		number int
		title  string
		desc   string
	}{
		{1, "Arrival and transfer", "Meet at the airport, transfer to the trailhead guesthouse, gear check."},
		{2, "First lake", "Gentle ascent along the river to the first lake, camp by the shore."},
		{3, "Pass day", "Cross the pass at 3300m, descend to the upper lakes plateau."},
	}
	for _, d := range days {
		day := &entity.ItineraryDay{
			Id:          uuid.New(),
			TourId:      tourId,
			DayNumber:   d.number,
			Title:       d.title,
			Description: d.desc,
		}
		day.IsActive = true
		if err := uow.TourContentRepository().CreateItineraryDay(ctx, day); err != nil {
			log.Fatalf("Error: Failed to create itinerary day: %v", err)
		}
	}
}

func seedMedia(ctx context.Context, uow unitofwork.UnitOfWork, tourId uuid.UUID) {
	cover := &entity.TourImage{
		Id:      uuid.New(),
		TourId:  tourId,
		Image:   "tours/seven-lakes-trek/cover.jpg",
		Alt:     "Seven lakes valley at sunrise",
		IsCover: true,
	}
	cover.IsActive = true
	if err := uow.TourContentRepository().CreateImage(ctx, cover); err != nil {
		log.Fatalf("Error: Failed to create image: %v", err)
	}

	video := &entity.TourVideo{
		Id:       uuid.New(),
		TourId:   tourId,
		Provider: entity.VideoProviderYoutube,
		URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:    "Trek highlights",
	}
	video.IsActive = true
	if err := uow.TourContentRepository().CreateVideo(ctx, video); err != nil {
		log.Fatalf("Error: Failed to create video: %v", err)
	}
}

func seedDeparture(ctx context.Context, uow unitofwork.UnitOfWork, tourId uuid.UUID) {
	seats := 12
	start := time.Date(2027, time.June, 14, 0, 0, 0, 0, time.UTC)
	departure := &entity.TourDeparture{
		Id:         uuid.New(),
		TourId:     tourId,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 6),
		SeatsTotal: &seats,
		SeatsLeft:  &seats,
	}
	departure.IsActive = true
	if err := uow.TourDepartureRepository().Create(ctx, departure); err != nil {
		log.Fatalf("Error: Failed to create departure: %v", err)
	}
}

// seedRoute adds a waypoint only when the countries table has been imported;
// a stop must reference a country or a city.
func seedRoute(ctx context.Context, uow unitofwork.UnitOfWork, tourId uuid.UUID) {
	country, err := uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "TJ"})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if country == nil {
		log.Println("Countries not imported yet, skipping route stop")
		return
	}

	nights := 6
	stop := &entity.TourStop{
		Id:         uuid.New(),
		TourId:     tourId,
		Order:      1,
		CountryId:  &country.Id,
		StayNights: &nights,
		Note:       "Fann mountains, seven lakes valley",
	}
	stop.IsActive = true
	if err := uow.TourContentRepository().CreateStop(ctx, stop); err != nil {
		log.Fatalf("Error: Failed to create route stop: %v", err)
	}
}

func seedCategory(ctx context.Context, uow unitofwork.UnitOfWork, name, slug string) *entity.TourCategory {
	existing, err := uow.TourCategoryRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if existing != nil {
		return existing
	}

	category := &entity.TourCategory{Id: uuid.New(), Name: name, Slug: slug}
	category.IsActive = true
	if err := uow.TourCategoryRepository().Create(ctx, category); err != nil {
		log.Fatalf("Error: Failed to create category: %v", err)
	}
	return category
}

func seedTag(ctx context.Context, uow unitofwork.UnitOfWork, name, slug string) *entity.TourTag {
	existing, err := uow.TourTagRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if existing != nil {
		return existing
	}

	tag := &entity.TourTag{Id: uuid.New(), Name: name, Slug: slug}
	tag.IsActive = true
	if err := uow.TourTagRepository().Create(ctx, tag); err != nil {
		log.Fatalf("Error: Failed to create tag: %v", err)
	}
	return tag
}
