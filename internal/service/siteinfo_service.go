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
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// SettingsSingletonKey addresses the single site-settings row.
const SettingsSingletonKey = "default"

type ISiteInfoService interface {
	GetSettings(ctx context.Context) (*dto.SiteSettingsResponse, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error)
	GetPage(ctx context.Context, slug string) (*dto.PageResponse, error)
	ListPages(ctx context.Context) ([]*dto.PageResponse, error)
}

type siteInfoService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewSiteInfoService(uowFactory unitofwork.RepositoryFactory) ISiteInfoService {
	return &siteInfoService{
		uowFactory: uowFactory,
		cache:      gocache.New(10*time.Minute, 30*time.Minute),
	}
}

func (s *siteInfoService) GetSettings(ctx context.Context) (*dto.SiteSettingsResponse, error) {
	if cached, found := s.cache.Get("settings"); found {
		return cached.(*dto.SiteSettingsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.SiteSettingsRepository().Get(ctx, SettingsSingletonKey)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		// Nothing configured yet, serve an empty shell rather than a 404.
		return &dto.SiteSettingsResponse{}, nil
	}

	res := toSiteSettingsResponse(settings)
	s.cache.Set("settings", res, gocache.DefaultExpiration)
	return res, nil
}

func (s *siteInfoService) UpdateSettings(ctx context.Context, req *dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SiteSettingsRepository().Get(ctx, SettingsSingletonKey)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.SiteSettings{
			Id:           uuid.New(),
			SingletonKey: SettingsSingletonKey,
		}
		settings.IsActive = true
	}

	settings.OrgName = req.OrgName
	settings.Slogan = req.Slogan
	settings.Logo = req.Logo
	settings.LogoDark = req.LogoDark
	settings.Favicon = req.Favicon
	settings.PrimaryPhone = req.PrimaryPhone
	settings.PrimaryEmail = req.PrimaryEmail
	settings.MetaTitle = req.MetaTitle
	settings.MetaDesc = req.MetaDesc
	settings.SocialLinks = req.SocialLinks

	if err := uow.SiteSettingsRepository().Upsert(ctx, settings); err != nil {
		return nil, err
	}

	s.cache.Delete("settings")
	return toSiteSettingsResponse(settings), nil
}

func (s *siteInfoService) GetPage(ctx context.Context, slug string) (*dto.PageResponse, error) {
	cacheKey := fmt.Sprintf("page:%s", slug)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.PageResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, err := uow.PageRepository().FindOne(ctx,
		specification.ActiveOnly{},
		specification.BySlug{Slug: slug},
	)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Page not found")
	}

	res := toPageResponse(page)
	s.cache.Set(cacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *siteInfoService) ListPages(ctx context.Context) ([]*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pages, err := uow.PageRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "\"order\""},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PageResponse, 0, len(pages))
	for _, page := range pages {
		result = append(result, toPageResponse(page))
	}
	return result, nil
}

func toSiteSettingsResponse(settings *entity.SiteSettings) *dto.SiteSettingsResponse {
	return &dto.SiteSettingsResponse{
		OrgName:      settings.OrgName,
		Slogan:       settings.Slogan,
		Logo:         settings.Logo,
		LogoDark:     settings.LogoDark,
		Favicon:      settings.Favicon,
		PrimaryPhone: settings.PrimaryPhone,
		PrimaryEmail: settings.PrimaryEmail,
		MetaTitle:    settings.MetaTitle,
		MetaDesc:     settings.MetaDesc,
		SocialLinks:  settings.SocialLinks,
	}
}

func toPageResponse(page *entity.Page) *dto.PageResponse {
	return &dto.PageResponse{
		Slug:      page.Slug,
		Title:     page.Title,
		Body:      page.Body,
		MetaTitle: page.MetaTitle,
		MetaDesc:  page.MetaDesc,
	}
}
