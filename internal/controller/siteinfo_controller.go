package controller

import (
	"travel-agency-be/internal/pkg/serverutils"
	"travel-agency-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISiteInfoController interface {
	RegisterRoutes(r fiber.Router)
	Settings(ctx *fiber.Ctx) error
	Pages(ctx *fiber.Ctx) error
	Page(ctx *fiber.Ctx) error
}

type siteInfoController struct {
	siteInfoService service.ISiteInfoService
}

func NewSiteInfoController(siteInfoService service.ISiteInfoService) ISiteInfoController {
	return &siteInfoController{
		siteInfoService: siteInfoService,
	}
}

func (c *siteInfoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/site")
	h.Get("/settings", c.Settings)
	h.Get("/pages", c.Pages)
	h.Get("/pages/:slug", c.Page)
}

func (c *siteInfoController) Settings(ctx *fiber.Ctx) error {
	res, err := c.siteInfoService.GetSettings(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Site settings", res))
}

func (c *siteInfoController) Pages(ctx *fiber.Ctx) error {
	res, err := c.siteInfoService.ListPages(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Page list", res))
}

func (c *siteInfoController) Page(ctx *fiber.Ctx) error {
	res, err := c.siteInfoService.GetPage(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Page detail", res))
}
