package controller

import (
	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/pkg/serverutils"
	"travel-agency-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITourController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type tourController struct {
	tourService service.ITourService
}

func NewTourController(tourService service.ITourService) ITourController {
	return &tourController{
		tourService: tourService,
	}
}

func (c *tourController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tours")
	h.Get("", c.List)
	h.Get(":slug", c.Show)
}

func (c *tourController) List(ctx *fiber.Ctx) error {
	var query dto.TourListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	tours, total, err := c.tourService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Tour list", fiber.Map{
		"tours": tours,
		"total": total,
	}))
}

func (c *tourController) Show(ctx *fiber.Ctx) error {
	res, err := c.tourService.Show(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tour detail", res))
}
