package controller

import (
	"travel-agency-be/internal/pkg/serverutils"
	"travel-agency-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILocationController interface {
	RegisterRoutes(r fiber.Router)
	Countries(ctx *fiber.Ctx) error
	Cities(ctx *fiber.Ctx) error
}

type locationController struct {
	locationService service.ILocationService
}

func NewLocationController(locationService service.ILocationService) ILocationController {
	return &locationController{
		locationService: locationService,
	}
}

func (c *locationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/locations")
	h.Get("/countries", c.Countries)
	h.Get("/cities", c.Cities)
}

func (c *locationController) Countries(ctx *fiber.Ctx) error {
	res, err := c.locationService.Countries(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Country list", res))
}

func (c *locationController) Cities(ctx *fiber.Ctx) error {
	iso2 := ctx.Query("country")
	res, err := c.locationService.Cities(ctx.Context(), iso2)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("City list", res))
}
