package controller

import (
	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/pkg/serverutils"
	"travel-agency-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListApplications(ctx *fiber.Ctx) error
	ShowApplication(ctx *fiber.Ctx) error
	UpdateApplicationStatus(ctx *fiber.Ctx) error
	DeleteApplication(ctx *fiber.Ctx) error
	ListContactMessages(ctx *fiber.Ctx) error
	UpdateContactStatus(ctx *fiber.Ctx) error
	DeleteContactMessage(ctx *fiber.Ctx) error
	UpdateSiteSettings(ctx *fiber.Ctx) error
}

type adminController struct {
	leadService     service.ILeadService
	siteInfoService service.ISiteInfoService
}

func NewAdminController(leadService service.ILeadService, siteInfoService service.ISiteInfoService) IAdminController {
	return &adminController{
		leadService:     leadService,
		siteInfoService: siteInfoService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/applications", c.ListApplications)
	h.Get("/applications/:id", c.ShowApplication)
	h.Patch("/applications/:id/status", c.UpdateApplicationStatus)
	h.Delete("/applications/:id", c.DeleteApplication)

	h.Get("/contact-messages", c.ListContactMessages)
	h.Patch("/contact-messages/:id/status", c.UpdateContactStatus)
	h.Delete("/contact-messages/:id", c.DeleteContactMessage)

	h.Put("/site/settings", c.UpdateSiteSettings)
}

func (c *adminController) ListApplications(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)
	status := ctx.Query("status")

	applications, total, err := c.leadService.ListApplications(ctx.Context(), status, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Application list", fiber.Map{
		"applications": applications,
		"total":        total,
	}))
}

func (c *adminController) ShowApplication(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.leadService.ShowApplication(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application detail", res))
}

func (c *adminController) UpdateApplicationStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.leadService.UpdateApplicationStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application status updated", res))
}

func (c *adminController) DeleteApplication(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := c.leadService.SoftDeleteApplication(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application deleted", nil))
}

func (c *adminController) ListContactMessages(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)
	status := ctx.Query("status")

	messages, total, err := c.leadService.ListContactMessages(ctx.Context(), status, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Contact message list", fiber.Map{
		"messages": messages,
		"total":    total,
	}))
}

func (c *adminController) UpdateContactStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateContactStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.leadService.UpdateContactStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact status updated", res))
}

func (c *adminController) DeleteContactMessage(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := c.leadService.SoftDeleteContactMessage(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact message deleted", nil))
}

func (c *adminController) UpdateSiteSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateSiteSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.siteInfoService.UpdateSettings(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Site settings updated", res))
}
