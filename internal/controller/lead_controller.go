package controller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"travel-agency-be/internal/dto"
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/pkg/serverutils"
	"travel-agency-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router, applicationLimiter, contactLimiter fiber.Handler)
	CreateApplication(ctx *fiber.Ctx) error
	CreateContactMessage(ctx *fiber.Ctx) error
}

type leadController struct {
	leadService service.ILeadService
	uploadDir   string
}

func NewLeadController(leadService service.ILeadService, uploadDir string) ILeadController {
	return &leadController{
		leadService: leadService,
		uploadDir:   uploadDir,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router, applicationLimiter, contactLimiter fiber.Handler) {
	h := r.Group("/leads")
	h.Post("/applications", applicationLimiter, c.CreateApplication)
	h.Post("/contact", contactLimiter, c.CreateContactMessage)
}

func (c *leadController) CreateApplication(ctx *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// Attachments only arrive via multipart; JSON bodies carry none.
	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["attachments"] {
			stored, err := c.storeUpload(ctx, file)
			if err != nil {
				return err
			}
			req.Attachments = append(req.Attachments, dto.AttachmentPayload{
				File:  stored,
				Title: file.Filename,
			})
		}
	}

	res, err := c.leadService.CreateApplication(ctx.Context(), &req, requestMeta(ctx))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Application received", res))
}

func (c *leadController) CreateContactMessage(ctx *fiber.Ctx) error {
	var req dto.CreateContactMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.leadService.CreateContactMessage(ctx.Context(), &req, requestMeta(ctx))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message received", res))
}

// storeUpload writes the part to disk and returns the public path stored on
// the attachment row.
func (c *leadController) storeUpload(ctx *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	name := storedName(file.Filename)
	dst := filepath.Join(c.uploadDir, "applications", name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := ctx.SaveFile(file, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("applications", name)), nil
}

func requestMeta(ctx *fiber.Ctx) entity.RequestMeta {
	return entity.RequestMeta{
		ClientIP:  ctx.IP(),
		UserAgent: ctx.Get("User-Agent"),
		Referrer:  ctx.Get("Referer"),
	}
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
}

func storedName(original string) string {
	return fmt.Sprintf("%s_%s", uuid.New().String()[:8], sanitizeFilename(original))
}
