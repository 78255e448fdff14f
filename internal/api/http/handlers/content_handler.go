package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/api/dto"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/service"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

// ContentHandler serves and edits the marketing site content.
type ContentHandler struct {
	service   *service.ContentService
	validator *validator.Validator
}

// NewContentHandler constructs handler.
func NewContentHandler(content *service.ContentService, v *validator.Validator) *ContentHandler {
	return &ContentHandler{service: content, validator: v}
}

// Get GET /api/content.
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": contentResponse(h.service.Get())})
}

// UpdateHero PUT /api/content/hero.
func (h *ContentHandler) UpdateHero(c *fiber.Ctx) error {
	var req dto.HeroRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	doc := h.service.UpdateHero(domain.Hero{Title: req.Title, Subtitle: req.Subtitle})
	return c.JSON(fiber.Map{"data": contentResponse(doc)})
}

// UpdateAbout PUT /api/content/about.
func (h *ContentHandler) UpdateAbout(c *fiber.Ctx) error {
	var req dto.AboutRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	doc := h.service.UpdateAbout(domain.About{Title: req.Title, Content: req.Content})
	return c.JSON(fiber.Map{"data": contentResponse(doc)})
}

// ReplaceStats PUT /api/content/stats.
func (h *ContentHandler) ReplaceStats(c *fiber.Ctx) error {
	var req dto.ReplaceStatsRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	stats := make([]domain.Stat, 0, len(req.Stats))
	for _, s := range req.Stats {
		stats = append(stats, domain.Stat{ID: s.ID, Value: s.Value, Label: s.Label})
	}
	doc, err := h.service.ReplaceStats(stats)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contentResponse(doc)})
}

// ReplaceFeatures PUT /api/content/features.
func (h *ContentHandler) ReplaceFeatures(c *fiber.Ctx) error {
	var req dto.ReplaceFeaturesRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	features := make([]domain.Feature, 0, len(req.Features))
	for _, f := range req.Features {
		features = append(features, domain.Feature{ID: f.ID, Icon: f.Icon, Title: f.Title, Description: f.Description})
	}
	doc, err := h.service.ReplaceFeatures(features)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contentResponse(doc)})
}

// UpsertTestimonial PUT /api/content/testimonials.
func (h *ContentHandler) UpsertTestimonial(c *fiber.Ctx) error {
	var req dto.TestimonialRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	saved, err := h.service.UpsertTestimonial(domain.TestimonialDraft{
		ID:           req.ID,
		CustomerName: req.CustomerName,
		Company:      req.Company,
		Text:         req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialResponse(saved)})
}

// DeleteTestimonial DELETE /api/content/testimonials/:id?confirm=true.
func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	if err := h.service.DeleteTestimonial(c.Params("id"), c.QueryBool("confirm", false)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Persist POST /api/content/persist.
func (h *ContentHandler) Persist(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	if err := h.service.Persist(c.UserContext(), *identity); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"persisted": true}})
}
