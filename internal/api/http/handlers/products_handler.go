package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/api/dto"
	"github.com/a1technologies/cooling-crm/internal/service"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

// ProductsHandler serves the catalog.
type ProductsHandler struct {
	service   *service.CatalogService
	validator *validator.Validator
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalog *service.CatalogService, v *validator.Validator) *ProductsHandler {
	return &ProductsHandler{service: catalog, validator: v}
}

// List GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// Get GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// Create POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	product, err := h.service.Create(c.UserContext(), productDraft(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": productResponse(product)})
}

// Update PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	product, err := h.service.Update(c.UserContext(), c.Params("id"), productDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// Delete DELETE /api/products/:id?confirm=true.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id"), c.QueryBool("confirm", false)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
