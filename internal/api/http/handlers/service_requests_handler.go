package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/api/dto"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/service"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

// ServiceRequestsHandler manages the service request ledger endpoints.
type ServiceRequestsHandler struct {
	service   *service.LedgerService
	validator *validator.Validator
}

// NewServiceRequestsHandler constructs handler.
func NewServiceRequestsHandler(ledger *service.LedgerService, v *validator.Validator) *ServiceRequestsHandler {
	return &ServiceRequestsHandler{service: ledger, validator: v}
}

// Create POST /api/service-requests.
func (h *ServiceRequestsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	created, err := h.service.Submit(c.UserContext(), auth.IdentityFromContext(c), service.SubmitInput{
		ProductID:        req.ProductID,
		IssueDescription: req.IssueDescription,
		Address:          req.Address,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": serviceRequestResponse(created)})
}

// Mine GET /api/service-requests/mine.
func (h *ServiceRequestsHandler) Mine(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return apperrors.NewUnauthorized("customer required")
	}
	requests, err := h.service.ListForCustomer(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponses(requests)})
}

// Assigned GET /api/service-requests/assigned.
func (h *ServiceRequestsHandler) Assigned(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return apperrors.NewUnauthorized("technician required")
	}
	requests, err := h.service.ListForTechnician(c.UserContext(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponses(requests)})
}

// List GET /api/service-requests?status=&search=.
func (h *ServiceRequestsHandler) List(c *fiber.Ctx) error {
	var query dto.ServiceRequestListQuery
	if err := c.QueryParser(&query); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	status, err := parseStatusFilter(query.Status)
	if err != nil {
		return err
	}
	requests, err := h.service.Filter(c.UserContext(), status, query.Search)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponses(requests)})
}

// Get GET /api/service-requests/:id.
func (h *ServiceRequestsHandler) Get(c *fiber.Ctx) error {
	req, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponse(req)})
}

// Assign POST /api/service-requests/:id/assign.
func (h *ServiceRequestsHandler) Assign(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.AssignServiceRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	updated, err := h.service.Assign(c.UserContext(), *identity, c.Params("id"), req.TechnicianID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponse(updated)})
}

// Complete POST /api/service-requests/:id/complete.
func (h *ServiceRequestsHandler) Complete(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return apperrors.NewUnauthorized("technician required")
	}
	var req dto.CompleteServiceRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	updated, err := h.service.Complete(c.UserContext(), *identity, c.Params("id"), service.CompleteInput{
		TechnicianID: identity.ID,
		Notes:        req.Notes,
		Rating:       req.Rating,
		Remarks:      req.Remarks,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponse(updated)})
}

// History GET /api/service-requests/:id/history.
func (h *ServiceRequestsHandler) History(c *fiber.Ctx) error {
	changes, err := h.service.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": statusChangeResponses(changes)})
}

// Technicians GET /api/technicians.
func (h *ServiceRequestsHandler) Technicians(c *fiber.Ctx) error {
	roster, err := h.service.Technicians(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": technicianResponses(roster)})
}
