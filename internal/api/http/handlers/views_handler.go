package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/access"
	"github.com/a1technologies/cooling-crm/internal/api/dto"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/report"
	"github.com/a1technologies/cooling-crm/internal/service"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

// ViewsHandler resolves page paths against the caller's identity and returns the data each
// page needs. Denied and unknown paths redirect home.
type ViewsHandler struct {
	auth    *service.AuthService
	catalog *service.CatalogService
	ledger  *service.LedgerService
	content *service.ContentService
}

// ViewsDependencies bundles the registries pages read from.
type ViewsDependencies struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Ledger  *service.LedgerService
	Content *service.ContentService
}

// NewViewsHandler constructs handler.
func NewViewsHandler(deps ViewsDependencies) *ViewsHandler {
	return &ViewsHandler{auth: deps.Auth, catalog: deps.Catalog, ledger: deps.Ledger, content: deps.Content}
}

// Serve GET on any page path.
func (h *ViewsHandler) Serve(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	res := access.Resolve(identity, c.Path())
	if res.IsRedirect() {
		return c.Redirect(res.Redirect, http.StatusFound)
	}

	if res.View == access.ViewPrintReport {
		return h.printReport(c, res.Params["id"])
	}

	resp := dto.ViewResponse{View: string(res.View), Params: res.Params}
	if identity != nil {
		user := identityResponse(*identity)
		resp.User = &user
		resp.Panel = identity.Role.PanelName()
	}

	data, found, err := h.viewData(c.UserContext(), res, identity)
	if err != nil {
		return err
	}
	resp.Data = data
	if !found {
		c.Status(http.StatusNotFound)
	}
	return c.JSON(resp)
}

func (h *ViewsHandler) viewData(ctx context.Context, res access.Resolution, identity *domain.Identity) (any, bool, error) {
	switch res.View {
	case access.ViewLanding:
		products, err := h.catalog.List(ctx)
		if err != nil {
			return nil, false, err
		}
		return dto.LandingData{Content: contentResponse(h.content.Get()), Products: productResponses(products)}, true, nil

	case access.ViewLogin:
		accounts := h.auth.DemoAccounts()
		items := make([]dto.DemoAccount, 0, len(accounts))
		for _, a := range accounts {
			items = append(items, dto.DemoAccount{Email: a.Email, Role: a.Role})
		}
		return dto.LoginData{DemoAccounts: items}, true, nil

	case access.ViewProductDetail:
		product, err := h.catalog.Get(ctx, res.Params["id"])
		if apperrors.HasCode(err, "NOT_FOUND") {
			return dto.ProductDetailData{}, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		resp := productResponse(product)
		return dto.ProductDetailData{Product: &resp}, true, nil

	case access.ViewAdminDashboard:
		return h.adminData(ctx)

	case access.ViewTechnicianDashboard:
		assigned, err := h.ledger.ListForTechnician(ctx, identity.ID)
		if err != nil {
			return nil, false, err
		}
		return dto.TechnicianDashboardData{Assigned: serviceRequestResponses(assigned)}, true, nil

	case access.ViewCustomerDashboard:
		requests, err := h.ledger.ListForCustomer(ctx, identity.ID)
		if err != nil {
			return nil, false, err
		}
		products, err := h.catalog.List(ctx)
		if err != nil {
			return nil, false, err
		}
		return dto.CustomerDashboardData{
			Requests: serviceRequestResponses(requests),
			Products: productResponses(products),
		}, true, nil
	}
	return nil, false, fmt.Errorf("unhandled view %q", res.View)
}

func (h *ViewsHandler) adminData(ctx context.Context) (any, bool, error) {
	requests, err := h.ledger.Filter(ctx, nil, "")
	if err != nil {
		return nil, false, err
	}
	roster, err := h.ledger.Technicians(ctx)
	if err != nil {
		return nil, false, err
	}
	products, err := h.catalog.List(ctx)
	if err != nil {
		return nil, false, err
	}
	return dto.AdminDashboardData{
		ServiceRequests: serviceRequestResponses(requests),
		Technicians:     technicianResponses(roster),
		Products:        productResponses(products),
		Content:         contentResponse(h.content.Get()),
	}, true, nil
}

// printReport renders the report as HTML that opens the print dialog, or as PDF with
// ?format=pdf. ?print=false suppresses the dialog.
func (h *ViewsHandler) printReport(c *fiber.Ctx, id string) error {
	req, err := h.ledger.Get(c.UserContext(), id)
	if apperrors.HasCode(err, "NOT_FOUND") {
		c.Type("html")
		return c.Status(http.StatusNotFound).Send(report.NotFoundHTML())
	}
	if err != nil {
		return err
	}

	r := report.FromRequest(req)
	if c.Query("format") == "pdf" {
		body, err := report.RenderPDF(r)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="service-report-%s.pdf"`, req.ID))
		return c.Send(body)
	}

	body, err := report.RenderHTML(r, c.QueryBool("print", true))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Type("html")
	return c.Send(body)
}
