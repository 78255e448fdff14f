package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/api/dto"
	"github.com/a1technologies/cooling-crm/internal/domain"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

func parseBody(c *fiber.Ctx, v *validator.Validator, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return v.Struct(out)
}

func identityResponse(identity domain.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  identity.Name,
		Role:  identity.Role,
	}
}

func productResponse(p domain.Product) dto.ProductResponse {
	specs := p.Specifications
	if specs == nil {
		specs = []string{}
	}
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		ImageURL:       p.ImageURL,
		Specifications: specs,
		Price:          p.Price,
		Description:    p.Description,
	}
}

func productResponses(products []domain.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, productResponse(p))
	}
	return items
}

func productDraft(req dto.ProductRequest) domain.ProductDraft {
	return domain.ProductDraft{
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
		Price:          req.Price,
		Description:    req.Description,
	}
}

func serviceRequestResponse(r domain.ServiceRequest) dto.ServiceRequestResponse {
	resp := dto.ServiceRequestResponse{
		ID:                     r.ID,
		CustomerID:             r.CustomerID,
		CustomerName:           r.CustomerName,
		ProductName:            r.ProductName,
		IssueDescription:       r.IssueDescription,
		Address:                r.Address,
		Status:                 r.Status,
		StatusLabel:            r.Status.Label(),
		AssignedTechnicianID:   r.AssignedTechnicianID,
		AssignedTechnicianName: r.AssignedTechnicianName,
		TechnicianNotes:        r.TechnicianNotes,
		CreatedAt:              r.CreatedAt,
	}
	if r.Feedback != nil {
		resp.Feedback = &dto.FeedbackResponse{Rating: r.Feedback.Rating, Remarks: r.Feedback.Remarks}
	}
	return resp
}

func serviceRequestResponses(requests []domain.ServiceRequest) []dto.ServiceRequestResponse {
	items := make([]dto.ServiceRequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, serviceRequestResponse(r))
	}
	return items
}

func statusChangeResponses(changes []domain.StatusChange) []dto.StatusChangeResponse {
	items := make([]dto.StatusChangeResponse, 0, len(changes))
	for _, ch := range changes {
		items = append(items, dto.StatusChangeResponse{
			From:      ch.From,
			To:        ch.To,
			ActorID:   ch.ActorID,
			Comment:   ch.Comment,
			CreatedAt: ch.CreatedAt,
		})
	}
	return items
}

func technicianResponses(roster []domain.Technician) []dto.TechnicianResponse {
	items := make([]dto.TechnicianResponse, 0, len(roster))
	for _, t := range roster {
		items = append(items, dto.TechnicianResponse{ID: t.ID, Name: t.Name})
	}
	return items
}

func testimonialResponse(t domain.Testimonial) dto.TestimonialResponse {
	return dto.TestimonialResponse{ID: t.ID, CustomerName: t.CustomerName, Company: t.Company, Text: t.Text}
}

func contentResponse(doc domain.ContentDocument) dto.ContentResponse {
	resp := dto.ContentResponse{
		Hero:         dto.HeroResponse{Title: doc.Hero.Title, Subtitle: doc.Hero.Subtitle},
		About:        dto.AboutResponse{Title: doc.About.Title, Content: doc.About.Content},
		Stats:        make([]dto.StatResponse, 0, len(doc.Stats)),
		Features:     make([]dto.FeatureResponse, 0, len(doc.Features)),
		Testimonials: make([]dto.TestimonialResponse, 0, len(doc.Testimonials)),
	}
	for _, s := range doc.Stats {
		resp.Stats = append(resp.Stats, dto.StatResponse{ID: s.ID, Value: s.Value, Label: s.Label})
	}
	for _, f := range doc.Features {
		resp.Features = append(resp.Features, dto.FeatureResponse{ID: f.ID, Icon: f.Icon, Title: f.Title, Description: f.Description})
	}
	for _, t := range doc.Testimonials {
		resp.Testimonials = append(resp.Testimonials, testimonialResponse(t))
	}
	return resp
}

// parseStatusFilter maps the status query value; empty and "all" mean no filter.
func parseStatusFilter(raw string) (*domain.ServiceStatus, error) {
	if raw == "" || raw == "all" {
		return nil, nil
	}
	status := domain.ServiceStatus(raw)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status filter", map[string]any{"status": raw})
	}
	return &status, nil
}
