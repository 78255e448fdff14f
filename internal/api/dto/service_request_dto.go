package dto

import (
	"time"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// CreateServiceRequest is the customer booking form.
type CreateServiceRequest struct {
	ProductID        string `json:"product_id" validate:"required"`
	IssueDescription string `json:"issue_description" validate:"required,max=2000"`
	Address          string `json:"address" validate:"required,max=500"`
}

// AssignServiceRequest payload.
type AssignServiceRequest struct {
	TechnicianID string `json:"technician_id" validate:"required"`
}

// CompleteServiceRequest is the technician's completion report. Rating is range checked by
// the ledger so the caller gets the rating prompt.
type CompleteServiceRequest struct {
	Notes   string `json:"notes" validate:"max=2000"`
	Rating  int    `json:"rating"`
	Remarks string `json:"remarks" validate:"max=1000"`
}

// ServiceRequestListQuery captures admin filters.
type ServiceRequestListQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

// FeedbackResponse is the customer's rating.
type FeedbackResponse struct {
	Rating  int    `json:"rating"`
	Remarks string `json:"remarks"`
}

// ServiceRequestResponse represents a ledger entry.
type ServiceRequestResponse struct {
	ID                     string               `json:"id"`
	CustomerID             string               `json:"customer_id"`
	CustomerName           string               `json:"customer_name"`
	ProductName            string               `json:"product_name"`
	IssueDescription       string               `json:"issue_description"`
	Address                string               `json:"address"`
	Status                 domain.ServiceStatus `json:"status"`
	StatusLabel            string               `json:"status_label"`
	AssignedTechnicianID   *string              `json:"assigned_technician_id,omitempty"`
	AssignedTechnicianName *string              `json:"assigned_technician_name,omitempty"`
	TechnicianNotes        *string              `json:"technician_notes,omitempty"`
	Feedback               *FeedbackResponse    `json:"feedback,omitempty"`
	CreatedAt              time.Time            `json:"created_at"`
}

// StatusChangeResponse is one audit entry.
type StatusChangeResponse struct {
	From      domain.ServiceStatus `json:"from"`
	To        domain.ServiceStatus `json:"to"`
	ActorID   string               `json:"actor_id"`
	Comment   string               `json:"comment,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// TechnicianResponse is a roster entry.
type TechnicianResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
