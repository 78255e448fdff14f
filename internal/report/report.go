// Package report renders the printable service report for a service request.
package report

import (
	"fmt"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

const (
	CompanyName    = "A1 Technologies MLG Private Limited"
	CompanyAddress = "Soygaon, Malegaon, Nashik, Maharashtra, 423203, India"
	Title          = "SERVICE REPORT / LR FORMAT"

	notAssigned = "N/A"
	blank       = "..."
	noRating    = "Not provided"
)

// ServiceReport is the fixed field set printed for a request.
type ServiceReport struct {
	ReportID        string
	Date            string
	CustomerName    string
	TechnicianName  string
	Address         string
	ProductName     string
	Issue           string
	Status          string
	TechnicianNotes string
	Rating          string
	Remarks         string
}

// FromRequest fills placeholders for the fields a request does not carry yet.
func FromRequest(req domain.ServiceRequest) ServiceReport {
	r := ServiceReport{
		ReportID:        req.ID,
		Date:            req.CreatedAt.Format("02/01/2006"),
		CustomerName:    req.CustomerName,
		TechnicianName:  notAssigned,
		Address:         req.Address,
		ProductName:     req.ProductName,
		Issue:           req.IssueDescription,
		Status:          req.Status.Label(),
		TechnicianNotes: blank,
		Rating:          noRating,
		Remarks:         blank,
	}
	if req.AssignedTechnicianName != nil && *req.AssignedTechnicianName != "" {
		r.TechnicianName = *req.AssignedTechnicianName
	}
	if req.TechnicianNotes != nil && *req.TechnicianNotes != "" {
		r.TechnicianNotes = *req.TechnicianNotes
	}
	if req.Feedback != nil {
		r.Rating = fmt.Sprintf("%d / 5", req.Feedback.Rating)
		if req.Feedback.Remarks != "" {
			r.Remarks = req.Feedback.Remarks
		}
	}
	return r
}
