package domain

import "time"

// ServiceStatus enumerates lifecycle states for service requests.
type ServiceStatus string

const (
	ServiceStatusUnsolved  ServiceStatus = "unsolved"
	ServiceStatusInProcess ServiceStatus = "in_process"
	ServiceStatusSolved    ServiceStatus = "solved"
)

// Valid reports whether s is a known status.
func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceStatusUnsolved, ServiceStatusInProcess, ServiceStatusSolved:
		return true
	}
	return false
}

// Label is the human readable status used on dashboards and printed reports.
func (s ServiceStatus) Label() string {
	switch s {
	case ServiceStatusUnsolved:
		return "Unsolved"
	case ServiceStatusInProcess:
		return "In Process"
	case ServiceStatusSolved:
		return "Solved"
	default:
		return string(s)
	}
}

// Feedback is the customer's rating collected at completion.
type Feedback struct {
	Rating  int
	Remarks string
}

// ServiceRequest is the aggregate for a customer's service booking.
type ServiceRequest struct {
	ID                     string
	CustomerID             string
	CustomerName           string
	ProductName            string
	IssueDescription       string
	Address                string
	Status                 ServiceStatus
	AssignedTechnicianID   *string
	AssignedTechnicianName *string
	TechnicianNotes        *string
	Feedback               *Feedback
	CreatedAt              time.Time
}

// Clone returns a deep copy so callers cannot mutate registry state.
func (r ServiceRequest) Clone() ServiceRequest {
	out := r
	if r.AssignedTechnicianID != nil {
		id := *r.AssignedTechnicianID
		out.AssignedTechnicianID = &id
	}
	if r.AssignedTechnicianName != nil {
		name := *r.AssignedTechnicianName
		out.AssignedTechnicianName = &name
	}
	if r.TechnicianNotes != nil {
		notes := *r.TechnicianNotes
		out.TechnicianNotes = &notes
	}
	if r.Feedback != nil {
		fb := *r.Feedback
		out.Feedback = &fb
	}
	return out
}
