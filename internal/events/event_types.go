package events

import (
	"time"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventServiceRequestCreated   EventType = "service_request_created"
	EventServiceRequestAssigned  EventType = "service_request_assigned"
	EventServiceRequestCompleted EventType = "service_request_completed"
	EventContentPersisted        EventType = "content_persisted"
)

// Actor identifies who caused an event.
type Actor struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ServiceRequestCreatedPayload payload.
type ServiceRequestCreatedPayload struct {
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	Address      string `json:"address"`
}

// ServiceRequestAssignedPayload payload.
type ServiceRequestAssignedPayload struct {
	TechnicianID   string `json:"technician_id"`
	TechnicianName string `json:"technician_name"`
	CustomerName   string `json:"customer_name"`
}

// ServiceRequestCompletedPayload payload.
type ServiceRequestCompletedPayload struct {
	TechnicianID string `json:"technician_id"`
	Rating       int    `json:"rating"`
}

// ContentPersistedPayload payload.
type ContentPersistedPayload struct {
	Testimonials int `json:"testimonials"`
}
