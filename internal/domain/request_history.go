package domain

import "time"

// StatusChange is an immutable audit entry for a service request transition.
type StatusChange struct {
	RequestID string
	From      ServiceStatus
	To        ServiceStatus
	ActorID   string
	Comment   string
	CreatedAt time.Time
}
