package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// ServiceRequestFilter narrows ledger listings. Zero values match everything.
type ServiceRequestFilter struct {
	Status       *domain.ServiceStatus
	CustomerID   *string
	TechnicianID *string
	SearchTerm   string
}

// ServiceRequestRepository is the ordered service request ledger.
type ServiceRequestRepository interface {
	List(ctx context.Context, filter ServiceRequestFilter) ([]domain.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (domain.ServiceRequest, error)
	InsertFront(ctx context.Context, req domain.ServiceRequest) error
	// Update applies mutate to a copy of the record and commits it only when mutate returns nil.
	Update(ctx context.Context, id string, mutate func(*domain.ServiceRequest) error) (domain.ServiceRequest, error)
}

type serviceRequestRepository struct {
	mu       sync.RWMutex
	requests []domain.ServiceRequest
}

// NewServiceRequestRepository seeds the ledger with the given requests in order.
func NewServiceRequestRepository(seed []domain.ServiceRequest) ServiceRequestRepository {
	requests := make([]domain.ServiceRequest, 0, len(seed))
	for _, req := range seed {
		requests = append(requests, req.Clone())
	}
	return &serviceRequestRepository{requests: requests}
}

func (r *serviceRequestRepository) List(_ context.Context, filter ServiceRequestFilter) ([]domain.ServiceRequest, error) {
	search := strings.ToLower(strings.TrimSpace(filter.SearchTerm))

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.ServiceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.CustomerID != nil && req.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.TechnicianID != nil && (req.AssignedTechnicianID == nil || *req.AssignedTechnicianID != *filter.TechnicianID) {
			continue
		}
		if search != "" && !matchesSearch(req, search) {
			continue
		}
		result = append(result, req.Clone())
	}
	return result, nil
}

func matchesSearch(req domain.ServiceRequest, needle string) bool {
	return strings.Contains(strings.ToLower(req.CustomerName), needle) ||
		strings.Contains(strings.ToLower(req.ProductName), needle) ||
		strings.Contains(strings.ToLower(req.ID), needle)
}

func (r *serviceRequestRepository) GetByID(_ context.Context, id string) (domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.requests[i].Clone(), nil
	}
	return domain.ServiceRequest{}, ErrNotFound
}

func (r *serviceRequestRepository) InsertFront(_ context.Context, req domain.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(req.ID) >= 0 {
		return ErrDuplicateID
	}
	r.requests = append([]domain.ServiceRequest{req.Clone()}, r.requests...)
	return nil
}

func (r *serviceRequestRepository) Update(_ context.Context, id string, mutate func(*domain.ServiceRequest) error) (domain.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ServiceRequest{}, ErrNotFound
	}
	draft := r.requests[i].Clone()
	if err := mutate(&draft); err != nil {
		return domain.ServiceRequest{}, err
	}
	draft.ID = id
	r.requests[i] = draft
	return draft.Clone(), nil
}

// indexOf must be called with the lock held.
func (r *serviceRequestRepository) indexOf(id string) int {
	for i := range r.requests {
		if r.requests[i].ID == id {
			return i
		}
	}
	return -1
}
