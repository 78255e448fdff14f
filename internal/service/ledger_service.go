package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/events"
	"github.com/a1technologies/cooling-crm/internal/idgen"
	"github.com/a1technologies/cooling-crm/internal/repository"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

// RatingRequiredMessage is shown when a completion carries no usable rating.
const RatingRequiredMessage = "Please ask the customer for a rating."

// LedgerService coordinates the service request lifecycle.
type LedgerService struct {
	requests    repository.ServiceRequestRepository
	products    repository.ProductRepository
	technicians repository.TechnicianRepository
	history     repository.StatusHistoryRepository
	dispatcher  events.Dispatcher
	ids         idgen.Generator
	now         func() time.Time
}

// LedgerDependencies bundles repositories for the ledger service.
type LedgerDependencies struct {
	RequestRepo    repository.ServiceRequestRepository
	ProductRepo    repository.ProductRepository
	TechnicianRepo repository.TechnicianRepository
	HistoryRepo    repository.StatusHistoryRepository
	Dispatcher     events.Dispatcher
	IDs            idgen.Generator
	Clock          func() time.Time
}

// SubmitInput is the customer's booking form.
type SubmitInput struct {
	ProductID        string
	IssueDescription string
	Address          string
}

// CompleteInput is the technician's completion report. An empty TechnicianID skips the
// assignee check.
type CompleteInput struct {
	TechnicianID string
	Notes        string
	Rating       int
	Remarks      string
}

// NewLedgerService constructs the service.
func NewLedgerService(deps LedgerDependencies) *LedgerService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &LedgerService{
		requests:    deps.RequestRepo,
		products:    deps.ProductRepo,
		technicians: deps.TechnicianRepo,
		history:     deps.HistoryRepo,
		dispatcher:  deps.Dispatcher,
		ids:         deps.IDs,
		now:         clock,
	}
}

var allowedTransitions = map[domain.ServiceStatus][]domain.ServiceStatus{
	domain.ServiceStatusUnsolved:  {domain.ServiceStatusInProcess},
	domain.ServiceStatusInProcess: {domain.ServiceStatusSolved},
	domain.ServiceStatusSolved:    {},
}

func isValidTransition(current, next domain.ServiceStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Submit books a new unsolved request for customer against a catalog product.
func (s *LedgerService) Submit(ctx context.Context, customer *domain.Identity, input SubmitInput) (domain.ServiceRequest, error) {
	if customer == nil {
		return domain.ServiceRequest{}, apperrors.NewUnauthorized("customer session required")
	}

	details := map[string]any{}
	if strings.TrimSpace(input.IssueDescription) == "" {
		details["issue_description"] = "required"
	}
	if strings.TrimSpace(input.Address) == "" {
		details["address"] = "required"
	}
	if len(details) > 0 {
		return domain.ServiceRequest{}, apperrors.NewValidationError("invalid service request", details)
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ServiceRequest{}, apperrors.NewNotFound("product", map[string]any{"product_id": input.ProductID})
		}
		return domain.ServiceRequest{}, apperrors.MapError(err)
	}

	req := domain.ServiceRequest{
		ID:               s.ids.Next(idgen.PrefixServiceRequest),
		CustomerID:       customer.ID,
		CustomerName:     customer.Name,
		ProductName:      product.Name,
		IssueDescription: strings.TrimSpace(input.IssueDescription),
		Address:          strings.TrimSpace(input.Address),
		Status:           domain.ServiceStatusUnsolved,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.requests.InsertFront(ctx, req); err != nil {
		return domain.ServiceRequest{}, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventServiceRequestCreated,
		SubjectID: req.ID,
		Actor:     actorOf(*customer),
		Payload: events.ServiceRequestCreatedPayload{
			CustomerName: req.CustomerName,
			ProductName:  req.ProductName,
			Address:      req.Address,
		},
	})
	return req, nil
}

// Assign hands an unsolved request to a rostered technician.
func (s *LedgerService) Assign(ctx context.Context, actor domain.Identity, requestID, technicianID string) (domain.ServiceRequest, error) {
	tech, err := s.technicians.GetByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ServiceRequest{}, apperrors.NewInvalidTransition(
				string(domain.ServiceStatusUnsolved), string(domain.ServiceStatusInProcess),
				map[string]any{"technician_id": technicianID, "reason": "unknown technician"})
		}
		return domain.ServiceRequest{}, apperrors.MapError(err)
	}

	var previous domain.ServiceStatus
	updated, err := s.requests.Update(ctx, requestID, func(req *domain.ServiceRequest) error {
		previous = req.Status
		if !isValidTransition(req.Status, domain.ServiceStatusInProcess) {
			return apperrors.NewInvalidTransition(string(req.Status), string(domain.ServiceStatusInProcess), map[string]any{"request_id": requestID})
		}
		id, name := tech.ID, tech.Name
		req.AssignedTechnicianID = &id
		req.AssignedTechnicianName = &name
		req.Status = domain.ServiceStatusInProcess
		return nil
	})
	if err != nil {
		return domain.ServiceRequest{}, requestError(err, requestID)
	}

	if err := s.recordStatusChange(ctx, actor, requestID, previous, updated.Status, "assigned to "+tech.Name); err != nil {
		return domain.ServiceRequest{}, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventServiceRequestAssigned,
		SubjectID: requestID,
		Actor:     actorOf(actor),
		Payload: events.ServiceRequestAssignedPayload{
			TechnicianID:   tech.ID,
			TechnicianName: tech.Name,
			CustomerName:   updated.CustomerName,
		},
	})
	return updated, nil
}

// Complete closes an in-process request with the technician's notes and the customer's rating.
func (s *LedgerService) Complete(ctx context.Context, actor domain.Identity, requestID string, input CompleteInput) (domain.ServiceRequest, error) {
	var previous domain.ServiceStatus
	updated, err := s.requests.Update(ctx, requestID, func(req *domain.ServiceRequest) error {
		previous = req.Status
		if !isValidTransition(req.Status, domain.ServiceStatusSolved) {
			return apperrors.NewInvalidTransition(string(req.Status), string(domain.ServiceStatusSolved), map[string]any{"request_id": requestID})
		}
		if input.Rating < 1 || input.Rating > 5 {
			return apperrors.NewValidationError(RatingRequiredMessage, map[string]any{"rating": "between 1 and 5"})
		}
		if input.TechnicianID != "" && (req.AssignedTechnicianID == nil || *req.AssignedTechnicianID != input.TechnicianID) {
			return apperrors.NewForbidden("service request is assigned to another technician")
		}
		notes := strings.TrimSpace(input.Notes)
		req.TechnicianNotes = &notes
		req.Feedback = &domain.Feedback{Rating: input.Rating, Remarks: strings.TrimSpace(input.Remarks)}
		req.Status = domain.ServiceStatusSolved
		return nil
	})
	if err != nil {
		return domain.ServiceRequest{}, requestError(err, requestID)
	}

	if err := s.recordStatusChange(ctx, actor, requestID, previous, updated.Status, "completed"); err != nil {
		return domain.ServiceRequest{}, apperrors.MapError(err)
	}
	techID := input.TechnicianID
	if techID == "" && updated.AssignedTechnicianID != nil {
		techID = *updated.AssignedTechnicianID
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventServiceRequestCompleted,
		SubjectID: requestID,
		Actor:     actorOf(actor),
		Payload: events.ServiceRequestCompletedPayload{
			TechnicianID: techID,
			Rating:       input.Rating,
		},
	})
	return updated, nil
}

// Filter lists requests matching status (nil for all) and a case-insensitive search over
// customer name, product name and id.
func (s *LedgerService) Filter(ctx context.Context, status *domain.ServiceStatus, search string) ([]domain.ServiceRequest, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status filter", map[string]any{"status": string(*status)})
	}
	list, err := s.requests.List(ctx, repository.ServiceRequestFilter{Status: status, SearchTerm: search})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// ListForCustomer returns the customer's own requests.
func (s *LedgerService) ListForCustomer(ctx context.Context, customerID string) ([]domain.ServiceRequest, error) {
	list, err := s.requests.List(ctx, repository.ServiceRequestFilter{CustomerID: &customerID})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// ListForTechnician returns requests assigned to the technician.
func (s *LedgerService) ListForTechnician(ctx context.Context, technicianID string) ([]domain.ServiceRequest, error) {
	list, err := s.requests.List(ctx, repository.ServiceRequestFilter{TechnicianID: &technicianID})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Get fetches one request.
func (s *LedgerService) Get(ctx context.Context, requestID string) (domain.ServiceRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return domain.ServiceRequest{}, requestError(err, requestID)
	}
	return req, nil
}

// History returns the status changes recorded for a request, oldest first.
func (s *LedgerService) History(ctx context.Context, requestID string) ([]domain.StatusChange, error) {
	if _, err := s.Get(ctx, requestID); err != nil {
		return nil, err
	}
	if s.history == nil {
		return []domain.StatusChange{}, nil
	}
	entries, err := s.history.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

// Technicians lists the assignable roster.
func (s *LedgerService) Technicians(ctx context.Context) ([]domain.Technician, error) {
	list, err := s.technicians.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

func (s *LedgerService) recordStatusChange(ctx context.Context, actor domain.Identity, requestID string, from, to domain.ServiceStatus, comment string) error {
	if s.history == nil {
		return nil
	}
	return s.history.Create(ctx, domain.StatusChange{
		RequestID: requestID,
		From:      from,
		To:        to,
		ActorID:   actor.ID,
		Comment:   comment,
		CreatedAt: s.now().UTC(),
	})
}

func (s *LedgerService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func actorOf(identity domain.Identity) events.Actor {
	return events.Actor{ID: identity.ID, Role: identity.Role}
}

func requestError(err error, requestID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("service request", map[string]any{"request_id": requestID})
	}
	return apperrors.MapError(err)
}
