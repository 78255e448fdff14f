package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/events"
	"github.com/a1technologies/cooling-crm/internal/idgen"
	"github.com/a1technologies/cooling-crm/internal/repository"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

// ContentService owns the editable site content document.
type ContentService struct {
	mu         sync.RWMutex
	doc        domain.ContentDocument
	dirty      bool
	revision   uint64
	store      repository.ContentStore
	dispatcher events.Dispatcher
	ids        idgen.Generator
	logger     *zap.Logger
}

// ContentDependencies bundles collaborators for the content service.
type ContentDependencies struct {
	Store      repository.ContentStore
	Dispatcher events.Dispatcher
	IDs        idgen.Generator
	Logger     *zap.Logger
}

// NewContentService starts from the persisted document when the store has one, else from seed.
func NewContentService(ctx context.Context, seed domain.ContentDocument, deps ContentDependencies) (*ContentService, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ContentService{
		doc:        seed.Clone(),
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		ids:        deps.IDs,
		logger:     logger,
	}
	if s.store == nil {
		return s, nil
	}
	stored, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		s.doc = stored.Clone()
		logger.Info("loaded persisted site content")
	}
	return s, nil
}

// Get returns a copy of the current document.
func (s *ContentService) Get() domain.ContentDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// UpdateHero replaces the hero banner.
func (s *ContentService) UpdateHero(hero domain.Hero) domain.ContentDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Hero = hero
	s.touch()
	return s.doc.Clone()
}

// UpdateAbout replaces the about section.
func (s *ContentService) UpdateAbout(about domain.About) domain.ContentDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.About = about
	s.touch()
	return s.doc.Clone()
}

// ReplaceStats swaps the whole stats list.
func (s *ContentService) ReplaceStats(stats []domain.Stat) (domain.ContentDocument, error) {
	ids := make([]string, len(stats))
	for i, st := range stats {
		ids[i] = st.ID
	}
	if err := checkUniqueIDs("stats", ids); err != nil {
		return domain.ContentDocument{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Stats = append([]domain.Stat(nil), stats...)
	s.touch()
	return s.doc.Clone(), nil
}

// ReplaceFeatures swaps the whole features list.
func (s *ContentService) ReplaceFeatures(features []domain.Feature) (domain.ContentDocument, error) {
	ids := make([]string, len(features))
	for i, f := range features {
		ids[i] = f.ID
	}
	if err := checkUniqueIDs("features", ids); err != nil {
		return domain.ContentDocument{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Features = append([]domain.Feature(nil), features...)
	s.touch()
	return s.doc.Clone(), nil
}

// UpsertTestimonial replaces the entry with the draft's id or appends a new one.
func (s *ContentService) UpsertTestimonial(draft domain.TestimonialDraft) (domain.Testimonial, error) {
	details := map[string]any{}
	if strings.TrimSpace(draft.CustomerName) == "" {
		details["customer_name"] = "required"
	}
	if strings.TrimSpace(draft.Text) == "" {
		details["text"] = "required"
	}
	if len(details) > 0 {
		return domain.Testimonial{}, apperrors.NewValidationError("invalid testimonial", details)
	}

	entry := domain.Testimonial{
		ID:           strings.TrimSpace(draft.ID),
		CustomerName: strings.TrimSpace(draft.CustomerName),
		Company:      strings.TrimSpace(draft.Company),
		Text:         strings.TrimSpace(draft.Text),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if entry.ID != "" {
		for i := range s.doc.Testimonials {
			if s.doc.Testimonials[i].ID == entry.ID {
				s.doc.Testimonials[i] = entry
				return entry, nil
			}
		}
	} else {
		entry.ID = s.ids.Next(idgen.PrefixTestimonial)
	}
	s.doc.Testimonials = append(s.doc.Testimonials, entry)
	return entry, nil
}

// DeleteTestimonial removes one entry. confirmed must be true; an absent id is a no-op.
func (s *ContentService) DeleteTestimonial(id string, confirmed bool) error {
	if !confirmed {
		return apperrors.NewValidationError("Delete this testimonial?", map[string]any{"confirm": "required"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Testimonials {
		if s.doc.Testimonials[i].ID == id {
			s.doc.Testimonials = append(s.doc.Testimonials[:i:i], s.doc.Testimonials[i+1:]...)
			s.touch()
			return nil
		}
	}
	return nil
}

// Persist writes the current document to the content store. Edits made while the save is in
// flight keep the document dirty.
func (s *ContentService) Persist(ctx context.Context, actor domain.Identity) error {
	s.mu.RLock()
	doc, revision := s.doc.Clone(), s.revision
	s.mu.RUnlock()

	if s.store == nil {
		s.logger.Info("saving content", zap.Any("document", doc))
	} else if err := s.store.Save(ctx, doc); err != nil {
		return apperrors.MapError(err)
	}

	s.mu.Lock()
	if s.revision == revision {
		s.dirty = false
	}
	s.mu.Unlock()

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContentPersisted,
			SubjectID: "site_content",
			Actor:     actorOf(actor),
			Timestamp: time.Now(),
			Payload:   events.ContentPersistedPayload{Testimonials: len(doc.Testimonials)},
		})
	}
	return nil
}

// touch marks an edit. Callers hold s.mu.
func (s *ContentService) touch() {
	s.dirty = true
	s.revision++
}

// Dirty reports whether the document holds edits the last Persist did not write.
func (s *ContentService) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func checkUniqueIDs(list string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return apperrors.NewValidationError("entry id required", map[string]any{"list": list})
		}
		if _, dup := seen[id]; dup {
			return apperrors.NewValidationError("duplicate entry id", map[string]any{"list": list, "id": id})
		}
		seen[id] = struct{}{}
	}
	return nil
}
