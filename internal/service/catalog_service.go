package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/idgen"
	"github.com/a1technologies/cooling-crm/internal/repository"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

const placeholderImageURL = "https://picsum.photos/seed/%s/300/200"

// CatalogService manages the product catalog.
type CatalogService struct {
	products repository.ProductRepository
	ids      idgen.Generator
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	ProductRepo repository.ProductRepository
	IDs         idgen.Generator
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{products: deps.ProductRepo, ids: deps.IDs}
}

// List returns products in catalog order, newest additions first.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return products, nil
}

// Get fetches one product.
func (s *CatalogService) Get(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, productError(err, id)
	}
	return product, nil
}

// Create commits a draft as a new product at the front of the catalog.
func (s *CatalogService) Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Product{}, err
	}
	product := normalizeDraft(s.ids.Next(idgen.PrefixProduct), draft)
	if err := s.products.InsertFront(ctx, product); err != nil {
		return domain.Product{}, apperrors.MapError(err)
	}
	return product, nil
}

// Update replaces every field of the product except its id.
func (s *CatalogService) Update(ctx context.Context, id string, draft domain.ProductDraft) (domain.Product, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Product{}, err
	}
	product := normalizeDraft(id, draft)
	if err := s.products.Replace(ctx, product); err != nil {
		return domain.Product{}, productError(err, id)
	}
	return product, nil
}

// Delete removes the product. confirmed must be true.
func (s *CatalogService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.NewValidationError("Are you sure you want to delete this product?", map[string]any{"confirm": "required"})
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return productError(err, id)
	}
	return nil
}

func validateDraft(draft domain.ProductDraft) error {
	details := map[string]any{}
	if strings.TrimSpace(draft.Name) == "" {
		details["name"] = "required"
	}
	if draft.Price < 0 {
		details["price"] = "gte=0"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product", details)
	}
	return nil
}

func normalizeDraft(id string, draft domain.ProductDraft) domain.Product {
	name := strings.TrimSpace(draft.Name)
	image := strings.TrimSpace(draft.ImageURL)
	if image == "" {
		image = fmt.Sprintf(placeholderImageURL, url.PathEscape(name))
	}
	return domain.Product{
		ID:             id,
		Name:           name,
		ImageURL:       image,
		Specifications: SplitSpecifications(draft.Specifications),
		Price:          draft.Price,
		Description:    draft.Description,
	}
}

// SplitSpecifications turns comma separated input into trimmed, non-empty entries.
func SplitSpecifications(raw string) []string {
	parts := strings.Split(raw, ",")
	specs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			specs = append(specs, trimmed)
		}
	}
	return specs
}

func productError(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("product", map[string]any{"product_id": id})
	}
	return apperrors.MapError(err)
}
