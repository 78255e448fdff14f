package repository

import (
	"context"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// TechnicianRepository exposes the fixed roster of assignable technicians.
type TechnicianRepository interface {
	List(ctx context.Context) ([]domain.Technician, error)
	GetByID(ctx context.Context, id string) (domain.Technician, error)
}

type technicianRepository struct {
	roster []domain.Technician
}

// NewTechnicianRepository wraps a read-only roster.
func NewTechnicianRepository(roster []domain.Technician) TechnicianRepository {
	return &technicianRepository{roster: append([]domain.Technician(nil), roster...)}
}

func (r *technicianRepository) List(_ context.Context) ([]domain.Technician, error) {
	return append([]domain.Technician(nil), r.roster...), nil
}

func (r *technicianRepository) GetByID(_ context.Context, id string) (domain.Technician, error) {
	for _, tech := range r.roster {
		if tech.ID == id {
			return tech, nil
		}
	}
	return domain.Technician{}, ErrNotFound
}
