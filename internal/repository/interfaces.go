package repository

import (
	"context"

	"github.com/alexanderramin/horizon/internal/domain"
)

// PlanRepo persists the planning document as a whole. The document is
// the unit of consistency: Save replaces the stored plan atomically.
type PlanRepo interface {
	Load(ctx context.Context) (*domain.PlanDocument, error)
	Save(ctx context.Context, doc *domain.PlanDocument) error
}
