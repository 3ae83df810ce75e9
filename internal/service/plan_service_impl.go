package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/importer"
	"github.com/alexanderramin/horizon/internal/repository"
)

type planService struct {
	repo     repository.PlanRepo
	observer MutationObserver
}

// NewPlanService creates a plan service backed by the given repository.
func NewPlanService(repo repository.PlanRepo, observers ...MutationObserver) PlanService {
	return &planService{repo: repo, observer: mutationObserverOrNoop(observers)}
}

func (s *planService) Load(ctx context.Context) (*domain.PlanDocument, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	return doc, nil
}

func (s *planService) Save(ctx context.Context, doc *domain.PlanDocument) error {
	if err := s.repo.Save(ctx, doc); err != nil {
		s.observer.ObserveMutation(MutationEvent{Op: "plan.save", Err: err})
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

// Import reads a YAML plan file, replaces the stored document with it,
// and returns the imported document.
func (s *planService) Import(ctx context.Context, path string) (*domain.PlanDocument, error) {
	doc, err := importer.LoadFile(path)
	if err != nil {
		s.observer.ObserveMutation(MutationEvent{Op: "plan.import", Fields: map[string]any{"path": path}, Err: err})
		return nil, err
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving imported plan: %w", err)
	}
	s.observer.ObserveMutation(MutationEvent{Op: "plan.import", Fields: map[string]any{
		"path":          path,
		"teams":         len(doc.Teams),
		"initiatives":   len(doc.Initiatives),
		"work_packages": len(doc.WorkPackages),
	}})
	return doc, nil
}
