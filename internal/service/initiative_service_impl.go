package service

import (
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
)

type initiativeService struct {
	observer MutationObserver
}

// NewInitiativeService creates the initiative-level edit and date
// refresh service.
func NewInitiativeService(observers ...MutationObserver) InitiativeService {
	return &initiativeService{observer: mutationObserverOrNoop(observers)}
}

func (s *initiativeService) UpdateInitiative(doc *domain.PlanDocument, initiativeID string, patch InitiativePatch) (*domain.Initiative, error) {
	init := doc.Initiative(initiativeID)
	if init == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "update_initiative", InitiativeID: initiativeID, Err: ErrInitiativeNotFound})
		return nil, ErrInitiativeNotFound
	}

	if patch.Title != nil {
		init.Title = *patch.Title
	}
	if patch.StartDate != nil {
		init.StartDate = *patch.StartDate
	}
	if patch.TargetDueDate != nil {
		init.TargetDueDate = *patch.TargetDueDate
	}
	if patch.Status != nil {
		init.Status = *patch.Status
	}
	if patch.Allocations != nil {
		init.Allocations = *patch.Allocations
	}

	s.observer.ObserveMutation(MutationEvent{Op: "update_initiative", InitiativeID: initiativeID})
	return init, nil
}

// RefreshInitiativeDates recomputes the initiative span from its work
// packages, then each owning goal's span from its initiatives. Each
// level is derived strictly from its children, never from siblings.
func (s *initiativeService) RefreshInitiativeDates(doc *domain.PlanDocument, initiativeID string) {
	init := doc.Initiative(initiativeID)
	if init == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "refresh_initiative_dates", InitiativeID: initiativeID, Err: ErrInitiativeNotFound})
		return
	}

	wps := doc.WorkPackagesFor(initiativeID)
	if len(wps) > 0 {
		init.StartDate, init.TargetDueDate = rollup.InitiativeDateSpan(init, wps)
	}

	for _, goal := range doc.GoalsFor(initiativeID) {
		var children []*domain.Initiative
		for _, id := range goal.InitiativeIDs {
			if child := doc.Initiative(id); child != nil {
				children = append(children, child)
			}
		}
		start, end := rollup.GoalDateSpan(children)
		if start != "" {
			goal.StartDate = start
		}
		if end != "" {
			goal.TargetDueDate = end
		}
	}

	s.observer.ObserveMutation(MutationEvent{Op: "refresh_initiative_dates", InitiativeID: initiativeID})
}
