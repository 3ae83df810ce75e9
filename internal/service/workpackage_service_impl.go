package service

import (
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
	"github.com/google/uuid"
)

type workPackageService struct {
	observer MutationObserver
}

// NewWorkPackageService creates the work package lifecycle manager.
func NewWorkPackageService(observers ...MutationObserver) WorkPackageService {
	return &workPackageService{observer: mutationObserverOrNoop(observers)}
}

func (s *workPackageService) EnsureWorkPackages(doc *domain.PlanDocument, yearFilter int) int {
	created := 0
	workingDays := doc.WorkingDaysPerYear()

	for _, init := range doc.Initiatives {
		if yearFilter != 0 && init.PlanningYear != yearFilter {
			continue
		}

		existing := doc.WorkPackagesFor(init.ID)
		if len(existing) > 0 {
			// Backfill missing sub-fields only. Task rows are never
			// re-derived here: they belong to the user once edited.
			for _, wp := range existing {
				if wp.Phases == nil {
					wp.Phases = domain.NewDeliveryPhases(wp.StartDate, wp.EndDate)
				}
				init.AddWorkPackageID(wp.ID)
			}
			continue
		}

		startDate := domain.CoalesceStr(init.StartDate, domain.DefaultStartForYear(init.PlanningYear))
		endDate := domain.CoalesceStr(init.TargetDueDate, domain.DefaultEndForYear(init.PlanningYear))

		assignments := make([]*domain.Assignment, 0, len(init.Allocations))
		for _, alloc := range init.Allocations {
			assignments = append(assignments, &domain.Assignment{
				TeamID:    alloc.TeamID,
				SDEDays:   alloc.SDEYears * float64(workingDays),
				StartDate: startDate,
				EndDate:   endDate,
			})
		}

		wp := &domain.WorkPackage{
			ID:           "wp-" + uuid.New().String(),
			InitiativeID: init.ID,
			Title:        "Phase 1: Implementation",
			StartDate:    startDate,
			EndDate:      endDate,
			Status:       domain.WorkPackagePlanned,
			Assignments:  assignments,
			Phases:       domain.NewDeliveryPhases(startDate, endDate),
		}
		doc.WorkPackages = append(doc.WorkPackages, wp)
		init.AddWorkPackageID(wp.ID)
		created++

		s.observer.ObserveMutation(MutationEvent{
			Op:           "ensure_work_package",
			InitiativeID: init.ID,
			EntityID:     wp.ID,
		})
	}
	return created
}

func (s *workPackageService) AddWorkPackage(doc *domain.PlanDocument, initiativeID string, overrides WorkPackageOverrides) (*domain.WorkPackage, error) {
	s.EnsureWorkPackages(doc, 0)

	init := doc.Initiative(initiativeID)
	if init == nil {
		s.observer.ObserveMutation(MutationEvent{
			Op:           "add_work_package",
			InitiativeID: initiativeID,
			Err:          ErrInitiativeNotFound,
		})
		return nil, ErrInitiativeNotFound
	}

	startDate := domain.CoalesceStr(overrides.StartDate, init.StartDate, domain.DefaultStartForYear(init.PlanningYear))
	endDate := domain.CoalesceStr(overrides.EndDate, init.TargetDueDate, domain.DefaultEndForYear(init.PlanningYear))
	status := overrides.Status
	if status == "" {
		status = domain.WorkPackagePlanned
	}

	// One zero-effort task row per team known to the document, so a
	// planner can enter an estimate for any team without a separate
	// "assign team" step.
	assignments := make([]*domain.Assignment, 0, len(doc.Teams))
	for _, team := range doc.Teams {
		assignments = append(assignments, &domain.Assignment{
			TeamID:    team.ID,
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	wp := &domain.WorkPackage{
		ID:           "wp-" + uuid.New().String(),
		InitiativeID: initiativeID,
		Title:        domain.CoalesceStr(overrides.Title, "New Work Package"),
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
		Assignments:  assignments,
		Phases:       domain.NewDeliveryPhases("", ""),
	}
	doc.WorkPackages = append(doc.WorkPackages, wp)
	init.AddWorkPackageID(wp.ID)

	s.observer.ObserveMutation(MutationEvent{
		Op:           "add_work_package",
		InitiativeID: initiativeID,
		EntityID:     wp.ID,
	})
	return wp, nil
}

func (s *workPackageService) UpdateWorkPackage(doc *domain.PlanDocument, wpID string, patch WorkPackagePatch) (*domain.WorkPackage, error) {
	wp := doc.WorkPackage(wpID)
	if wp == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "update_work_package", EntityID: wpID, Err: ErrWorkPackageNotFound})
		return nil, ErrWorkPackageNotFound
	}

	if patch.Title != nil {
		wp.Title = *patch.Title
	}
	if patch.StartDate != nil {
		wp.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		wp.EndDate = *patch.EndDate
	}
	if patch.Status != nil {
		wp.Status = *patch.Status
	}
	if patch.Dependencies != nil {
		wp.Dependencies = *patch.Dependencies
	}

	s.observer.ObserveMutation(MutationEvent{Op: "update_work_package", InitiativeID: wp.InitiativeID, EntityID: wpID})
	return wp, nil
}

// DeleteWorkPackage removes the work package and its reference on the
// owning initiative. Restoring the initiative span afterward is the
// caller's responsibility.
func (s *workPackageService) DeleteWorkPackage(doc *domain.PlanDocument, wpID string) error {
	wp := doc.WorkPackage(wpID)
	if wp == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "delete_work_package", EntityID: wpID, Err: ErrWorkPackageNotFound})
		return ErrWorkPackageNotFound
	}

	doc.RemoveWorkPackage(wpID)
	if init := doc.Initiative(wp.InitiativeID); init != nil {
		init.RemoveWorkPackageID(wpID)
	}

	s.observer.ObserveMutation(MutationEvent{Op: "delete_work_package", InitiativeID: wp.InitiativeID, EntityID: wpID})
	return nil
}

func (s *workPackageService) AddAssignment(doc *domain.PlanDocument, wpID string, overrides AssignmentOverrides) (*domain.Assignment, error) {
	wp := doc.WorkPackage(wpID)
	if wp == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "add_assignment", EntityID: wpID, Err: ErrWorkPackageNotFound})
		return nil, ErrWorkPackageNotFound
	}

	a := &domain.Assignment{
		TeamID:       overrides.TeamID,
		SDEDays:      overrides.SDEDays,
		StartDate:    domain.CoalesceStr(overrides.StartDate, wp.StartDate),
		EndDate:      domain.CoalesceStr(overrides.EndDate, wp.EndDate),
		Predecessors: overrides.Predecessors,
	}
	wp.Assignments = append(wp.Assignments, a)

	// The WP span must satisfy its rollup invariant before control
	// returns to the caller.
	rollup.RecalculateWorkPackageDates(wp)

	s.observer.ObserveMutation(MutationEvent{
		Op:           "add_assignment",
		InitiativeID: wp.InitiativeID,
		EntityID:     wpID,
		Fields:       map[string]any{"team_id": a.TeamID},
	})
	return a, nil
}

func (s *workPackageService) UpdateAssignment(doc *domain.PlanDocument, wpID, teamID string, patch AssignmentPatch) error {
	wp := doc.WorkPackage(wpID)
	if wp == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "update_assignment", EntityID: wpID, Err: ErrWorkPackageNotFound})
		return ErrWorkPackageNotFound
	}
	a := wp.Assignment(teamID)
	if a == nil {
		s.observer.ObserveMutation(MutationEvent{
			Op:       "update_assignment",
			EntityID: wpID,
			Fields:   map[string]any{"team_id": teamID},
			Err:      ErrAssignmentNotFound,
		})
		return ErrAssignmentNotFound
	}

	if patch.SDEDays != nil {
		a.SDEDays = *patch.SDEDays
	}
	if patch.StartDate != nil {
		a.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		a.EndDate = *patch.EndDate
	}
	if patch.Predecessors != nil {
		a.Predecessors = *patch.Predecessors
	}

	rollup.RecalculateWorkPackageDates(wp)

	s.observer.ObserveMutation(MutationEvent{
		Op:           "update_assignment",
		InitiativeID: wp.InitiativeID,
		EntityID:     wpID,
		Fields:       map[string]any{"team_id": teamID},
	})
	return nil
}

func (s *workPackageService) DeleteAssignment(doc *domain.PlanDocument, wpID, teamID string) error {
	wp := doc.WorkPackage(wpID)
	if wp == nil {
		s.observer.ObserveMutation(MutationEvent{Op: "delete_assignment", EntityID: wpID, Err: ErrWorkPackageNotFound})
		return ErrWorkPackageNotFound
	}

	found := false
	kept := wp.Assignments[:0]
	for _, a := range wp.Assignments {
		if !found && a.TeamID == teamID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	wp.Assignments = kept
	if !found {
		s.observer.ObserveMutation(MutationEvent{
			Op:       "delete_assignment",
			EntityID: wpID,
			Fields:   map[string]any{"team_id": teamID},
			Err:      ErrAssignmentNotFound,
		})
		return ErrAssignmentNotFound
	}

	rollup.RecalculateWorkPackageDates(wp)

	s.observer.ObserveMutation(MutationEvent{
		Op:           "delete_assignment",
		InitiativeID: wp.InitiativeID,
		EntityID:     wpID,
		Fields:       map[string]any{"team_id": teamID},
	})
	return nil
}

func (s *workPackageService) SyncInitiativeTotals(doc *domain.PlanDocument, initiativeID string) {
	wps := doc.WorkPackagesFor(initiativeID)
	// No work packages: leave the initiative untouched so top-down
	// editing keeps working.
	if len(wps) == 0 {
		return
	}
	init := doc.Initiative(initiativeID)
	if init == nil {
		return
	}

	// Partial-update policy: an all-empty aggregation must not erase a
	// previously set top-down allocation.
	totals := rollup.TeamDayTotals(wps)
	if allocs := rollup.AllocationsFromDayTotals(totals, doc.WorkingDaysPerYear()); allocs != nil {
		init.Allocations = allocs
	}

	init.StartDate, init.TargetDueDate = rollup.InitiativeDateSpan(init, wps)

	s.observer.ObserveMutation(MutationEvent{Op: "sync_initiative_totals", InitiativeID: initiativeID})
}
