package service

import (
	"context"

	"github.com/alexanderramin/horizon/internal/domain"
)

// WorkPackageOverrides sets optional fields when creating a work package.
type WorkPackageOverrides struct {
	Title     string
	StartDate string
	EndDate   string
	Status    domain.WorkPackageStatus
}

// AssignmentOverrides sets optional fields when creating a task row.
type AssignmentOverrides struct {
	TeamID       string
	SDEDays      float64
	StartDate    string
	EndDate      string
	Predecessors []string
}

// WorkPackagePatch is a partial field-level update; nil means unchanged.
type WorkPackagePatch struct {
	Title        *string
	StartDate    *string
	EndDate      *string
	Status       *domain.WorkPackageStatus
	Dependencies *[]string
}

// AssignmentPatch is a partial field-level update; nil means unchanged.
type AssignmentPatch struct {
	SDEDays      *float64
	StartDate    *string
	EndDate      *string
	Predecessors *[]string
}

// InitiativePatch is a partial field-level update; nil means unchanged.
type InitiativePatch struct {
	Title         *string
	StartDate     *string
	TargetDueDate *string
	Status        *domain.InitiativeStatus
	Allocations   *[]domain.TeamAllocation
}

// WorkPackageService is the work package lifecycle manager. All methods
// mutate the document in place; date rollup of the touched work package
// is completed before any method returns, but restoring the initiative
// span after a delete is the caller's job (via DateRefresher).
type WorkPackageService interface {
	// EnsureWorkPackages bootstraps one work package per initiative that
	// has none, deriving task rows from the initiative's allocations.
	// Existing work packages only get missing sub-fields backfilled.
	// Idempotent; returns the number of work packages created.
	EnsureWorkPackages(doc *domain.PlanDocument, yearFilter int) int

	AddWorkPackage(doc *domain.PlanDocument, initiativeID string, overrides WorkPackageOverrides) (*domain.WorkPackage, error)
	UpdateWorkPackage(doc *domain.PlanDocument, wpID string, patch WorkPackagePatch) (*domain.WorkPackage, error)
	DeleteWorkPackage(doc *domain.PlanDocument, wpID string) error

	AddAssignment(doc *domain.PlanDocument, wpID string, overrides AssignmentOverrides) (*domain.Assignment, error)
	UpdateAssignment(doc *domain.PlanDocument, wpID, teamID string, patch AssignmentPatch) error
	DeleteAssignment(doc *domain.PlanDocument, wpID, teamID string) error

	// SyncInitiativeTotals recomputes the initiative's allocation cache
	// and date span from its work packages. The allocation cache is only
	// overwritten when aggregation found at least one teamed entry, so a
	// top-down edit on an initiative without task effort is never zeroed.
	SyncInitiativeTotals(doc *domain.PlanDocument, initiativeID string)
}

// DateRefresher recomputes initiative (and transitively goal) date
// aggregates. The rollup cascade consumes this capability; it does not
// own it.
type DateRefresher interface {
	RefreshInitiativeDates(doc *domain.PlanDocument, initiativeID string)
}

// NoopDateRefresher satisfies DateRefresher without doing anything,
// for callers that wire no initiative-level aggregation.
type NoopDateRefresher struct{}

func (NoopDateRefresher) RefreshInitiativeDates(*domain.PlanDocument, string) {}

// InitiativeService owns initiative-level edits and the date refresh
// capability consumed by the rollup cascade.
type InitiativeService interface {
	DateRefresher
	UpdateInitiative(doc *domain.PlanDocument, initiativeID string, patch InitiativePatch) (*domain.Initiative, error)
}

// PlanService loads and stores the planning document.
type PlanService interface {
	Load(ctx context.Context) (*domain.PlanDocument, error)
	Save(ctx context.Context, doc *domain.PlanDocument) error
	Import(ctx context.Context, path string) (*domain.PlanDocument, error)
}
