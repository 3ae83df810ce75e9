package testutil

import (
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/google/uuid"
)

// Initiative options
type InitiativeOption func(*domain.Initiative)

func WithInitiativeID(id string) InitiativeOption {
	return func(i *domain.Initiative) {
		i.ID = id
	}
}

func WithGoalID(id string) InitiativeOption {
	return func(i *domain.Initiative) {
		i.GoalID = id
	}
}

func WithInitiativeSpan(start, due string) InitiativeOption {
	return func(i *domain.Initiative) {
		i.StartDate = start
		i.TargetDueDate = due
	}
}

func WithInitiativeStatus(s domain.InitiativeStatus) InitiativeOption {
	return func(i *domain.Initiative) {
		i.Status = s
	}
}

func WithAllocation(teamID string, sdeYears float64) InitiativeOption {
	return func(i *domain.Initiative) {
		i.Allocations = append(i.Allocations, domain.TeamAllocation{TeamID: teamID, SDEYears: sdeYears})
	}
}

func NewTestInitiative(title string, year int, opts ...InitiativeOption) *domain.Initiative {
	init := &domain.Initiative{
		ID:           uuid.New().String(),
		Title:        title,
		PlanningYear: year,
		Status:       domain.InitiativeBacklog,
	}
	for _, opt := range opts {
		opt(init)
	}
	return init
}

// WorkPackage options
type WorkPackageOption func(*domain.WorkPackage)

func WithWorkPackageID(id string) WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.ID = id
	}
}

func WithWorkPackageSpan(start, end string) WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.StartDate = start
		wp.EndDate = end
	}
}

func WithWorkPackageDependency(id string) WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.Dependencies = append(wp.Dependencies, id)
	}
}

func WithAssignment(teamID string, sdeDays float64, start, end string) WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.Assignments = append(wp.Assignments, &domain.Assignment{
			TeamID:    teamID,
			SDEDays:   sdeDays,
			StartDate: start,
			EndDate:   end,
		})
	}
}

func WithPhases() WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.Phases = domain.NewDeliveryPhases(wp.StartDate, wp.EndDate)
	}
}

func NewTestWorkPackage(initiativeID, title string, opts ...WorkPackageOption) *domain.WorkPackage {
	wp := &domain.WorkPackage{
		ID:           "wp-" + uuid.New().String(),
		InitiativeID: initiativeID,
		Title:        title,
		Status:       domain.WorkPackagePlanned,
	}
	for _, opt := range opts {
		opt(wp)
	}
	return wp
}

// Document options
type DocumentOption func(*domain.PlanDocument)

func WithTeams(names ...string) DocumentOption {
	return func(doc *domain.PlanDocument) {
		for _, name := range names {
			doc.Teams = append(doc.Teams, domain.Team{ID: name, Name: name})
		}
	}
}

func WithInitiatives(initiatives ...*domain.Initiative) DocumentOption {
	return func(doc *domain.PlanDocument) {
		doc.Initiatives = append(doc.Initiatives, initiatives...)
	}
}

func WithWorkPackages(wps ...*domain.WorkPackage) DocumentOption {
	return func(doc *domain.PlanDocument) {
		for _, wp := range wps {
			doc.WorkPackages = append(doc.WorkPackages, wp)
			if init := doc.Initiative(wp.InitiativeID); init != nil {
				init.AddWorkPackageID(wp.ID)
			}
		}
	}
}

func WithGoals(goals ...*domain.Goal) DocumentOption {
	return func(doc *domain.PlanDocument) {
		doc.Goals = append(doc.Goals, goals...)
	}
}

// NewTestDocument builds an in-memory planning document for tests.
func NewTestDocument(opts ...DocumentOption) *domain.PlanDocument {
	doc := domain.NewPlanDocument()
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}
