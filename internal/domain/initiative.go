package domain

// TeamAllocation is an initiative-level effort entry in SDE-years.
// When the initiative has work packages this is a derived cache of the
// task-level day totals; without work packages it is directly editable
// (top-down fallback).
type TeamAllocation struct {
	TeamID   string
	SDEYears float64
}

// Initiative is one strategic line of work scheduled against a planning
// year. StartDate and TargetDueDate are rolled up from its work packages.
type Initiative struct {
	ID             string
	GoalID         string
	Title          string
	PlanningYear   int
	StartDate      string
	TargetDueDate  string
	Status         InitiativeStatus
	WorkPackageIDs []string
	Allocations    []TeamAllocation
	Dependencies   []string
}

// HasWorkPackage reports whether the initiative references wpID.
func (i *Initiative) HasWorkPackage(wpID string) bool {
	for _, id := range i.WorkPackageIDs {
		if id == wpID {
			return true
		}
	}
	return false
}

// AddWorkPackageID registers a work package reference if not present.
func (i *Initiative) AddWorkPackageID(wpID string) {
	if !i.HasWorkPackage(wpID) {
		i.WorkPackageIDs = append(i.WorkPackageIDs, wpID)
	}
}

// RemoveWorkPackageID drops a work package reference.
func (i *Initiative) RemoveWorkPackageID(wpID string) {
	kept := i.WorkPackageIDs[:0]
	for _, id := range i.WorkPackageIDs {
		if id != wpID {
			kept = append(kept, id)
		}
	}
	i.WorkPackageIDs = kept
}

// Goal is the top hierarchy level. Its span aggregates its initiatives.
type Goal struct {
	ID            string
	Title         string
	StartDate     string
	TargetDueDate string
	InitiativeIDs []string
}
