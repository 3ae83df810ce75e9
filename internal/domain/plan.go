package domain

import "sort"

// DefaultWorkingDaysPerYear converts SDE-days to SDE-years when the
// document does not configure its own rate.
const DefaultWorkingDaysPerYear = 261

// CapacityConfig holds document-wide planning constants.
type CapacityConfig struct {
	WorkingDaysPerYear int
}

// PlanDocument is the in-memory planning document: the single shared
// mutable resource all services operate on. Mutations are serialized by
// the surrounding application; the document itself carries no locks.
type PlanDocument struct {
	Teams        []Team
	Goals        []*Goal
	Initiatives  []*Initiative
	WorkPackages []*WorkPackage
	Capacity     CapacityConfig
}

// NewPlanDocument returns an empty document with default capacity config.
func NewPlanDocument() *PlanDocument {
	return &PlanDocument{
		Capacity: CapacityConfig{WorkingDaysPerYear: DefaultWorkingDaysPerYear},
	}
}

// WorkingDaysPerYear returns the configured day/year conversion rate,
// falling back to the default when unset.
func (d *PlanDocument) WorkingDaysPerYear() int {
	if d.Capacity.WorkingDaysPerYear > 0 {
		return d.Capacity.WorkingDaysPerYear
	}
	return DefaultWorkingDaysPerYear
}

// Initiative returns the initiative with the given id, or nil.
func (d *PlanDocument) Initiative(id string) *Initiative {
	for _, init := range d.Initiatives {
		if init.ID == id {
			return init
		}
	}
	return nil
}

// Goal returns the goal with the given id, or nil.
func (d *PlanDocument) Goal(id string) *Goal {
	for _, g := range d.Goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// GoalsFor returns every goal that owns the given initiative.
func (d *PlanDocument) GoalsFor(initiativeID string) []*Goal {
	var goals []*Goal
	for _, g := range d.Goals {
		for _, id := range g.InitiativeIDs {
			if id == initiativeID {
				goals = append(goals, g)
				break
			}
		}
	}
	return goals
}

// WorkPackage returns the work package with the given id, or nil.
func (d *PlanDocument) WorkPackage(id string) *WorkPackage {
	for _, wp := range d.WorkPackages {
		if wp.ID == id {
			return wp
		}
	}
	return nil
}

// WorkPackagesFor returns all work packages owned by the initiative,
// in document order.
func (d *PlanDocument) WorkPackagesFor(initiativeID string) []*WorkPackage {
	var wps []*WorkPackage
	for _, wp := range d.WorkPackages {
		if wp.InitiativeID == initiativeID {
			wps = append(wps, wp)
		}
	}
	return wps
}

// RemoveWorkPackage deletes the work package from the document.
// The owning initiative's reference list is not touched here.
func (d *PlanDocument) RemoveWorkPackage(id string) bool {
	for i, wp := range d.WorkPackages {
		if wp.ID == id {
			d.WorkPackages = append(d.WorkPackages[:i], d.WorkPackages[i+1:]...)
			return true
		}
	}
	return false
}

// Team returns the team with the given id.
func (d *PlanDocument) Team(id string) (Team, bool) {
	for _, t := range d.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// TeamName returns the display name for a team id, or the id itself
// when unknown, or "(Unassigned)" for the empty id.
func (d *PlanDocument) TeamName(id string) string {
	if id == "" {
		return "(Unassigned)"
	}
	if t, ok := d.Team(id); ok {
		return t.DisplayName()
	}
	return id
}

// PlanningYears returns the distinct planning years present, ascending.
func (d *PlanDocument) PlanningYears() []int {
	seen := map[int]bool{}
	var years []int
	for _, init := range d.Initiatives {
		if init.PlanningYear != 0 && !seen[init.PlanningYear] {
			seen[init.PlanningYear] = true
			years = append(years, init.PlanningYear)
		}
	}
	sort.Ints(years)
	return years
}
