// Package rollup contains the pure date and effort aggregation rules of
// the planning hierarchy: Assignment → WorkPackage → Initiative → Goal.
// Every function here recomputes a parent strictly from its children and
// has no side effects outside the records it is handed.
package rollup

import "github.com/alexanderramin/horizon/internal/domain"

// RecalculateWorkPackageDates sets the work package span to the min/max
// over its assignments' dates, ignoring unset ones. A work package with
// no assignments keeps its existing span.
func RecalculateWorkPackageDates(wp *domain.WorkPackage) {
	if wp == nil || len(wp.Assignments) == 0 {
		return
	}

	var earliest, latest string
	for _, a := range wp.Assignments {
		earliest = domain.MinDate(earliest, a.StartDate)
		latest = domain.MaxDate(latest, a.EndDate)
	}

	if earliest != "" {
		wp.StartDate = earliest
	}
	if latest != "" {
		wp.EndDate = latest
	}
}

// EarliestAssignmentStart returns the earliest start across the work
// package's assignments, falling back to the WP's own start.
func EarliestAssignmentStart(wp *domain.WorkPackage) string {
	earliest := wp.StartDate
	for _, a := range wp.Assignments {
		earliest = domain.MinDate(earliest, a.StartDate)
	}
	return earliest
}

// LatestAssignmentEnd returns the latest end across the work package's
// assignments, falling back to the WP's own end.
func LatestAssignmentEnd(wp *domain.WorkPackage) string {
	latest := wp.EndDate
	for _, a := range wp.Assignments {
		latest = domain.MaxDate(latest, a.EndDate)
	}
	return latest
}

// InitiativeDateSpan computes the initiative span from its work
// packages: earliest WP start, latest WP end. When no work package
// carries dates, the planning-year defaults apply.
func InitiativeDateSpan(init *domain.Initiative, wps []*domain.WorkPackage) (startDate, endDate string) {
	var earliest, latest string
	for _, wp := range wps {
		earliest = domain.MinDate(earliest, wp.StartDate)
		latest = domain.MaxDate(latest, wp.EndDate)
	}

	year := init.PlanningYear
	if earliest == "" {
		earliest = domain.DefaultStartForYear(year)
	}
	if latest == "" {
		latest = domain.DefaultEndForYear(year)
	}
	return earliest, latest
}

// GoalDateSpan computes a goal span from its initiatives' spans.
// Initiatives without dates are ignored; an all-empty set yields empty
// strings so callers can preserve existing goal dates.
func GoalDateSpan(initiatives []*domain.Initiative) (startDate, endDate string) {
	var earliest, latest string
	for _, init := range initiatives {
		earliest = domain.MinDate(earliest, init.StartDate)
		latest = domain.MaxDate(latest, init.TargetDueDate)
	}
	return earliest, latest
}
