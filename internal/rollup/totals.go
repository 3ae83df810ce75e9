package rollup

import (
	"sort"

	"github.com/alexanderramin/horizon/internal/domain"
)

// TeamDayTotals sums assignment SDE-days per team across the given work
// packages. Unassigned rows (empty team id) are skipped: they carry
// effort that cannot be attributed to a team total.
func TeamDayTotals(wps []*domain.WorkPackage) map[string]float64 {
	totals := make(map[string]float64)
	for _, wp := range wps {
		for _, a := range wp.Assignments {
			if a.TeamID == "" {
				continue
			}
			totals[a.TeamID] += a.SDEDays
		}
	}
	return totals
}

// AllocationsFromDayTotals converts per-team day totals into
// initiative-level SDE-year allocations, sorted by team id for
// deterministic output. Returns nil when totals is empty.
func AllocationsFromDayTotals(totals map[string]float64, workingDaysPerYear int) []domain.TeamAllocation {
	if len(totals) == 0 {
		return nil
	}
	if workingDaysPerYear <= 0 {
		workingDaysPerYear = domain.DefaultWorkingDaysPerYear
	}

	teamIDs := make([]string, 0, len(totals))
	for id := range totals {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	allocs := make([]domain.TeamAllocation, 0, len(teamIDs))
	for _, id := range teamIDs {
		allocs = append(allocs, domain.TeamAllocation{
			TeamID:   id,
			SDEYears: totals[id] / float64(workingDaysPerYear),
		})
	}
	return allocs
}

// WorkPackageSDEYears totals a work package's assignment effort in
// SDE-years, optionally restricted to one team.
func WorkPackageSDEYears(wp *domain.WorkPackage, workingDaysPerYear int, teamFilter string) float64 {
	if workingDaysPerYear <= 0 {
		workingDaysPerYear = domain.DefaultWorkingDaysPerYear
	}
	var days float64
	for _, a := range wp.Assignments {
		if teamFilter != "" && a.TeamID != teamFilter {
			continue
		}
		days += a.SDEDays
	}
	return days / float64(workingDaysPerYear)
}

// InitiativeSDEYears totals an initiative's allocation cache, optionally
// restricted to one team.
func InitiativeSDEYears(init *domain.Initiative, teamFilter string) float64 {
	var total float64
	for _, a := range init.Allocations {
		if teamFilter != "" && a.TeamID != teamFilter {
			continue
		}
		total += a.SDEYears
	}
	return total
}
