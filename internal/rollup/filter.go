package rollup

import "github.com/alexanderramin/horizon/internal/domain"

// GroupByTeam restricts the initiative list to those with an allocation
// for the selected team.
const (
	GroupByAll  = "all"
	GroupByTeam = "team"
)

// FilterParams selects which initiatives appear on the planning board.
type FilterParams struct {
	Year     int
	Statuses map[domain.InitiativeStatus]bool // empty = all statuses
	GroupBy  string
	TeamID   string // the selected team when GroupBy == GroupByTeam
}

// FilteredInitiatives returns the initiatives matching the filter, in
// document order.
func FilteredInitiatives(doc *domain.PlanDocument, params FilterParams) []*domain.Initiative {
	var out []*domain.Initiative
	for _, init := range doc.Initiatives {
		if params.Year != 0 && init.PlanningYear != params.Year {
			continue
		}
		if len(params.Statuses) > 0 && !params.Statuses[init.Status] {
			continue
		}
		if params.GroupBy == GroupByTeam && params.TeamID != "" && params.TeamID != GroupByAll {
			if !initiativeTouchesTeam(init, doc.WorkPackagesFor(init.ID), params.TeamID) {
				continue
			}
		}
		out = append(out, init)
	}
	return out
}

// initiativeTouchesTeam checks the allocation cache first and falls back
// to task rows, so an initiative edited bottom-up before a totals sync
// is still matched.
func initiativeTouchesTeam(init *domain.Initiative, wps []*domain.WorkPackage, teamID string) bool {
	for _, a := range init.Allocations {
		if a.TeamID == teamID {
			return true
		}
	}
	for _, wp := range wps {
		if wp.HasTeam(teamID) {
			return true
		}
	}
	return false
}
