package rollup

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamDayTotals_SumsAcrossWorkPackages(t *testing.T) {
	wps := []*domain.WorkPackage{
		{ID: "wp1", Assignments: []*domain.Assignment{
			{TeamID: "team-a", SDEDays: 60},
			{TeamID: "team-b", SDEDays: 30},
		}},
		{ID: "wp2", Assignments: []*domain.Assignment{
			{TeamID: "team-a", SDEDays: 40},
			{TeamID: "", SDEDays: 99}, // unassigned rows are skipped
		}},
	}

	totals := TeamDayTotals(wps)

	assert.Equal(t, map[string]float64{"team-a": 100, "team-b": 30}, totals)
}

func TestAllocationsFromDayTotals_ConvertsToYears(t *testing.T) {
	allocs := AllocationsFromDayTotals(map[string]float64{"team-a": 130.5}, 261)

	require.Len(t, allocs, 1)
	assert.Equal(t, "team-a", allocs[0].TeamID)
	assert.InDelta(t, 0.5, allocs[0].SDEYears, 1e-9)
}

func TestAllocationsFromDayTotals_EmptyIsNil(t *testing.T) {
	assert.Nil(t, AllocationsFromDayTotals(nil, 261))
	assert.Nil(t, AllocationsFromDayTotals(map[string]float64{}, 261))
}

func TestAllocationsFromDayTotals_SortedByTeam(t *testing.T) {
	allocs := AllocationsFromDayTotals(map[string]float64{
		"zeta": 26.1, "alpha": 52.2,
	}, 261)

	require.Len(t, allocs, 2)
	assert.Equal(t, "alpha", allocs[0].TeamID)
	assert.Equal(t, "zeta", allocs[1].TeamID)
}

func TestWorkPackageSDEYears_TeamFilter(t *testing.T) {
	wp := &domain.WorkPackage{Assignments: []*domain.Assignment{
		{TeamID: "team-a", SDEDays: 130.5},
		{TeamID: "team-b", SDEDays: 261},
	}}

	assert.InDelta(t, 1.5, WorkPackageSDEYears(wp, 261, ""), 1e-9)
	assert.InDelta(t, 0.5, WorkPackageSDEYears(wp, 261, "team-a"), 1e-9)
}

func TestInitiativeSDEYears(t *testing.T) {
	init := &domain.Initiative{Allocations: []domain.TeamAllocation{
		{TeamID: "team-a", SDEYears: 0.5},
		{TeamID: "team-b", SDEYears: 1.25},
	}}

	assert.InDelta(t, 1.75, InitiativeSDEYears(init, ""), 1e-9)
	assert.InDelta(t, 1.25, InitiativeSDEYears(init, "team-b"), 1e-9)
}
