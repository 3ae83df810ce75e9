package rollup

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterDoc() *domain.PlanDocument {
	doc := domain.NewPlanDocument()
	doc.Initiatives = []*domain.Initiative{
		{ID: "i1", PlanningYear: 2024, Status: domain.InitiativeCommitted,
			Allocations: []domain.TeamAllocation{{TeamID: "team-a", SDEYears: 1}}},
		{ID: "i2", PlanningYear: 2024, Status: domain.InitiativeBacklog},
		{ID: "i3", PlanningYear: 2025, Status: domain.InitiativeCommitted},
	}
	doc.WorkPackages = []*domain.WorkPackage{
		{ID: "wp2", InitiativeID: "i2", Assignments: []*domain.Assignment{{TeamID: "team-b"}}},
	}
	return doc
}

func TestFilteredInitiatives_Year(t *testing.T) {
	got := FilteredInitiatives(filterDoc(), FilterParams{Year: 2024})
	require.Len(t, got, 2)
	assert.Equal(t, "i1", got[0].ID)
	assert.Equal(t, "i2", got[1].ID)
}

func TestFilteredInitiatives_Statuses(t *testing.T) {
	got := FilteredInitiatives(filterDoc(), FilterParams{
		Statuses: map[domain.InitiativeStatus]bool{domain.InitiativeCommitted: true},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "i1", got[0].ID)
	assert.Equal(t, "i3", got[1].ID)
}

func TestFilteredInitiatives_TeamGrouping(t *testing.T) {
	// team-a matches through the allocation cache, team-b only through
	// task rows
	got := FilteredInitiatives(filterDoc(), FilterParams{GroupBy: GroupByTeam, TeamID: "team-a"})
	require.Len(t, got, 1)
	assert.Equal(t, "i1", got[0].ID)

	got = FilteredInitiatives(filterDoc(), FilterParams{GroupBy: GroupByTeam, TeamID: "team-b"})
	require.Len(t, got, 1)
	assert.Equal(t, "i2", got[0].ID)
}

func TestFilteredInitiatives_AllSentinelDisablesTeamFilter(t *testing.T) {
	got := FilteredInitiatives(filterDoc(), FilterParams{GroupBy: GroupByTeam, TeamID: GroupByAll})
	assert.Len(t, got, 3)
}
