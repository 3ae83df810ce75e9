package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() *domain.PlanDocument {
	doc := domain.NewPlanDocument()
	doc.Capacity.WorkingDaysPerYear = 250
	doc.Teams = []domain.Team{
		{ID: "team-a", Name: "Team Alpha", Identity: "alpha"},
		{ID: "team-b", Name: "Team Beta"},
	}
	doc.Goals = []*domain.Goal{
		{
			ID:            "g1",
			Title:         "Modern Checkout",
			StartDate:     "2024-01-01",
			TargetDueDate: "2024-12-01",
			InitiativeIDs: []string{"i1", "i2"},
		},
	}
	doc.Initiatives = []*domain.Initiative{
		{
			ID:            "i1",
			GoalID:        "g1",
			Title:         "Payments",
			PlanningYear:  2024,
			StartDate:     "2024-01-01",
			TargetDueDate: "2024-06-01",
			Status:        domain.InitiativeCommitted,
			Allocations: []domain.TeamAllocation{
				{TeamID: "team-a", SDEYears: 0.5},
				{TeamID: "team-b", SDEYears: 0.25},
			},
		},
		{
			ID:           "i2",
			GoalID:       "g1",
			Title:        "Fraud Checks",
			PlanningYear: 2024,
			Status:       domain.InitiativeBacklog,
			Dependencies: []string{"i1"},
		},
	}
	doc.WorkPackages = []*domain.WorkPackage{
		{
			ID:           "wp1",
			InitiativeID: "i1",
			Title:        "Gateway Integration",
			StartDate:    "2024-01-01",
			EndDate:      "2024-04-01",
			Status:       domain.WorkPackageInProgress,
			Assignments: []*domain.Assignment{
				{TeamID: "team-a", SDEDays: 65.25, StartDate: "2024-01-01", EndDate: "2024-03-01"},
				{
					TeamID:       "team-b",
					SDEDays:      30,
					StartDate:    "2024-02-01",
					EndDate:      "2024-04-01",
					Predecessors: []string{"wp1-team-a"},
				},
			},
			Phases: domain.NewDeliveryPhases("2024-01-01", "2024-04-01"),
		},
		{
			ID:           "wp2",
			InitiativeID: "i1",
			Title:        "Reconciliation",
			Status:       domain.WorkPackagePlanned,
			Dependencies: []string{"wp1"},
		},
	}
	doc.Initiative("i1").WorkPackageIDs = []string{"wp1", "wp2"}
	return doc
}

func TestSQLitePlanRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	saved := fullDocument()
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 250, loaded.WorkingDaysPerYear())
	assert.Equal(t, saved.Teams, loaded.Teams)
	assert.Equal(t, saved.Goals, loaded.Goals)

	require.Len(t, loaded.Initiatives, 2)
	assert.Equal(t, saved.Initiatives[0].Allocations, loaded.Initiatives[0].Allocations)
	assert.Equal(t, []string{"i1"}, loaded.Initiatives[1].Dependencies)
	assert.Equal(t, domain.InitiativeCommitted, loaded.Initiatives[0].Status)
	assert.Equal(t, []string{"wp1", "wp2"}, loaded.Initiative("i1").WorkPackageIDs,
		"work package references rebuilt on load")

	require.Len(t, loaded.WorkPackages, 2)
	wp1 := loaded.WorkPackage("wp1")
	require.NotNil(t, wp1)
	assert.Equal(t, saved.WorkPackages[0].Assignments, wp1.Assignments)
	assert.Equal(t, saved.WorkPackages[0].Phases, wp1.Phases)
	assert.Equal(t, []string{"wp1"}, loaded.WorkPackage("wp2").Dependencies)
}

func TestSQLitePlanRepo_SaveReplacesPreviousDocument(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	require.NoError(t, repo.Save(ctx, fullDocument()))

	smaller := domain.NewPlanDocument()
	smaller.Teams = []domain.Team{{ID: "team-c", Name: "Team Gamma"}}
	require.NoError(t, repo.Save(ctx, smaller))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Team{{ID: "team-c", Name: "Team Gamma"}}, loaded.Teams)
	assert.Empty(t, loaded.Goals)
	assert.Empty(t, loaded.Initiatives)
	assert.Empty(t, loaded.WorkPackages, "old children removed with their parents")
	assert.Equal(t, domain.DefaultWorkingDaysPerYear, loaded.WorkingDaysPerYear())
}

func TestSQLitePlanRepo_LoadEmptyDatabase(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.Teams)
	assert.Empty(t, loaded.Initiatives)
	assert.Equal(t, domain.DefaultWorkingDaysPerYear, loaded.WorkingDaysPerYear())
}

func TestSQLitePlanRepo_DocumentOrderPreserved(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	doc := testutil.NewTestDocument(testutil.WithTeams("zeta", "alpha", "mid"))
	for _, id := range []string{"i-c", "i-a", "i-b"} {
		doc.Initiatives = append(doc.Initiatives, testutil.NewTestInitiative(id, 2024, testutil.WithInitiativeID(id)))
	}
	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	var teamIDs []string
	for _, team := range loaded.Teams {
		teamIDs = append(teamIDs, team.ID)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, teamIDs)

	var initIDs []string
	for _, init := range loaded.Initiatives {
		initIDs = append(initIDs, init.ID)
	}
	assert.Equal(t, []string{"i-c", "i-a", "i-b"}, initIDs)
}
