package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/horizon/internal/repository"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importFixture = `
teams:
  - name: Team Alpha
initiatives:
  - title: Payments
    planning_year: 2024
    work_packages:
      - title: Gateway
        assignments:
          - team: Team Alpha
            sde_days: 52.2
            start_date: "2024-01-01"
            end_date: "2024-03-01"
`

func TestPlanService_ImportPersistsTheDocument(t *testing.T) {
	ctx := context.Background()
	svc := NewPlanService(repository.NewSQLitePlanRepo(testutil.NewTestDB(t)))

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(importFixture), 0o644))

	imported, err := svc.Import(ctx, path)
	require.NoError(t, err)
	require.Len(t, imported.Initiatives, 1)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Initiatives, 1)
	assert.Equal(t, "payments", loaded.Initiatives[0].ID)
	require.Len(t, loaded.WorkPackages, 1)
	assert.Equal(t, "2024-03-01", loaded.WorkPackages[0].EndDate)
}

func TestPlanService_ImportRejectsInvalidFile(t *testing.T) {
	ctx := context.Background()
	svc := NewPlanService(repository.NewSQLitePlanRepo(testutil.NewTestDB(t)))

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initiatives:\n  - title: X\n    status: Bogus\n"), 0o644))

	_, err := svc.Import(ctx, path)
	require.Error(t, err)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Initiatives, "failed import leaves the store untouched")
}

func TestPlanService_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewPlanService(repository.NewSQLitePlanRepo(testutil.NewTestDB(t)))

	doc := testutil.NewTestDocument(
		testutil.WithTeams("team-a"),
		testutil.WithInitiatives(testutil.NewTestInitiative("Checkout", 2024, testutil.WithInitiativeID("i1"))),
	)
	require.NoError(t, svc.Save(ctx, doc))

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Initiatives, 1)
	assert.Equal(t, "Checkout", loaded.Initiatives[0].Title)
}
