package service

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInitiative_AppliesPatch(t *testing.T) {
	doc := testutil.NewTestDocument(
		testutil.WithInitiatives(testutil.NewTestInitiative("Old title", 2024, testutil.WithInitiativeID("i1"))),
	)
	svc := NewInitiativeService()

	title := "New title"
	status := domain.InitiativeCommitted
	init, err := svc.UpdateInitiative(doc, "i1", InitiativePatch{Title: &title, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "New title", init.Title)
	assert.Equal(t, domain.InitiativeCommitted, init.Status)

	_, err = svc.UpdateInitiative(doc, "missing", InitiativePatch{})
	assert.ErrorIs(t, err, ErrInitiativeNotFound)
}

func TestRefreshInitiativeDates_RecomputesSpan(t *testing.T) {
	doc := testutil.NewTestDocument(
		testutil.WithInitiatives(testutil.NewTestInitiative("Checkout", 2024,
			testutil.WithInitiativeID("i1"),
			testutil.WithInitiativeSpan("2020-01-01", "2020-02-01"),
		)),
		testutil.WithWorkPackages(
			testutil.NewTestWorkPackage("i1", "A", testutil.WithWorkPackageSpan("2024-01-01", "2024-04-01")),
			testutil.NewTestWorkPackage("i1", "B", testutil.WithWorkPackageSpan("2024-03-01", "2024-09-15")),
		),
	)
	svc := NewInitiativeService()

	svc.RefreshInitiativeDates(doc, "i1")

	init := doc.Initiative("i1")
	assert.Equal(t, "2024-01-01", init.StartDate)
	assert.Equal(t, "2024-09-15", init.TargetDueDate)
}

func TestRefreshInitiativeDates_NoWorkPackagesKeepsSpan(t *testing.T) {
	doc := testutil.NewTestDocument(
		testutil.WithInitiatives(testutil.NewTestInitiative("Checkout", 2024,
			testutil.WithInitiativeID("i1"),
			testutil.WithInitiativeSpan("2024-05-01", "2024-06-01"),
		)),
	)
	svc := NewInitiativeService()

	svc.RefreshInitiativeDates(doc, "i1")

	init := doc.Initiative("i1")
	assert.Equal(t, "2024-05-01", init.StartDate)
	assert.Equal(t, "2024-06-01", init.TargetDueDate)
}

func TestRefreshInitiativeDates_CascadesToGoal(t *testing.T) {
	doc := testutil.NewTestDocument(
		testutil.WithGoals(&domain.Goal{ID: "g1", Title: "Modernize", InitiativeIDs: []string{"i1", "i2"}}),
		testutil.WithInitiatives(
			testutil.NewTestInitiative("Checkout", 2024, testutil.WithInitiativeID("i1")),
			testutil.NewTestInitiative("Payments", 2024,
				testutil.WithInitiativeID("i2"),
				testutil.WithInitiativeSpan("2024-06-01", "2024-12-01"),
			),
		),
		testutil.WithWorkPackages(
			testutil.NewTestWorkPackage("i1", "A", testutil.WithWorkPackageSpan("2024-01-01", "2024-04-01")),
		),
	)
	svc := NewInitiativeService()

	svc.RefreshInitiativeDates(doc, "i1")

	goal := doc.Goal("g1")
	assert.Equal(t, "2024-01-01", goal.StartDate, "goal start from the earliest initiative")
	assert.Equal(t, "2024-12-01", goal.TargetDueDate, "goal end from the latest initiative")
}
