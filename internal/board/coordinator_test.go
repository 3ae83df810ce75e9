package board

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer captures the sync calls the coordinator makes.
type recordingRenderer struct {
	refreshes   int
	highlighted []string
}

func (r *recordingRenderer) Refresh()                    { r.refreshes++ }
func (r *recordingRenderer) HighlightTask(taskID string) { r.highlighted = append(r.highlighted, taskID) }

type harness struct {
	doc      *domain.PlanDocument
	coord    *Coordinator
	renderer *recordingRenderer
	messages []string
	renders  int
	saves    int
}

func newHarness(t *testing.T, doc *domain.PlanDocument) *harness {
	t.Helper()
	h := &harness{doc: doc, renderer: &recordingRenderer{}}
	h.coord = NewCoordinator(Config{
		Doc:          doc,
		Model:        NewModel(),
		WorkPackages: service.NewWorkPackageService(),
		Initiatives:  service.NewInitiativeService(),
		Renderer:     h.renderer,
		Render:       func() { h.renders++ },
		Notify:       func(message string) { h.messages = append(h.messages, message) },
		Save:         func() { h.saves++ },
	})
	return h
}

func boardDoc() *domain.PlanDocument {
	return testutil.NewTestDocument(
		testutil.WithTeams("team-a", "team-b"),
		testutil.WithInitiatives(testutil.NewTestInitiative("Checkout", 2024,
			testutil.WithInitiativeID("i1"),
		)),
		testutil.WithWorkPackages(testutil.NewTestWorkPackage("i1", "Build",
			testutil.WithWorkPackageID("wp1"),
			testutil.WithWorkPackageSpan("2024-01-01", "2024-03-01"),
			testutil.WithAssignment("team-a", 52.2, "2024-01-01", "2024-03-01"),
		)),
	)
}

func TestHandleViewEvent_ToggleIsPureUIState(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(ToggleInitiative{InitiativeID: "i1"})

	assert.True(t, h.coord.Model().InitiativeExpanded("i1"))
	assert.Zero(t, h.saves, "toggles never persist")
	assert.Zero(t, h.renderer.refreshes, "toggles never sync the timeline")
}

func TestHandleViewEvent_AddTask_PicksFirstFreeTeam(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(AddTask{WorkPackageID: "wp1"})

	wp := h.doc.WorkPackage("wp1")
	require.Len(t, wp.Assignments, 2)
	assert.Equal(t, "team-b", wp.Assignments[1].TeamID)
	assert.Equal(t, 1, h.saves)
	assert.Equal(t, 1, h.renderer.refreshes)
}

func TestHandleViewEvent_AddTask_RejectsWhenAllTeamsAssigned(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(AddTask{WorkPackageID: "wp1"}) // takes team-b
	h.coord.HandleViewEvent(AddTask{WorkPackageID: "wp1"}) // nothing left

	wp := h.doc.WorkPackage("wp1")
	assert.Len(t, wp.Assignments, 2, "no duplicate team row created")
	require.NotEmpty(t, h.messages)
	assert.Contains(t, h.messages[len(h.messages)-1], "already assigned")
}

func TestHandleViewEvent_DateEditPropagates(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(FieldEdited{
		Kind:          KindAssignment,
		WorkPackageID: "wp1",
		TeamID:        "team-a",
		Field:         "endDate",
		Value:         "2024-05-01",
	})

	wp := h.doc.WorkPackage("wp1")
	assert.Equal(t, "2024-05-01", wp.EndDate, "work package span recalculated")
	assert.Equal(t, "2024-05-01", h.doc.Initiative("i1").TargetDueDate, "initiative span refreshed")
	assert.Equal(t, 1, h.renderer.refreshes, "date edits sync the timeline")
	assert.Equal(t, 1, h.saves)
}

func TestHandleViewEvent_TitleEditDoesNotPropagate(t *testing.T) {
	h := newHarness(t, boardDoc())
	before := h.doc.Initiative("i1").TargetDueDate

	h.coord.HandleViewEvent(FieldEdited{
		Kind:          KindWorkPackage,
		WorkPackageID: "wp1",
		Field:         "title",
		Value:         "Renamed",
	})

	assert.Equal(t, "Renamed", h.doc.WorkPackage("wp1").Title)
	assert.Equal(t, before, h.doc.Initiative("i1").TargetDueDate)
	assert.Zero(t, h.renderer.refreshes, "non-date edits skip the timeline sync")
	assert.Equal(t, 1, h.saves, "still persisted")
}

func TestHandleViewEvent_SdeYearsStoredAsDays(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(FieldEdited{
		Kind:          KindAssignment,
		WorkPackageID: "wp1",
		TeamID:        "team-a",
		Field:         "sdeYears",
		Value:         "0.5",
	})

	a := h.doc.WorkPackage("wp1").Assignment("team-a")
	assert.InDelta(t, 130.5, a.SDEDays, 1e-9, "0.5 years at 261 working days")

	init := h.doc.Initiative("i1")
	require.Len(t, init.Allocations, 1)
	assert.InDelta(t, 0.5, init.Allocations[0].SDEYears, 1e-9, "totals resynced")
}

func TestHandleViewEvent_TopDownAllocationEdit(t *testing.T) {
	doc := testutil.NewTestDocument(
		testutil.WithTeams("team-a"),
		testutil.WithInitiatives(testutil.NewTestInitiative("Checkout", 2024,
			testutil.WithInitiativeID("i1"),
		)),
	)
	h := newHarness(t, doc)

	h.coord.HandleViewEvent(FieldEdited{
		Kind:         KindInitiative,
		InitiativeID: "i1",
		TeamID:       "team-a",
		Field:        "sdeYears",
		Value:        "1.5",
	})

	init := doc.Initiative("i1")
	require.Len(t, init.Allocations, 1)
	assert.InDelta(t, 1.5, init.Allocations[0].SDEYears, 1e-9)
	assert.Equal(t, 1, h.saves)

	// without a team there is nothing to allocate against
	h.coord.HandleViewEvent(FieldEdited{
		Kind:         KindInitiative,
		InitiativeID: "i1",
		Field:        "sdeYears",
		Value:        "2.0",
	})
	assert.Len(t, init.Allocations, 1)
	assert.NotEmpty(t, h.messages)
}

func TestHandleViewEvent_InvalidEffortRejected(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(FieldEdited{
		Kind:          KindAssignment,
		WorkPackageID: "wp1",
		TeamID:        "team-a",
		Field:         "sdeYears",
		Value:         "lots",
	})

	assert.InDelta(t, 52.2, h.doc.WorkPackage("wp1").Assignment("team-a").SDEDays, 1e-9)
	assert.NotEmpty(t, h.messages)
	assert.Zero(t, h.saves)
}

func TestHandleViewEvent_DeleteWorkPackageRestoresInitiativeSpan(t *testing.T) {
	doc := boardDoc()
	doc.WorkPackages = append(doc.WorkPackages, testutil.NewTestWorkPackage("i1", "Later",
		testutil.WithWorkPackageID("wp2"),
		testutil.WithWorkPackageSpan("2024-06-01", "2024-10-01"),
	))
	doc.Initiative("i1").AddWorkPackageID("wp2")
	h := newHarness(t, doc)

	h.coord.HandleViewEvent(DeleteWorkPackage{WorkPackageID: "wp2"})

	assert.Nil(t, h.doc.WorkPackage("wp2"))
	init := h.doc.Initiative("i1")
	assert.Equal(t, "2024-03-01", init.TargetDueDate, "span recomputed from the survivor")
	assert.Equal(t, 1, h.renderer.refreshes)
}

func TestHandleViewEvent_RowClickCapturesFocusAndHighlights(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(RowClicked{Ref: EntityRef{
		InitiativeID:  "i1",
		WorkPackageID: "wp1",
		TeamID:        "team-a",
	}})

	focus, ok := h.coord.Model().Focus()
	require.True(t, ok)
	assert.Equal(t, FocusAssignment, focus.Kind)
	assert.Equal(t, "wp1-team-a", focus.TaskID)
	assert.Equal(t, []string{"wp1-team-a"}, h.renderer.highlighted)
}

func TestHandleViewEvent_EscapeClearsFocus(t *testing.T) {
	h := newHarness(t, boardDoc())
	h.coord.HandleViewEvent(RowClicked{Ref: EntityRef{WorkPackageID: "wp1"}})
	_, ok := h.coord.Model().Focus()
	require.True(t, ok)

	h.coord.HandleViewEvent(KeyPressed{Key: "esc"})

	_, ok = h.coord.Model().Focus()
	assert.False(t, ok)
}

func TestHandleRendererEvent_DateChangeSharesTheEditPath(t *testing.T) {
	h := newHarness(t, boardDoc())

	// the timeline reports a drag on the assignment bar
	h.coord.HandleRendererEvent(TaskDateChanged{
		TaskID:    "wp1-team-a",
		StartDate: "2024-01-05",
		EndDate:   "2024-03-05",
	})

	a := h.doc.WorkPackage("wp1").Assignment("team-a")
	assert.Equal(t, "2024-01-05", a.StartDate)
	assert.Equal(t, "2024-03-05", a.EndDate)
	assert.Equal(t, "2024-03-05", h.doc.WorkPackage("wp1").EndDate, "rollup ran on the incoming path too")
	assert.Equal(t, "2024-03-05", h.doc.Initiative("i1").TargetDueDate)
}

func TestHandleViewEvent_WorkPackageDateEditStands(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleViewEvent(FieldEdited{
		Kind:          KindWorkPackage,
		WorkPackageID: "wp1",
		Field:         "endDate",
		Value:         "2024-06-01",
	})

	wp := h.doc.WorkPackage("wp1")
	assert.Equal(t, "2024-06-01", wp.EndDate, "edit not overwritten by the task rollup")
	assert.Equal(t, "2024-06-01", h.doc.Initiative("i1").TargetDueDate, "initiative span still refreshed")
	assert.Equal(t, 1, h.renderer.refreshes)
}

func TestHandleRendererEvent_WorkPackageDrag(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleRendererEvent(TaskDateChanged{TaskID: "wp1", EndDate: "2024-06-01"})

	assert.Equal(t, "2024-06-01", h.doc.WorkPackage("wp1").EndDate)
}

func TestHandleRendererEvent_ClickFocuses(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleRendererEvent(TaskClicked{TaskID: "wp1-team-a"})

	focus, ok := h.coord.Model().Focus()
	require.True(t, ok)
	assert.Equal(t, FocusAssignment, focus.Kind)
	assert.Equal(t, "team-a", focus.TeamID)
}

func TestHandleRendererEvent_UnknownTaskIgnored(t *testing.T) {
	h := newHarness(t, boardDoc())

	h.coord.HandleRendererEvent(TaskClicked{TaskID: "nope"})
	h.coord.HandleRendererEvent(TaskDateChanged{TaskID: "nope", StartDate: "2024-01-01"})

	_, ok := h.coord.Model().Focus()
	assert.False(t, ok)
	assert.Zero(t, h.saves)
}
