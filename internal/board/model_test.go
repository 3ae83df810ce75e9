package board

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_TogglesAreIndependent(t *testing.T) {
	m := NewModel()

	m.ToggleInitiative("i1")
	m.ToggleWorkPackage("wp1")
	m.ToggleOtherTeams("wp1")

	assert.True(t, m.InitiativeExpanded("i1"))
	assert.False(t, m.InitiativeExpanded("i2"))
	assert.True(t, m.WorkPackageExpanded("wp1"))
	assert.True(t, m.OtherTeamsExpanded("wp1"))

	m.ToggleInitiative("i1")
	assert.False(t, m.InitiativeExpanded("i1"))
	assert.True(t, m.WorkPackageExpanded("wp1"), "collapsing an initiative leaves the other sets alone")
}

func TestModel_ToggleEmptyIDIgnored(t *testing.T) {
	m := NewModel()
	m.ToggleInitiative("")
	assert.False(t, m.InitiativeExpanded(""))
}

func TestModel_ChangeListenersFire(t *testing.T) {
	m := NewModel()
	fired := 0
	m.OnChange(func() { fired++ })

	m.ToggleInitiative("i1")
	m.SetFocus(FocusContext{Kind: FocusInitiative, TaskID: "i1", InitiativeID: "i1"})
	m.ClearFocus()

	assert.Equal(t, 3, fired)
}

func TestModel_FocusLifecycle(t *testing.T) {
	m := NewModel()
	_, ok := m.Focus()
	require.False(t, ok)

	m.SetFocus(FocusContext{Kind: FocusWorkPackage, TaskID: "wp1", WorkPackageID: "wp1"})
	focus, ok := m.Focus()
	require.True(t, ok)
	assert.Equal(t, FocusWorkPackage, focus.Kind)

	m.ClearFocus()
	_, ok = m.Focus()
	assert.False(t, ok)
}

func TestModel_SnapshotRoundTrip(t *testing.T) {
	m := NewModel()
	m.ToggleInitiative("i2")
	m.ToggleInitiative("i1")
	m.ToggleWorkPackage("wp1")
	m.ToggleOtherTeams("wp2")

	state := m.Snapshot()
	assert.Equal(t, []string{"i1", "i2"}, state.ExpandedInitiatives, "snapshot is sorted for stable persistence")
	assert.Equal(t, []string{"wp1"}, state.ExpandedWorkPackages)
	assert.Equal(t, []string{"wp2"}, state.ExpandedOtherTeams)

	restored := NewModel()
	restored.Restore(state)
	assert.True(t, restored.InitiativeExpanded("i1"))
	assert.True(t, restored.InitiativeExpanded("i2"))
	assert.True(t, restored.WorkPackageExpanded("wp1"))
	assert.True(t, restored.OtherTeamsExpanded("wp2"))
}

func TestModel_RestoreReplacesOnlyExpansionState(t *testing.T) {
	m := NewModel()
	m.ToggleInitiative("stale")
	m.SetFocus(FocusContext{Kind: FocusInitiative, TaskID: "i1", InitiativeID: "i1"})

	m.Restore(State{ExpandedInitiatives: []string{"i1"}})

	assert.False(t, m.InitiativeExpanded("stale"))
	assert.True(t, m.InitiativeExpanded("i1"))
	_, ok := m.Focus()
	assert.True(t, ok, "focus is session state and survives a restore")
}

func TestModel_DefaultFilters(t *testing.T) {
	m := NewModel()
	assert.Equal(t, rollup.GroupByAll, m.Filters().GroupBy)
}

func TestCaptureFocus_Classification(t *testing.T) {
	fc, ok := CaptureFocus(EntityRef{InitiativeID: "i1", WorkPackageID: "wp1", TeamID: "team-a"})
	require.True(t, ok)
	assert.Equal(t, FocusAssignment, fc.Kind)
	assert.Equal(t, "wp1-team-a", fc.TaskID)

	fc, ok = CaptureFocus(EntityRef{InitiativeID: "i1", WorkPackageID: "WP One"})
	require.True(t, ok)
	assert.Equal(t, FocusWorkPackage, fc.Kind)
	assert.Equal(t, "wp-one", fc.TaskID, "task ids are normalized")

	fc, ok = CaptureFocus(EntityRef{InitiativeID: "i1", InitiativeRow: true})
	require.True(t, ok)
	assert.Equal(t, FocusInitiative, fc.Kind)

	_, ok = CaptureFocus(EntityRef{InitiativeID: "i1"})
	assert.False(t, ok, "a non-row initiative reference focuses nothing")
}
