package board

import (
	"sort"

	"github.com/alexanderramin/horizon/internal/rollup"
)

// Model tracks which rows are expanded in the hierarchy view, the
// active filters, and the single focused entity. All transitions are
// pure set toggles; the only side effect is notifying listeners that a
// re-render is needed.
type Model struct {
	expandedInitiatives  map[string]bool
	expandedWorkPackages map[string]bool
	expandedOtherTeams   map[string]bool

	focus    FocusContext
	hasFocus bool

	filters rollup.FilterParams

	listeners []func()
}

func NewModel() *Model {
	return &Model{
		expandedInitiatives:  map[string]bool{},
		expandedWorkPackages: map[string]bool{},
		expandedOtherTeams:   map[string]bool{},
		filters:              rollup.FilterParams{GroupBy: rollup.GroupByAll},
	}
}

// OnChange registers a listener called after every state transition.
func (m *Model) OnChange(fn func()) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

func (m *Model) notify() {
	for _, fn := range m.listeners {
		fn()
	}
}

func (m *Model) ToggleInitiative(id string) {
	toggle(m.expandedInitiatives, id)
	m.notify()
}

func (m *Model) ToggleWorkPackage(id string) {
	toggle(m.expandedWorkPackages, id)
	m.notify()
}

func (m *Model) ToggleOtherTeams(wpID string) {
	toggle(m.expandedOtherTeams, wpID)
	m.notify()
}

func (m *Model) InitiativeExpanded(id string) bool  { return m.expandedInitiatives[id] }
func (m *Model) WorkPackageExpanded(id string) bool { return m.expandedWorkPackages[id] }
func (m *Model) OtherTeamsExpanded(wpID string) bool {
	return m.expandedOtherTeams[wpID]
}

func (m *Model) SetFocus(fc FocusContext) {
	m.focus = fc
	m.hasFocus = true
	m.notify()
}

func (m *Model) ClearFocus() {
	if !m.hasFocus {
		return
	}
	m.focus = FocusContext{}
	m.hasFocus = false
	m.notify()
}

// Focus returns the current focus context, if any.
func (m *Model) Focus() (FocusContext, bool) {
	return m.focus, m.hasFocus
}

func (m *Model) Filters() rollup.FilterParams { return m.filters }

func (m *Model) SetFilters(params rollup.FilterParams) {
	m.filters = params
	m.notify()
}

// State is the serializable snapshot of the model, used to carry the
// expansion state across view rebuilds and sessions.
type State struct {
	ExpandedInitiatives  []string `json:"expandedInitiatives"`
	ExpandedWorkPackages []string `json:"expandedWorkPackages"`
	ExpandedOtherTeams   []string `json:"expandedOtherTeams"`
}

func (m *Model) Snapshot() State {
	return State{
		ExpandedInitiatives:  sortedKeys(m.expandedInitiatives),
		ExpandedWorkPackages: sortedKeys(m.expandedWorkPackages),
		ExpandedOtherTeams:   sortedKeys(m.expandedOtherTeams),
	}
}

// Restore replaces the expansion sets from a snapshot. Focus and
// filters are session state and are not restored.
func (m *Model) Restore(state State) {
	m.expandedInitiatives = setFrom(state.ExpandedInitiatives)
	m.expandedWorkPackages = setFrom(state.ExpandedWorkPackages)
	m.expandedOtherTeams = setFrom(state.ExpandedOtherTeams)
	m.notify()
}

func toggle(set map[string]bool, id string) {
	if id == "" {
		return
	}
	if set[id] {
		delete(set, id)
		return
	}
	set[id] = true
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func setFrom(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k != "" {
			set[k] = true
		}
	}
	return set
}
