// Package board holds the view-side synchronization core: the
// expansion/focus state model, the view event vocabulary, the timeline
// renderer port, and the coordinator that sequences edits, rollup,
// re-render, and renderer sync.
package board

// EntityKind tags which hierarchy level a field edit targets.
type EntityKind string

const (
	KindInitiative  EntityKind = "initiative"
	KindWorkPackage EntityKind = "work-package"
	KindAssignment  EntityKind = "wp-assign"
)

// EntityRef carries the identifiers attached to a clicked row. Which
// identifiers are set determines the focus classification.
type EntityRef struct {
	InitiativeID  string
	WorkPackageID string
	TeamID        string
	// InitiativeRow marks a bare initiative row; an initiative id alone
	// is ambiguous because work package rows also carry one.
	InitiativeRow bool
}

// ViewEvent is the closed set of user intents the coordinator accepts.
type ViewEvent interface {
	viewEvent()
}

type ToggleInitiative struct {
	InitiativeID string
}

type ToggleWorkPackage struct {
	WorkPackageID string
}

// ToggleOtherTeams expands or collapses the non-matching-team group of
// a work package while a team filter is active.
type ToggleOtherTeams struct {
	WorkPackageID string
}

type AddWorkPackage struct {
	InitiativeID string
}

type DeleteWorkPackage struct {
	InitiativeID  string
	WorkPackageID string
}

// AddTask adds a task row for the first team not yet represented on
// the work package.
type AddTask struct {
	InitiativeID  string
	WorkPackageID string
}

type DeleteTask struct {
	InitiativeID  string
	WorkPackageID string
	TeamID        string
}

// FieldEdited is a single-field update at any hierarchy level. Value
// carries the raw user input; the coordinator parses and converts it
// (sdeYears edits on task rows are stored in days).
type FieldEdited struct {
	Kind          EntityKind
	InitiativeID  string
	WorkPackageID string
	TeamID        string
	Field         string
	Value         string
}

type RowClicked struct {
	Ref EntityRef
}

// KeyPressed carries navigation/editing shortcuts. Only Escape has
// defined behavior today.
type KeyPressed struct {
	Key string
}

func (ToggleInitiative) viewEvent()  {}
func (ToggleWorkPackage) viewEvent() {}
func (ToggleOtherTeams) viewEvent()  {}
func (AddWorkPackage) viewEvent()    {}
func (DeleteWorkPackage) viewEvent() {}
func (AddTask) viewEvent()           {}
func (DeleteTask) viewEvent()        {}
func (FieldEdited) viewEvent()       {}
func (RowClicked) viewEvent()        {}
func (KeyPressed) viewEvent()        {}
