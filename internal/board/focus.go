package board

import "github.com/alexanderramin/horizon/internal/rollup"

// FocusKind classifies what the current focus points at.
type FocusKind string

const (
	FocusAssignment  FocusKind = "assignment"
	FocusWorkPackage FocusKind = "workPackage"
	FocusInitiative  FocusKind = "initiative"
)

// FocusContext identifies the single selected entity shared between
// the table and the timeline. TaskID is the normalized timeline id.
type FocusContext struct {
	Kind          FocusKind
	TaskID        string
	InitiativeID  string
	WorkPackageID string
	TeamID        string
}

// CaptureFocus classifies a row reference into a focus context.
// Assignment wins over work package wins over initiative; a reference
// matching none of the three shapes produces no focus change.
func CaptureFocus(ref EntityRef) (FocusContext, bool) {
	if taskID, ok := rollup.AssignmentTaskID(ref.WorkPackageID, ref.TeamID); ok {
		return FocusContext{
			Kind:          FocusAssignment,
			TaskID:        taskID,
			InitiativeID:  ref.InitiativeID,
			WorkPackageID: ref.WorkPackageID,
			TeamID:        ref.TeamID,
		}, true
	}
	if ref.WorkPackageID != "" {
		return FocusContext{
			Kind:          FocusWorkPackage,
			TaskID:        rollup.NormalizeID(ref.WorkPackageID),
			InitiativeID:  ref.InitiativeID,
			WorkPackageID: ref.WorkPackageID,
		}, true
	}
	if ref.InitiativeRow && ref.InitiativeID != "" {
		return FocusContext{
			Kind:         FocusInitiative,
			TaskID:       rollup.NormalizeID(ref.InitiativeID),
			InitiativeID: ref.InitiativeID,
		}, true
	}
	return FocusContext{}, false
}
