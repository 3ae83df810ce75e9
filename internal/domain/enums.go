package domain

type InitiativeStatus string

const (
	InitiativeBacklog   InitiativeStatus = "Backlog"
	InitiativeDefined   InitiativeStatus = "Defined"
	InitiativeCommitted InitiativeStatus = "Committed"
	InitiativeCompleted InitiativeStatus = "Completed"
)

// ValidInitiativeStatuses is the canonical set of accepted initiative status strings.
var ValidInitiativeStatuses = map[string]bool{
	"Backlog": true, "Defined": true, "Committed": true, "Completed": true,
}

type WorkPackageStatus string

const (
	WorkPackagePlanned    WorkPackageStatus = "Planned"
	WorkPackageInProgress WorkPackageStatus = "In Progress"
	WorkPackageCompleted  WorkPackageStatus = "Completed"
	WorkPackageBlocked    WorkPackageStatus = "Blocked"
)

// ValidWorkPackageStatuses is the canonical set of accepted work package status strings.
var ValidWorkPackageStatuses = map[string]bool{
	"Planned": true, "In Progress": true, "Completed": true, "Blocked": true,
}

type PhaseStatus string

const (
	PhasePlanned    PhaseStatus = "Planned"
	PhaseInProgress PhaseStatus = "In Progress"
	PhaseCompleted  PhaseStatus = "Completed"
)
