package domain

import "strings"

// Assignment is a task-level estimate for one team within a work package.
// Effort is stored in SDE-days; SDE-years is a presentation unit only.
type Assignment struct {
	TeamID       string // empty = unassigned
	SDEDays      float64
	StartDate    string
	EndDate      string
	Predecessors []string // composite assignment task ids within the same WP
}

// DeliveryPhase is one informational stage of a work package's checklist.
// Phases carry their own spans but never participate in date rollup.
type DeliveryPhase struct {
	ID        string
	Name      string
	StartDate string
	EndDate   string
	Status    PhaseStatus
}

// StandardDeliveryPhases is the fixed ordered checklist created on every
// work package.
var StandardDeliveryPhases = []string{
	"Requirements & Definition",
	"Design (Technical & UX)",
	"Implementation",
	"Integration & System Testing",
	"Security Testing",
	"User Acceptance Testing (UAT/E2E)",
	"Deployment",
	"Completed & Monitored",
}

// PhaseID derives the stable identifier for a phase name.
func PhaseID(name string) string {
	var b strings.Builder
	b.WriteString("phase-")
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// NewDeliveryPhases builds the standard checklist with the given span
// and status Planned.
func NewDeliveryPhases(startDate, endDate string) []DeliveryPhase {
	phases := make([]DeliveryPhase, 0, len(StandardDeliveryPhases))
	for _, name := range StandardDeliveryPhases {
		phases = append(phases, DeliveryPhase{
			ID:        PhaseID(name),
			Name:      name,
			StartDate: startDate,
			EndDate:   endDate,
			Status:    PhasePlanned,
		})
	}
	return phases
}

// WorkPackage is a schedulable unit of delivery owned by exactly one
// initiative. Its span is rolled up from its assignments.
type WorkPackage struct {
	ID           string
	InitiativeID string
	Title        string
	StartDate    string
	EndDate      string
	Status       WorkPackageStatus
	Assignments  []*Assignment
	Phases       []DeliveryPhase
	Dependencies []string // ids of other work packages; stored, not solved
}

// Assignment returns the task row for teamID, or nil.
func (wp *WorkPackage) Assignment(teamID string) *Assignment {
	for _, a := range wp.Assignments {
		if a.TeamID == teamID {
			return a
		}
	}
	return nil
}

// HasTeam reports whether teamID already has a task row on this WP.
func (wp *WorkPackage) HasTeam(teamID string) bool {
	return wp.Assignment(teamID) != nil
}
