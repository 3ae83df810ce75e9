package service

import "errors"

// Lookup failures are recoverable UI mistakes (stale ids after a
// delete); callers log and surface them, they never abort a render
// cycle.
var (
	ErrInitiativeNotFound  = errors.New("initiative not found")
	ErrWorkPackageNotFound = errors.New("work package not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
)

// ErrAllTeamsAssigned rejects adding a task row when every team in the
// document already has one on the work package. Surfaced as a user
// message, never silently ignored.
var ErrAllTeamsAssigned = errors.New("all teams are already assigned to this work package")
