package rollup

import "github.com/alexanderramin/horizon/internal/domain"

// WouldCreateDependencyCycle reports whether adding a dependency from
// fromID to toID would close a cycle in the work package graph.
func WouldCreateDependencyCycle(fromID, toID string, wps []*domain.WorkPackage) bool {
	if fromID == "" || toID == "" {
		return false
	}

	graph := make(map[string][]string, len(wps))
	for _, wp := range wps {
		graph[wp.ID] = append([]string(nil), wp.Dependencies...)
	}
	graph[fromID] = append(graph[fromID], toID)

	return reaches(graph, toID, fromID)
}

// WouldCreateAssignmentCycle reports whether adding a predecessor edge
// between two assignment task ids inside one work package would close a
// cycle.
func WouldCreateAssignmentCycle(wp *domain.WorkPackage, fromTaskID, toTaskID string) bool {
	if wp == nil || fromTaskID == "" || toTaskID == "" {
		return false
	}
	from := NormalizeID(fromTaskID)
	to := NormalizeID(toTaskID)

	graph := make(map[string][]string, len(wp.Assignments))
	for _, a := range wp.Assignments {
		id, ok := AssignmentTaskID(wp.ID, a.TeamID)
		if !ok {
			continue
		}
		for _, pred := range a.Predecessors {
			graph[id] = append(graph[id], NormalizeID(pred))
		}
	}
	graph[from] = append(graph[from], to)

	return reaches(graph, to, from)
}

func reaches(graph map[string][]string, start, target string) bool {
	visited := map[string]bool{}
	stack := []string{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == target {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		stack = append(stack, graph[current]...)
	}
	return false
}

// ConflictKind distinguishes WP-level from assignment-level conflicts.
type ConflictKind string

const (
	ConflictWorkPackage ConflictKind = "workPackage"
	ConflictAssignment  ConflictKind = "assignment"
)

// Conflict is a dependency ordering violation: a successor starting on
// or before its predecessor's end.
type Conflict struct {
	Kind           ConflictKind
	WorkPackageID  string
	TeamID         string // assignment conflicts only
	PredecessorID  string
	StartDate      string
	PredecessorEnd string
}

// SchedulingConflicts scans the work packages for successors that start
// on or before a predecessor's end date.
func SchedulingConflicts(wps []*domain.WorkPackage) []Conflict {
	byID := make(map[string]*domain.WorkPackage, len(wps))
	for _, wp := range wps {
		byID[wp.ID] = wp
	}

	var conflicts []Conflict
	for _, wp := range wps {
		if wp.StartDate != "" {
			for _, depID := range wp.Dependencies {
				dep := byID[depID]
				if dep == nil {
					continue
				}
				depEnd := LatestAssignmentEnd(dep)
				if depEnd == "" || wp.StartDate > depEnd {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Kind:           ConflictWorkPackage,
					WorkPackageID:  wp.ID,
					PredecessorID:  depID,
					StartDate:      wp.StartDate,
					PredecessorEnd: depEnd,
				})
			}
		}

		byTaskID := make(map[string]*domain.Assignment, len(wp.Assignments))
		for _, a := range wp.Assignments {
			if id, ok := AssignmentTaskID(wp.ID, a.TeamID); ok {
				byTaskID[id] = a
			}
		}
		for _, a := range wp.Assignments {
			if a.StartDate == "" {
				continue
			}
			for _, predID := range a.Predecessors {
				pred := byTaskID[NormalizeID(predID)]
				if pred == nil || pred.EndDate == "" || a.StartDate > pred.EndDate {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Kind:           ConflictAssignment,
					WorkPackageID:  wp.ID,
					TeamID:         a.TeamID,
					PredecessorID:  predID,
					StartDate:      a.StartDate,
					PredecessorEnd: pred.EndDate,
				})
			}
		}
	}
	return conflicts
}

// AutoScheduleResult reports what a forward-scheduling pass did.
type AutoScheduleResult struct {
	Shifted       int
	ConflictCount int
}

// AutoSchedule pushes work packages forward until every one starts at
// least minGapDays after its latest dependency end, shifting assignment
// dates by the same offset. Scope is limited to the given planning year
// when year is non-zero. The pass is bounded; any conflicts that remain
// (e.g. from cycles) are counted, not resolved.
func AutoSchedule(doc *domain.PlanDocument, year int, minGapDays int) AutoScheduleResult {
	if minGapDays < 0 {
		minGapDays = 1
	}

	initiativeYear := make(map[string]int, len(doc.Initiatives))
	for _, init := range doc.Initiatives {
		initiativeYear[init.ID] = init.PlanningYear
	}

	var scoped []*domain.WorkPackage
	for _, wp := range doc.WorkPackages {
		if year != 0 && initiativeYear[wp.InitiativeID] != year {
			continue
		}
		scoped = append(scoped, wp)
	}
	byID := make(map[string]*domain.WorkPackage, len(scoped))
	for _, wp := range scoped {
		byID[wp.ID] = wp
	}

	shifted := 0
	maxIterations := len(scoped)*2 + 10
	for iter, changed := 0, true; changed && iter < maxIterations; iter++ {
		changed = false
		for _, wp := range scoped {
			if wp.StartDate == "" {
				continue
			}
			latestDepEnd := latestDependencyEnd(wp, byID)
			if latestDepEnd == "" {
				continue
			}
			earliestAllowed := domain.AddDays(latestDepEnd, minGapDays)
			if wp.StartDate >= earliestAllowed {
				continue
			}

			delta := domain.DiffDays(wp.StartDate, earliestAllowed)
			wp.StartDate = domain.AddDays(wp.StartDate, delta)
			if wp.EndDate != "" {
				wp.EndDate = domain.AddDays(wp.EndDate, delta)
			}
			for _, a := range wp.Assignments {
				if a.StartDate != "" {
					a.StartDate = domain.AddDays(a.StartDate, delta)
				}
				if a.EndDate != "" {
					a.EndDate = domain.AddDays(a.EndDate, delta)
				}
			}
			shifted++
			changed = true
		}
	}

	return AutoScheduleResult{
		Shifted:       shifted,
		ConflictCount: len(SchedulingConflicts(scoped)),
	}
}

func latestDependencyEnd(wp *domain.WorkPackage, byID map[string]*domain.WorkPackage) string {
	var latest string
	for _, depID := range wp.Dependencies {
		dep := byID[depID]
		if dep == nil {
			continue
		}
		latest = domain.MaxDate(latest, LatestAssignmentEnd(dep))
	}
	return latest
}
