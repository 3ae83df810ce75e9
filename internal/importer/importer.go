// Package importer reads plan documents from YAML files.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
)

type planFile struct {
	WorkingDaysPerYear int              `yaml:"working_days_per_year"`
	Teams              []teamEntry      `yaml:"teams"`
	Goals              []goalEntry      `yaml:"goals"`
	Initiatives        []initiativeEntry `yaml:"initiatives"`
}

type teamEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Identity string `yaml:"identity"`
}

type goalEntry struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	StartDate     string   `yaml:"start_date"`
	TargetDueDate string   `yaml:"target_due_date"`
	Initiatives   []string `yaml:"initiatives"`
}

type initiativeEntry struct {
	ID            string            `yaml:"id"`
	Goal          string            `yaml:"goal"`
	Title         string            `yaml:"title"`
	PlanningYear  int               `yaml:"planning_year"`
	StartDate     string            `yaml:"start_date"`
	TargetDueDate string            `yaml:"target_due_date"`
	Status        string            `yaml:"status"`
	Allocations   []allocationEntry `yaml:"allocations"`
	DependsOn     []string          `yaml:"depends_on"`
	WorkPackages  []workPackageEntry `yaml:"work_packages"`
}

type allocationEntry struct {
	Team     string  `yaml:"team"`
	SDEYears float64 `yaml:"sde_years"`
}

type workPackageEntry struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	StartDate   string            `yaml:"start_date"`
	EndDate     string            `yaml:"end_date"`
	Status      string            `yaml:"status"`
	DependsOn   []string          `yaml:"depends_on"`
	Assignments []assignmentEntry `yaml:"assignments"`
}

type assignmentEntry struct {
	Team         string   `yaml:"team"`
	SDEDays      float64  `yaml:"sde_days"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	Predecessors []string `yaml:"predecessors"`
}

// LoadFile parses a YAML plan file into a document.
func LoadFile(path string) (*domain.PlanDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML plan data.
func Parse(data []byte) (*domain.PlanDocument, error) {
	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return toDocument(&file)
}

func toDocument(file *planFile) (*domain.PlanDocument, error) {
	doc := domain.NewPlanDocument()
	if file.WorkingDaysPerYear > 0 {
		doc.Capacity.WorkingDaysPerYear = file.WorkingDaysPerYear
	}

	teamIDs := make(map[string]bool)
	for _, t := range file.Teams {
		id := rollup.NormalizeID(t.ID)
		if id == "" {
			id = rollup.NormalizeID(t.Name)
		}
		if id == "" {
			return nil, fmt.Errorf("team with no id or name")
		}
		if teamIDs[id] {
			return nil, fmt.Errorf("duplicate team %q", id)
		}
		teamIDs[id] = true
		doc.Teams = append(doc.Teams, domain.Team{ID: id, Name: t.Name, Identity: t.Identity})
	}

	for _, g := range file.Goals {
		id := rollup.NormalizeID(g.ID)
		if id == "" {
			id = rollup.NormalizeID(g.Title)
		}
		if id == "" {
			return nil, fmt.Errorf("goal with no id or title")
		}
		if doc.Goal(id) != nil {
			return nil, fmt.Errorf("duplicate goal %q", id)
		}
		goal := &domain.Goal{
			ID:            id,
			Title:         g.Title,
			StartDate:     g.StartDate,
			TargetDueDate: g.TargetDueDate,
		}
		for _, initRef := range g.Initiatives {
			goal.InitiativeIDs = append(goal.InitiativeIDs, rollup.NormalizeID(initRef))
		}
		doc.Goals = append(doc.Goals, goal)
	}

	for _, in := range file.Initiatives {
		init, err := buildInitiative(doc, in, teamIDs)
		if err != nil {
			return nil, err
		}
		doc.Initiatives = append(doc.Initiatives, init)
		if goal := doc.Goal(init.GoalID); goal != nil && !containsID(goal.InitiativeIDs, init.ID) {
			goal.InitiativeIDs = append(goal.InitiativeIDs, init.ID)
		}

		for _, w := range in.WorkPackages {
			wp, err := buildWorkPackage(doc, init, w, teamIDs)
			if err != nil {
				return nil, err
			}
			doc.WorkPackages = append(doc.WorkPackages, wp)
			init.AddWorkPackageID(wp.ID)
		}
	}

	if err := validateReferences(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func buildInitiative(doc *domain.PlanDocument, in initiativeEntry, teamIDs map[string]bool) (*domain.Initiative, error) {
	id := rollup.NormalizeID(in.ID)
	if id == "" {
		id = rollup.NormalizeID(in.Title)
	}
	if id == "" {
		return nil, fmt.Errorf("initiative with no id or title")
	}
	if doc.Initiative(id) != nil {
		return nil, fmt.Errorf("duplicate initiative %q", id)
	}
	status := domain.InitiativeStatus(in.Status)
	if in.Status == "" {
		status = domain.InitiativeBacklog
	} else if !domain.ValidInitiativeStatuses[in.Status] {
		return nil, fmt.Errorf("initiative %q: unknown status %q", id, in.Status)
	}
	init := &domain.Initiative{
		ID:            id,
		GoalID:        rollup.NormalizeID(in.Goal),
		Title:         in.Title,
		PlanningYear:  in.PlanningYear,
		StartDate:     in.StartDate,
		TargetDueDate: in.TargetDueDate,
		Status:        status,
	}
	for _, a := range in.Allocations {
		teamID := rollup.NormalizeID(a.Team)
		if !teamIDs[teamID] {
			return nil, fmt.Errorf("initiative %q: unknown team %q", id, a.Team)
		}
		if a.SDEYears < 0 {
			return nil, fmt.Errorf("initiative %q: negative allocation for %q", id, a.Team)
		}
		init.Allocations = append(init.Allocations, domain.TeamAllocation{TeamID: teamID, SDEYears: a.SDEYears})
	}
	for _, dep := range in.DependsOn {
		init.Dependencies = append(init.Dependencies, rollup.NormalizeID(dep))
	}
	return init, nil
}

func buildWorkPackage(doc *domain.PlanDocument, init *domain.Initiative, w workPackageEntry, teamIDs map[string]bool) (*domain.WorkPackage, error) {
	id := rollup.NormalizeID(w.ID)
	if id == "" {
		id = rollup.NormalizeID(init.ID + "-" + w.Title)
	}
	if doc.WorkPackage(id) != nil {
		return nil, fmt.Errorf("duplicate work package %q", id)
	}
	status := domain.WorkPackageStatus(w.Status)
	if w.Status == "" {
		status = domain.WorkPackagePlanned
	} else if !domain.ValidWorkPackageStatuses[w.Status] {
		return nil, fmt.Errorf("work package %q: unknown status %q", id, w.Status)
	}
	wp := &domain.WorkPackage{
		ID:           id,
		InitiativeID: init.ID,
		Title:        w.Title,
		StartDate:    w.StartDate,
		EndDate:      w.EndDate,
		Status:       status,
		Phases:       domain.NewDeliveryPhases(w.StartDate, w.EndDate),
	}
	for _, dep := range w.DependsOn {
		wp.Dependencies = append(wp.Dependencies, rollup.NormalizeID(dep))
	}
	for _, a := range w.Assignments {
		teamID := rollup.NormalizeID(a.Team)
		if teamID != "" && !teamIDs[teamID] {
			return nil, fmt.Errorf("work package %q: unknown team %q", id, a.Team)
		}
		if wp.Assignment(teamID) != nil && teamID != "" {
			return nil, fmt.Errorf("work package %q: duplicate assignment for team %q", id, a.Team)
		}
		if a.SDEDays < 0 {
			return nil, fmt.Errorf("work package %q: negative effort for %q", id, a.Team)
		}
		assignment := &domain.Assignment{
			TeamID:    teamID,
			SDEDays:   a.SDEDays,
			StartDate: a.StartDate,
			EndDate:   a.EndDate,
		}
		for _, pred := range a.Predecessors {
			assignment.Predecessors = append(assignment.Predecessors, pred)
		}
		wp.Assignments = append(wp.Assignments, assignment)
	}
	rollup.RecalculateWorkPackageDates(wp)
	return wp, nil
}

func validateReferences(doc *domain.PlanDocument) error {
	for _, g := range doc.Goals {
		for _, initiativeID := range g.InitiativeIDs {
			if doc.Initiative(initiativeID) == nil {
				return fmt.Errorf("goal %q references unknown initiative %q", g.ID, initiativeID)
			}
		}
	}
	for _, init := range doc.Initiatives {
		if init.GoalID != "" && doc.Goal(init.GoalID) == nil {
			return fmt.Errorf("initiative %q references unknown goal %q", init.ID, init.GoalID)
		}
		for _, dep := range init.Dependencies {
			if doc.Initiative(dep) == nil {
				return fmt.Errorf("initiative %q depends on unknown initiative %q", init.ID, dep)
			}
		}
	}
	for _, wp := range doc.WorkPackages {
		for _, dep := range wp.Dependencies {
			if doc.WorkPackage(dep) == nil {
				return fmt.Errorf("work package %q depends on unknown work package %q", wp.ID, dep)
			}
			if rollup.WouldCreateDependencyCycle(wp.ID, dep, doc.WorkPackages) {
				return fmt.Errorf("work package %q: dependency on %q forms a cycle", wp.ID, dep)
			}
		}
	}
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
