// Package formatter renders planning data as styled terminal text.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
)

// Dates renders a date span, showing placeholders for unset ends.
func Dates(start, end string) string {
	if start == "" && end == "" {
		return StyleDim.Render("(no dates)")
	}
	if start == "" {
		start = "…"
	}
	if end == "" {
		end = "…"
	}
	return fmt.Sprintf("%s → %s", start, end)
}

// Effort renders an SDE-days figure with its SDE-years equivalent.
func Effort(sdeDays float64, workingDaysPerYear int) string {
	if workingDaysPerYear <= 0 {
		workingDaysPerYear = domain.DefaultWorkingDaysPerYear
	}
	years := sdeDays / float64(workingDaysPerYear)
	return fmt.Sprintf("%.1fd (%.2fy)", sdeDays, years)
}

// FormatPlanSummary renders document-level counts.
func FormatPlanSummary(doc *domain.PlanDocument) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Plan") + "\n")
	b.WriteString(fmt.Sprintf("  Teams:         %d\n", len(doc.Teams)))
	b.WriteString(fmt.Sprintf("  Goals:         %d\n", len(doc.Goals)))
	b.WriteString(fmt.Sprintf("  Initiatives:   %d\n", len(doc.Initiatives)))
	b.WriteString(fmt.Sprintf("  Work packages: %d\n", len(doc.WorkPackages)))
	b.WriteString(fmt.Sprintf("  Working days:  %d/year\n", doc.WorkingDaysPerYear()))
	return b.String()
}

// FormatInitiativeList renders one line per initiative with its rolled
// up span and per-team totals.
func FormatInitiativeList(doc *domain.PlanDocument, initiatives []*domain.Initiative) string {
	if len(initiatives) == 0 {
		return StyleDim.Render("No initiatives match.") + "\n"
	}
	var b strings.Builder
	for _, init := range initiatives {
		status := StatusStyle(init.Status).Render(string(init.Status))
		b.WriteString(fmt.Sprintf("%s  %s  [%s]  %s\n",
			StyleBold.Render(init.ID),
			init.Title,
			status,
			Dates(init.StartDate, init.TargetDueDate)))
		for _, alloc := range init.Allocations {
			b.WriteString(fmt.Sprintf("    %-20s %.2f SDE-years\n",
				doc.TeamName(alloc.TeamID), alloc.SDEYears))
		}
	}
	return b.String()
}

// FormatWorkPackage renders a work package with its task rows.
func FormatWorkPackage(doc *domain.PlanDocument, wp *domain.WorkPackage) string {
	var b strings.Builder
	status := WorkPackageStatusStyle(wp.Status).Render(string(wp.Status))
	b.WriteString(fmt.Sprintf("%s  %s  [%s]  %s\n",
		StyleBold.Render(wp.ID), wp.Title, status, Dates(wp.StartDate, wp.EndDate)))
	if len(wp.Dependencies) > 0 {
		b.WriteString(StyleDim.Render("  after: "+strings.Join(wp.Dependencies, ", ")) + "\n")
	}
	for _, a := range wp.Assignments {
		b.WriteString(fmt.Sprintf("  %-20s %-14s %s\n",
			doc.TeamName(a.TeamID),
			Effort(a.SDEDays, doc.WorkingDaysPerYear()),
			Dates(a.StartDate, a.EndDate)))
	}
	return b.String()
}

// FormatConflicts renders the scheduling conflict list.
func FormatConflicts(conflicts []rollup.Conflict) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("No scheduling conflicts.") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%d scheduling conflicts", len(conflicts))) + "\n")
	for _, c := range conflicts {
		switch c.Kind {
		case rollup.ConflictAssignment:
			b.WriteString(fmt.Sprintf("  %s task %s/%s starts %s, predecessor %s ends %s\n",
				StyleRed.Render("✗"), c.WorkPackageID, c.TeamID, c.StartDate, c.PredecessorID, c.PredecessorEnd))
		default:
			b.WriteString(fmt.Sprintf("  %s %s starts %s, predecessor %s ends %s\n",
				StyleRed.Render("✗"), c.WorkPackageID, c.StartDate, c.PredecessorID, c.PredecessorEnd))
		}
	}
	return b.String()
}

// FormatAutoSchedule summarizes a forward-scheduling pass.
func FormatAutoSchedule(result rollup.AutoScheduleResult) string {
	line := fmt.Sprintf("Shifted %d work packages; %d conflicts remain.", result.Shifted, result.ConflictCount)
	if result.ConflictCount > 0 {
		return StyleYellow.Render(line) + "\n"
	}
	return StyleGreen.Render(line) + "\n"
}
