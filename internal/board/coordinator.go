package board

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
	"github.com/alexanderramin/horizon/internal/service"
)

// Coordinator sequences one view event start-to-finish: mutate the
// document, restore the rollup invariants bottom-up, request a
// re-render, and sync the timeline renderer. It is single-threaded;
// callers must not overlap HandleViewEvent calls.
type Coordinator struct {
	doc          *domain.PlanDocument
	model        *Model
	workPackages service.WorkPackageService
	initiatives  service.InitiativeService
	dates        service.DateRefresher
	renderer     TimelineRenderer

	render func()
	notify func(message string)
	save   func()
}

// Config wires a coordinator. Doc, Model, WorkPackages, and
// Initiatives are required; everything else defaults to a no-op.
type Config struct {
	Doc          *domain.PlanDocument
	Model        *Model
	WorkPackages service.WorkPackageService
	Initiatives  service.InitiativeService
	Dates        service.DateRefresher
	Renderer     TimelineRenderer

	// Render requests a table re-render after a document mutation.
	// Pure expansion/focus changes go through Model listeners instead.
	Render func()
	// Notify surfaces a user-visible message for rejected actions.
	Notify func(message string)
	// Save persists the document after a completed mutation path.
	Save func()
}

func NewCoordinator(cfg Config) *Coordinator {
	c := &Coordinator{
		doc:          cfg.Doc,
		model:        cfg.Model,
		workPackages: cfg.WorkPackages,
		initiatives:  cfg.Initiatives,
		dates:        cfg.Dates,
		renderer:     cfg.Renderer,
		render:       cfg.Render,
		notify:       cfg.Notify,
		save:         cfg.Save,
	}
	if c.dates == nil {
		if c.initiatives != nil {
			c.dates = c.initiatives
		} else {
			c.dates = service.NoopDateRefresher{}
		}
	}
	if c.renderer == nil {
		c.renderer = NoopRenderer{}
	}
	if c.render == nil {
		c.render = func() {}
	}
	if c.notify == nil {
		c.notify = func(string) {}
	}
	if c.save == nil {
		c.save = func() {}
	}
	return c
}

// Model exposes the expansion state for the rendering layer.
func (c *Coordinator) Model() *Model { return c.model }

// HandleViewEvent is the sole entry point for UI-origin events.
func (c *Coordinator) HandleViewEvent(event ViewEvent) {
	switch ev := event.(type) {
	case ToggleInitiative:
		c.model.ToggleInitiative(ev.InitiativeID)
	case ToggleWorkPackage:
		c.model.ToggleWorkPackage(ev.WorkPackageID)
	case ToggleOtherTeams:
		c.model.ToggleOtherTeams(ev.WorkPackageID)
	case AddWorkPackage:
		c.addWorkPackage(ev)
	case DeleteWorkPackage:
		c.deleteWorkPackage(ev)
	case AddTask:
		c.addTask(ev)
	case DeleteTask:
		c.deleteTask(ev)
	case FieldEdited:
		c.fieldEdited(ev)
	case RowClicked:
		c.rowClicked(ev)
	case KeyPressed:
		c.keyPressed(ev)
	}
}

// HandleRendererEvent translates an incoming timeline notification
// into the same field-edit/focus vocabulary as local edits, so one
// code path enforces the rollup invariants.
func (c *Coordinator) HandleRendererEvent(event RendererEvent) {
	switch ev := event.(type) {
	case TaskDateChanged:
		ref, ok := c.resolveTaskID(ev.TaskID)
		if !ok {
			return
		}
		kind := classifyRef(ref)
		if ev.StartDate != "" {
			c.fieldEdited(FieldEdited{
				Kind:          kind,
				InitiativeID:  ref.InitiativeID,
				WorkPackageID: ref.WorkPackageID,
				TeamID:        ref.TeamID,
				Field:         "startDate",
				Value:         ev.StartDate,
			})
		}
		if ev.EndDate != "" {
			c.fieldEdited(FieldEdited{
				Kind:          kind,
				InitiativeID:  ref.InitiativeID,
				WorkPackageID: ref.WorkPackageID,
				TeamID:        ref.TeamID,
				Field:         endFieldFor(kind),
				Value:         ev.EndDate,
			})
		}
	case TaskClicked:
		ref, ok := c.resolveTaskID(ev.TaskID)
		if !ok {
			return
		}
		c.rowClicked(RowClicked{Ref: ref})
	}
}

func (c *Coordinator) addWorkPackage(ev AddWorkPackage) {
	wp, err := c.workPackages.AddWorkPackage(c.doc, ev.InitiativeID, service.WorkPackageOverrides{})
	if err != nil {
		c.notify(fmt.Sprintf("Cannot add work package: %v", err))
		return
	}
	c.propagateDates(ev.InitiativeID, wp.ID)
	c.workPackages.SyncInitiativeTotals(c.doc, ev.InitiativeID)
	c.model.ToggleWorkPackage(wp.ID)
	c.completeMutation()
}

func (c *Coordinator) deleteWorkPackage(ev DeleteWorkPackage) {
	initiativeID := ev.InitiativeID
	if wp := c.doc.WorkPackage(ev.WorkPackageID); wp != nil {
		initiativeID = wp.InitiativeID
	}
	if err := c.workPackages.DeleteWorkPackage(c.doc, ev.WorkPackageID); err != nil {
		c.notify(fmt.Sprintf("Cannot delete work package: %v", err))
		return
	}
	c.propagateDates(initiativeID, "")
	c.workPackages.SyncInitiativeTotals(c.doc, initiativeID)
	c.completeMutation()
}

func (c *Coordinator) addTask(ev AddTask) {
	wp := c.doc.WorkPackage(ev.WorkPackageID)
	if wp == nil {
		c.notify("Work package not found.")
		return
	}
	teamID := ""
	found := false
	for _, team := range c.doc.Teams {
		if !wp.HasTeam(team.ID) {
			teamID = team.ID
			found = true
			break
		}
	}
	if !found {
		c.notify(fmt.Sprintf("Cannot add task: %v", service.ErrAllTeamsAssigned))
		return
	}
	if _, err := c.workPackages.AddAssignment(c.doc, wp.ID, service.AssignmentOverrides{TeamID: teamID}); err != nil {
		c.notify(fmt.Sprintf("Cannot add task: %v", err))
		return
	}
	c.propagateDates(wp.InitiativeID, wp.ID)
	c.workPackages.SyncInitiativeTotals(c.doc, wp.InitiativeID)
	c.completeMutation()
}

func (c *Coordinator) deleteTask(ev DeleteTask) {
	wp := c.doc.WorkPackage(ev.WorkPackageID)
	if wp == nil {
		c.notify("Work package not found.")
		return
	}
	if err := c.workPackages.DeleteAssignment(c.doc, wp.ID, ev.TeamID); err != nil {
		c.notify(fmt.Sprintf("Cannot delete task: %v", err))
		return
	}
	c.propagateDates(wp.InitiativeID, wp.ID)
	c.workPackages.SyncInitiativeTotals(c.doc, wp.InitiativeID)
	c.completeMutation()
}

func (c *Coordinator) fieldEdited(ev FieldEdited) {
	var err error
	switch ev.Kind {
	case KindInitiative:
		err = c.editInitiative(ev)
	case KindWorkPackage:
		err = c.editWorkPackage(ev)
	case KindAssignment:
		err = c.editAssignment(ev)
	default:
		return
	}
	if err != nil {
		c.notify(fmt.Sprintf("Cannot update %s: %v", ev.Field, err))
		return
	}

	if isDateField(ev.Field) {
		initiativeID := ev.InitiativeID
		if wp := c.doc.WorkPackage(ev.WorkPackageID); wp != nil {
			initiativeID = wp.InitiativeID
		}
		// Only an assignment edit re-rolls the work package span; a
		// direct work-package date edit must stand as entered.
		wpID := ""
		if ev.Kind == KindAssignment {
			wpID = ev.WorkPackageID
		}
		c.propagateDates(initiativeID, wpID)
		c.completeMutation()
		return
	}
	if isEffortField(ev.Field) {
		initiativeID := ev.InitiativeID
		if wp := c.doc.WorkPackage(ev.WorkPackageID); wp != nil {
			initiativeID = wp.InitiativeID
		}
		c.workPackages.SyncInitiativeTotals(c.doc, initiativeID)
	}
	c.save()
	c.render()
}

func (c *Coordinator) editInitiative(ev FieldEdited) error {
	patch := service.InitiativePatch{}
	switch ev.Field {
	case "title":
		patch.Title = &ev.Value
	case "startDate":
		patch.StartDate = &ev.Value
	case "targetDueDate":
		patch.TargetDueDate = &ev.Value
	case "status":
		status := domain.InitiativeStatus(ev.Value)
		if !domain.ValidInitiativeStatuses[ev.Value] {
			return fmt.Errorf("unknown status %q", ev.Value)
		}
		patch.Status = &status
	case "sdeYears":
		// top-down allocation edit; only meaningful before work
		// packages exist, afterwards totals roll up from tasks
		return c.editInitiativeAllocation(ev)
	default:
		return fmt.Errorf("unknown initiative field %q", ev.Field)
	}
	_, err := c.initiatives.UpdateInitiative(c.doc, ev.InitiativeID, patch)
	return err
}

func (c *Coordinator) editInitiativeAllocation(ev FieldEdited) error {
	if ev.TeamID == "" {
		return fmt.Errorf("allocation edits need a team")
	}
	years, err := strconv.ParseFloat(ev.Value, 64)
	if err != nil {
		return fmt.Errorf("invalid effort value %q", ev.Value)
	}
	init := c.doc.Initiative(ev.InitiativeID)
	if init == nil {
		return service.ErrInitiativeNotFound
	}
	allocations := append([]domain.TeamAllocation(nil), init.Allocations...)
	replaced := false
	for i := range allocations {
		if allocations[i].TeamID == ev.TeamID {
			allocations[i].SDEYears = years
			replaced = true
			break
		}
	}
	if !replaced {
		allocations = append(allocations, domain.TeamAllocation{TeamID: ev.TeamID, SDEYears: years})
	}
	patch := service.InitiativePatch{Allocations: &allocations}
	_, err = c.initiatives.UpdateInitiative(c.doc, ev.InitiativeID, patch)
	return err
}

func (c *Coordinator) editWorkPackage(ev FieldEdited) error {
	patch := service.WorkPackagePatch{}
	switch ev.Field {
	case "title":
		patch.Title = &ev.Value
	case "startDate":
		patch.StartDate = &ev.Value
	case "endDate":
		patch.EndDate = &ev.Value
	case "status":
		status := domain.WorkPackageStatus(ev.Value)
		if !domain.ValidWorkPackageStatuses[ev.Value] {
			return fmt.Errorf("unknown status %q", ev.Value)
		}
		patch.Status = &status
	default:
		return fmt.Errorf("unknown work package field %q", ev.Field)
	}
	_, err := c.workPackages.UpdateWorkPackage(c.doc, ev.WorkPackageID, patch)
	return err
}

func (c *Coordinator) editAssignment(ev FieldEdited) error {
	patch := service.AssignmentPatch{}
	switch ev.Field {
	case "startDate":
		patch.StartDate = &ev.Value
	case "endDate":
		patch.EndDate = &ev.Value
	case "sdeDays":
		days, err := strconv.ParseFloat(ev.Value, 64)
		if err != nil {
			return fmt.Errorf("invalid effort value %q", ev.Value)
		}
		patch.SDEDays = &days
	case "sdeYears":
		// years is a presentation unit; task effort is stored in days
		years, err := strconv.ParseFloat(ev.Value, 64)
		if err != nil {
			return fmt.Errorf("invalid effort value %q", ev.Value)
		}
		days := years * float64(c.doc.WorkingDaysPerYear())
		patch.SDEDays = &days
	default:
		return fmt.Errorf("unknown task field %q", ev.Field)
	}
	return c.workPackages.UpdateAssignment(c.doc, ev.WorkPackageID, ev.TeamID, patch)
}

func (c *Coordinator) rowClicked(ev RowClicked) {
	fc, ok := CaptureFocus(ev.Ref)
	if !ok {
		return
	}
	c.model.SetFocus(fc)
	c.renderer.HighlightTask(fc.TaskID)
}

func (c *Coordinator) keyPressed(ev KeyPressed) {
	if ev.Key == "esc" || ev.Key == "escape" {
		c.model.ClearFocus()
	}
}

// propagateDates restores invariants bottom-up: recalculate the
// touched work package's span from its tasks, then the initiative and
// goal spans from their children.
func (c *Coordinator) propagateDates(initiativeID, wpID string) {
	if wpID != "" {
		if wp := c.doc.WorkPackage(wpID); wp != nil {
			rollup.RecalculateWorkPackageDates(wp)
		}
	}
	c.dates.RefreshInitiativeDates(c.doc, initiativeID)
}

// completeMutation finishes every structural or date mutation path:
// persist, re-render, push a refresh to the timeline.
func (c *Coordinator) completeMutation() {
	c.save()
	c.render()
	c.renderer.Refresh()
}

// resolveTaskID maps a normalized timeline task id back onto document
// entities. Assignment ids win over work package ids win over
// initiative ids, mirroring the focus classification.
func (c *Coordinator) resolveTaskID(taskID string) (EntityRef, bool) {
	id := rollup.NormalizeID(taskID)
	if id == "" {
		return EntityRef{}, false
	}
	for _, wp := range c.doc.WorkPackages {
		for _, a := range wp.Assignments {
			if composite, ok := rollup.AssignmentTaskID(wp.ID, a.TeamID); ok && composite == id {
				return EntityRef{
					InitiativeID:  wp.InitiativeID,
					WorkPackageID: wp.ID,
					TeamID:        a.TeamID,
				}, true
			}
		}
	}
	for _, wp := range c.doc.WorkPackages {
		if rollup.NormalizeID(wp.ID) == id {
			return EntityRef{InitiativeID: wp.InitiativeID, WorkPackageID: wp.ID}, true
		}
	}
	for _, init := range c.doc.Initiatives {
		if rollup.NormalizeID(init.ID) == id {
			return EntityRef{InitiativeID: init.ID, InitiativeRow: true}, true
		}
	}
	return EntityRef{}, false
}

func classifyRef(ref EntityRef) EntityKind {
	switch {
	case ref.WorkPackageID != "" && ref.TeamID != "":
		return KindAssignment
	case ref.WorkPackageID != "":
		return KindWorkPackage
	default:
		return KindInitiative
	}
}

// endFieldFor maps a drag target to the field name its entity uses for
// the span end; every entity shares "startDate" so only the end varies.
func endFieldFor(kind EntityKind) string {
	if kind == KindInitiative {
		return "targetDueDate"
	}
	return "endDate"
}

func isDateField(field string) bool {
	switch field {
	case "startDate", "endDate", "targetDueDate":
		return true
	}
	return false
}

func isEffortField(field string) bool {
	return field == "sdeDays" || field == "sdeYears"
}
