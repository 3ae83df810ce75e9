package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/board"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
)

// timelineTask is one bar on the text timeline.
type timelineTask struct {
	ID    string
	Label string
	Start string
	End   string
}

// textTimeline renders the plan as horizontal bars. It implements
// board.TimelineRenderer and keeps its own copy of the task list, so
// it only reflects the document as of the last Refresh call.
type textTimeline struct {
	doc         *domain.PlanDocument
	tasks       []timelineTask
	highlighted string
}

var _ board.TimelineRenderer = (*textTimeline)(nil)

func newTextTimeline(doc *domain.PlanDocument) *textTimeline {
	t := &textTimeline{doc: doc}
	t.Refresh()
	return t
}

func (t *textTimeline) Refresh() {
	t.tasks = t.tasks[:0]
	for _, wp := range t.doc.WorkPackages {
		t.tasks = append(t.tasks, timelineTask{
			ID:    rollup.NormalizeID(wp.ID),
			Label: wp.Title,
			Start: wp.StartDate,
			End:   wp.EndDate,
		})
		for _, a := range wp.Assignments {
			id, ok := rollup.AssignmentTaskID(wp.ID, a.TeamID)
			if !ok {
				continue
			}
			t.tasks = append(t.tasks, timelineTask{
				ID:    id,
				Label: "  " + t.doc.TeamName(a.TeamID),
				Start: a.StartDate,
				End:   a.EndDate,
			})
		}
	}
}

func (t *textTimeline) HighlightTask(taskID string) {
	t.highlighted = rollup.NormalizeID(taskID)
}

// View renders the bars into the given width.
func (t *textTimeline) View(width int) string {
	const labelWidth = 24
	barWidth := width - labelWidth - 1
	if barWidth < 10 {
		barWidth = 10
	}

	var minDate, maxDate string
	for _, task := range t.tasks {
		minDate = domain.MinDate(minDate, task.Start)
		maxDate = domain.MaxDate(maxDate, task.End)
	}
	if minDate == "" || maxDate == "" {
		return dimStyle.Render("No dated tasks.")
	}
	span := domain.DiffDays(minDate, maxDate)
	if span < 1 {
		span = 1
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s%s / %s", labelWidth, "", minDate, maxDate)))
	b.WriteString("\n")
	for _, task := range t.tasks {
		label := task.Label
		if len(label) > labelWidth-1 {
			label = label[:labelWidth-1]
		}
		b.WriteString(fmt.Sprintf("%-*s", labelWidth, label))
		b.WriteString(t.bar(task, minDate, span, barWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func (t *textTimeline) bar(task timelineTask, minDate string, span, barWidth int) string {
	if task.Start == "" || task.End == "" {
		return dimStyle.Render("·")
	}
	offset := domain.DiffDays(minDate, task.Start) * barWidth / span
	length := domain.DiffDays(task.Start, task.End) * barWidth / span
	if length < 1 {
		length = 1
	}
	if offset+length > barWidth {
		length = barWidth - offset
	}
	if length < 1 {
		length = 1
	}
	bar := strings.Repeat(" ", offset) + strings.Repeat("█", length)
	if task.ID == t.highlighted {
		return barHighlightStyle.Render(bar)
	}
	return barStyle.Render(bar)
}
