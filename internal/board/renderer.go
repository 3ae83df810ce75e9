package board

// TimelineRenderer is the outgoing half of the timeline sync contract.
// The renderer keeps its own visual state; the coordinator only tells
// it when the document changed and which task is selected.
type TimelineRenderer interface {
	Refresh()
	HighlightTask(taskID string)
}

// NoopRenderer satisfies TimelineRenderer for headless use.
type NoopRenderer struct{}

func (NoopRenderer) Refresh()             {}
func (NoopRenderer) HighlightTask(string) {}

// RendererEvent is the closed set of notifications a timeline renderer
// can send back. Task ids are the normalized timeline ids the
// coordinator handed out.
type RendererEvent interface {
	rendererEvent()
}

// TaskDateChanged reports a date drag on the timeline. Empty date
// strings mean that end of the span did not move.
type TaskDateChanged struct {
	TaskID    string
	StartDate string
	EndDate   string
}

type TaskClicked struct {
	TaskID string
}

func (TaskDateChanged) rendererEvent() {}
func (TaskClicked) rendererEvent()     {}
