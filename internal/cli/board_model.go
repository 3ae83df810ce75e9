package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/board"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type rowKind int

const (
	rowInitiative rowKind = iota
	rowWorkPackage
	rowTask
	rowOtherTeams
)

// boardRow is one visible line of the hierarchy table.
type boardRow struct {
	kind         rowKind
	initiativeID string
	wpID         string
	teamID       string
	label        string
}

type boardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Focus      key.Binding
	Add        key.Binding
	Delete     key.Binding
	OtherTeams key.Binding
	EditTitle  key.Binding
	EditStart  key.Binding
	EditEnd    key.Binding
	EditEffort key.Binding
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		Focus:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		OtherTeams: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "other teams")),
		EditTitle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "title")),
		EditStart:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		EditEnd:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end")),
		EditEffort: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "effort")),
		ShiftLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "shift -1d")),
		ShiftRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "shift +1d")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is the interactive planning board. All edits go through
// the coordinator; the model only holds cursor and edit-input state.
type boardModel struct {
	app      *App
	doc      *domain.PlanDocument
	coord    *board.Coordinator
	timeline *textTimeline
	keys     boardKeyMap
	vp       viewport.Model

	rows    []boardRow
	cursor  int
	width   int
	height  int
	message string

	editing   bool
	editField string
	editValue string
}

func newBoardModel(app *App, doc *domain.PlanDocument) *boardModel {
	m := &boardModel{
		app:      app,
		doc:      doc,
		timeline: newTextTimeline(doc),
		keys:     newBoardKeyMap(),
		vp:       viewport.New(0, 0),
	}
	stateModel := board.NewModel()
	stateModel.OnChange(m.rebuildRows)
	m.coord = board.NewCoordinator(board.Config{
		Doc:          doc,
		Model:        stateModel,
		WorkPackages: app.WorkPackages,
		Initiatives:  app.Initiatives,
		Renderer:     m.timeline,
		Render:       m.rebuildRows,
		Notify:       func(message string) { m.message = message },
		Save: func() {
			if err := app.Plan.Save(context.Background(), doc); err != nil {
				m.message = fmt.Sprintf("Save failed: %v", err)
			}
		},
	})
	m.rebuildRows()
	return m
}

func (m *boardModel) Init() tea.Cmd { return nil }

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 3
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *boardModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, hasRow := m.currentRow()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Escape):
		m.message = ""
		m.coord.HandleViewEvent(board.KeyPressed{Key: "esc"})
	case !hasRow:
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		switch row.kind {
		case rowInitiative:
			m.coord.HandleViewEvent(board.ToggleInitiative{InitiativeID: row.initiativeID})
		case rowWorkPackage:
			m.coord.HandleViewEvent(board.ToggleWorkPackage{WorkPackageID: row.wpID})
		case rowOtherTeams:
			m.coord.HandleViewEvent(board.ToggleOtherTeams{WorkPackageID: row.wpID})
		}
	case key.Matches(msg, m.keys.OtherTeams):
		if row.wpID != "" {
			m.coord.HandleViewEvent(board.ToggleOtherTeams{WorkPackageID: row.wpID})
		}
	case key.Matches(msg, m.keys.Focus):
		m.coord.HandleViewEvent(board.RowClicked{Ref: m.refFor(row)})
	case key.Matches(msg, m.keys.Add):
		switch row.kind {
		case rowInitiative:
			m.coord.HandleViewEvent(board.AddWorkPackage{InitiativeID: row.initiativeID})
		case rowWorkPackage, rowTask, rowOtherTeams:
			m.coord.HandleViewEvent(board.AddTask{InitiativeID: row.initiativeID, WorkPackageID: row.wpID})
		}
	case key.Matches(msg, m.keys.Delete):
		switch row.kind {
		case rowWorkPackage:
			m.coord.HandleViewEvent(board.DeleteWorkPackage{InitiativeID: row.initiativeID, WorkPackageID: row.wpID})
		case rowTask:
			m.coord.HandleViewEvent(board.DeleteTask{InitiativeID: row.initiativeID, WorkPackageID: row.wpID, TeamID: row.teamID})
		}
	case key.Matches(msg, m.keys.EditTitle):
		if row.kind == rowInitiative || row.kind == rowWorkPackage {
			m.startEdit(row, "title")
		}
	case key.Matches(msg, m.keys.EditStart):
		m.startEdit(row, "startDate")
	case key.Matches(msg, m.keys.EditEnd):
		if row.kind == rowInitiative {
			m.startEdit(row, "targetDueDate")
		} else {
			m.startEdit(row, "endDate")
		}
	case key.Matches(msg, m.keys.EditEffort):
		if row.kind == rowTask {
			m.startEdit(row, "sdeYears")
		}
	case key.Matches(msg, m.keys.ShiftLeft):
		m.shiftDates(row, -1)
	case key.Matches(msg, m.keys.ShiftRight):
		m.shiftDates(row, 1)
	}
	return m, nil
}

func (m *boardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.editValue = ""
		m.coord.HandleViewEvent(board.KeyPressed{Key: "esc"})
	case tea.KeyEnter:
		row, ok := m.currentRow()
		if ok {
			m.coord.HandleViewEvent(m.fieldEditFor(row))
		}
		m.editing = false
		m.editValue = ""
	case tea.KeyBackspace:
		if len(m.editValue) > 0 {
			m.editValue = m.editValue[:len(m.editValue)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.editValue += msg.String()
		}
	}
	return m, nil
}

func (m *boardModel) fieldEditFor(row boardRow) board.FieldEdited {
	ev := board.FieldEdited{
		InitiativeID: row.initiativeID,
		Field:        m.editField,
		Value:        m.editValue,
	}
	switch row.kind {
	case rowInitiative:
		ev.Kind = board.KindInitiative
	case rowWorkPackage:
		ev.Kind = board.KindWorkPackage
		ev.WorkPackageID = row.wpID
	case rowTask:
		ev.Kind = board.KindAssignment
		ev.WorkPackageID = row.wpID
		ev.TeamID = row.teamID
	}
	return ev
}

// startEdit begins inline editing and records the focus, mirroring a
// click on the edited row.
func (m *boardModel) startEdit(row boardRow, field string) {
	m.coord.HandleViewEvent(board.RowClicked{Ref: m.refFor(row)})
	m.editing = true
	m.editField = field
	m.editValue = ""
	m.message = ""
}

// shiftDates moves the row's span one day, routed through the renderer
// event path like a timeline bar drag.
func (m *boardModel) shiftDates(row boardRow, days int) {
	var taskID, start, end string
	switch row.kind {
	case rowTask:
		wp := m.doc.WorkPackage(row.wpID)
		if wp == nil {
			return
		}
		a := wp.Assignment(row.teamID)
		if a == nil {
			return
		}
		id, ok := rollup.AssignmentTaskID(row.wpID, row.teamID)
		if !ok {
			return
		}
		taskID, start, end = id, a.StartDate, a.EndDate
	case rowWorkPackage:
		wp := m.doc.WorkPackage(row.wpID)
		if wp == nil {
			return
		}
		taskID, start, end = rollup.NormalizeID(wp.ID), wp.StartDate, wp.EndDate
	default:
		return
	}
	if start == "" && end == "" {
		return
	}
	m.coord.HandleRendererEvent(board.TaskDateChanged{
		TaskID:    taskID,
		StartDate: domain.AddDays(start, days),
		EndDate:   domain.AddDays(end, days),
	})
}

func (m *boardModel) refFor(row boardRow) board.EntityRef {
	return board.EntityRef{
		InitiativeID:  row.initiativeID,
		WorkPackageID: row.wpID,
		TeamID:        row.teamID,
		InitiativeRow: row.kind == rowInitiative,
	}
}

func (m *boardModel) currentRow() (boardRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return boardRow{}, false
	}
	return m.rows[m.cursor], true
}

// rebuildRows derives the visible rows from the document and the
// expansion state. Registered as the coordinator's render hook.
func (m *boardModel) rebuildRows() {
	state := m.coord.Model()
	params := state.Filters()
	m.rows = m.rows[:0]

	for _, init := range rollup.FilteredInitiatives(m.doc, params) {
		m.rows = append(m.rows, boardRow{
			kind:         rowInitiative,
			initiativeID: init.ID,
			label: fmt.Sprintf("%s %s  %s",
				expandMarker(state.InitiativeExpanded(init.ID)),
				init.Title,
				dimStyle.Render(formatter.Dates(init.StartDate, init.TargetDueDate))),
		})
		if !state.InitiativeExpanded(init.ID) {
			continue
		}
		for _, wp := range m.doc.WorkPackagesFor(init.ID) {
			m.rows = append(m.rows, boardRow{
				kind:         rowWorkPackage,
				initiativeID: init.ID,
				wpID:         wp.ID,
				label: fmt.Sprintf("  %s %s  %s",
					expandMarker(state.WorkPackageExpanded(wp.ID)),
					wp.Title,
					dimStyle.Render(formatter.Dates(wp.StartDate, wp.EndDate))),
			})
			if !state.WorkPackageExpanded(wp.ID) {
				continue
			}
			m.appendTaskRows(init.ID, wp, params, state)
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// appendTaskRows lists a work package's task rows. With a team filter
// active, non-matching teams collapse behind an "other teams" row.
func (m *boardModel) appendTaskRows(initiativeID string, wp *domain.WorkPackage, params rollup.FilterParams, state *board.Model) {
	filtering := params.GroupBy == rollup.GroupByTeam && params.TeamID != "" && params.TeamID != rollup.GroupByAll
	hidden := 0
	for _, a := range wp.Assignments {
		if filtering && a.TeamID != params.TeamID && !state.OtherTeamsExpanded(wp.ID) {
			hidden++
			continue
		}
		m.rows = append(m.rows, boardRow{
			kind:         rowTask,
			initiativeID: initiativeID,
			wpID:         wp.ID,
			teamID:       a.TeamID,
			label: fmt.Sprintf("      %-18s %-12s %s",
				m.doc.TeamName(a.TeamID),
				formatter.Effort(a.SDEDays, m.doc.WorkingDaysPerYear()),
				dimStyle.Render(formatter.Dates(a.StartDate, a.EndDate))),
		})
	}
	if hidden > 0 {
		m.rows = append(m.rows, boardRow{
			kind:         rowOtherTeams,
			initiativeID: initiativeID,
			wpID:         wp.ID,
			label:        dimStyle.Render(fmt.Sprintf("      ▸ %d other teams", hidden)),
		})
	}
}

func (m *boardModel) View() string {
	var left strings.Builder
	left.WriteString(boardTitleStyle.Render("Planning Board") + "\n")
	focus, hasFocus := m.coord.Model().Focus()
	for i, row := range m.rows {
		line := row.label
		if hasFocus && m.rowFocused(row, focus) {
			line = focusedRowStyle.Render(line)
		}
		if i == m.cursor {
			line = cursorRowStyle.Render("▌") + line
		} else {
			line = " " + line
		}
		left.WriteString(line + "\n")
	}
	if len(m.rows) == 0 {
		left.WriteString(dimStyle.Render("No initiatives. Import a plan or adjust filters.") + "\n")
	}

	leftWidth := m.width / 2
	if leftWidth < 40 {
		leftWidth = 40
	}
	rightWidth := m.width - leftWidth - 3
	if rightWidth < 20 {
		rightWidth = 20
	}
	leftCol := lipgloss.NewStyle().Width(leftWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(m.timeline.View(rightWidth))
	m.vp.SetContent(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " │ ", rightCol))
	m.scrollToCursor()
	body := m.vp.View()

	var status string
	if m.editing {
		status = fmt.Sprintf("%s: %s▌", m.editField, m.editValue)
	} else if m.message != "" {
		status = messageStyle.Render(m.message)
	} else {
		status = statusBarStyle.Render("enter expand · f focus · a add · x delete · t/s/e/y edit · [/] shift · q quit")
	}

	return body + "\n" + status
}

// scrollToCursor keeps the cursor row inside the viewport. The +1
// accounts for the title line.
func (m *boardModel) scrollToCursor() {
	if m.vp.Height <= 0 {
		return
	}
	line := m.cursor + 1
	if line < m.vp.YOffset {
		m.vp.SetYOffset(line)
	}
	if line >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(line - m.vp.Height + 1)
	}
}

func (m *boardModel) rowFocused(row boardRow, focus board.FocusContext) bool {
	switch focus.Kind {
	case board.FocusAssignment:
		return row.kind == rowTask && row.wpID == focus.WorkPackageID && row.teamID == focus.TeamID
	case board.FocusWorkPackage:
		return row.kind == rowWorkPackage && row.wpID == focus.WorkPackageID
	case board.FocusInitiative:
		return row.kind == rowInitiative && row.initiativeID == focus.InitiativeID
	}
	return false
}

func expandMarker(expanded bool) string {
	if expanded {
		return "▾"
	}
	return "▸"
}
