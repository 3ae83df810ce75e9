package cli

import (
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/lipgloss"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorHeader)
	dimStyle        = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	cursorRowStyle  = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorBlue)
	focusedRowStyle = lipgloss.NewStyle().Underline(true)

	barStyle          = lipgloss.NewStyle().Foreground(formatter.ColorBlue)
	barHighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorYellow)

	statusBarStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	messageStyle   = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorYellow)
)
