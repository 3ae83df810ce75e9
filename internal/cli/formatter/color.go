package formatter

import (
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for an initiative status.
func StatusStyle(status domain.InitiativeStatus) lipgloss.Style {
	switch status {
	case domain.InitiativeCommitted:
		return StyleGreen
	case domain.InitiativeDefined:
		return StyleBlue
	case domain.InitiativeCompleted:
		return StyleDim
	default:
		return StyleYellow
	}
}

// WorkPackageStatusStyle returns the style for a work package status.
func WorkPackageStatusStyle(status domain.WorkPackageStatus) lipgloss.Style {
	switch status {
	case domain.WorkPackageCompleted:
		return StyleDim
	case domain.WorkPackageInProgress:
		return StyleGreen
	case domain.WorkPackageBlocked:
		return StyleRed
	default:
		return StyleBlue
	}
}
