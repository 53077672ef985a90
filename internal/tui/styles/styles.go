package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
)

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Raw status characters (unstyled)
const (
	InStockChar    = "●"
	CheckedOutChar = "○"
)

// Status indicator styles
var (
	InStockStyle    = lipgloss.NewStyle().Foreground(Green)
	CheckedOutStyle = lipgloss.NewStyle().Foreground(Amber)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Amber)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)
)

// Confirm prompt style
var ConfirmStyle = lipgloss.NewStyle().
	Foreground(White).
	Background(Red).
	Padding(0, 1)

// StatusIndicator returns the raw character for a status
func StatusIndicator(s domain.Status) string {
	if s == domain.StatusCheckedOut {
		return CheckedOutChar
	}
	return InStockChar
}

// RenderStatus renders the colored indicator followed by the status label
func RenderStatus(s domain.Status) string {
	style := InStockStyle
	if s == domain.StatusCheckedOut {
		style = CheckedOutStyle
	}
	return style.Render(StatusIndicator(s) + " " + s.Label())
}

// TableStyles returns the styles for the book table
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(DimGray).
		BorderBottom(true).
		Foreground(White).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(White).
		Background(SlateLight).
		Bold(false)
	s.Cell = s.Cell.Foreground(LightGray)
	return s
}

// Set is a group of text styles bound to one renderer, so output written
// to a pipe or file carries no color codes.
type Set struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style
	Accent  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewSet builds the style set for r
func NewSet(r *lipgloss.Renderer) Set {
	return Set{
		Title:   r.NewStyle().Foreground(White).Bold(true),
		Label:   r.NewStyle().Foreground(LightGray),
		Dim:     r.NewStyle().Foreground(DimGray),
		Accent:  r.NewStyle().Foreground(Amber),
		Error:   r.NewStyle().Foreground(Red),
		Success: r.NewStyle().Foreground(Green),
	}
}
