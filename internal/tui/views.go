package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Fixed column widths; title and author share what is left
const (
	idWidth     = 5
	yearWidth   = 6
	statusWidth = 14
	minFlex     = 20
)

// headerHeight and footerHeight are the rows around the table
const (
	headerHeight = 2
	footerHeight = 2
)

func columns(width int) []table.Column {
	flex := width - idWidth - yearWidth - statusWidth - 10 // cell padding
	if flex < minFlex {
		flex = minFlex
	}
	titleWidth := flex * 3 / 5
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Title", Width: titleWidth},
		{Title: "Author", Width: flex - titleWidth},
		{Title: "Year", Width: yearWidth},
		{Title: "Status", Width: statusWidth},
	}
}

func rows(books []domain.Book) []table.Row {
	out := make([]table.Row, len(books))
	for i, b := range books {
		out[i] = table.Row{
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
			styles.StatusIndicator(b.Status) + " " + b.Status.Label(),
		}
	}
	return out
}

// resize fits the table to the window
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.table.SetColumns(columns(m.width))
	m.table.SetWidth(m.width)
	m.help.Width = m.width

	helpHeight := lipgloss.Height(m.help.View(m.keys))
	h := m.height - headerHeight - footerHeight - helpHeight
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

// View renders the browser
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.table.View(),
		m.renderFooter(),
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("shelf")
	count := styles.DimStyle.Render(fmt.Sprintf("  %d books", len(m.books)))
	if m.query != "" {
		count = styles.DimStyle.Render(fmt.Sprintf("  %d matches for ", len(m.books))) +
			styles.FilterStyle.Render(m.query)
	}
	return title + count + "\n"
}

func (m Model) renderFooter() string {
	switch m.mode {
	case ModeSearch:
		return "\n" + m.input.View()
	case ModeConfirmDelete:
		prompt := fmt.Sprintf("Delete %q? (y/n)", m.pending.Title)
		return "\n" + styles.ConfirmStyle.Render(prompt)
	}

	if m.statusMsg == "" {
		book, ok := m.selected()
		if !ok {
			if m.query != "" {
				return "\n" + styles.DimStyle.Render("No books found.")
			}
			return "\n" + styles.DimStyle.Render("The library has no books yet.")
		}
		return "\n" + renderDetail(book)
	}
	if m.statusIsErr {
		return "\n" + styles.ErrorStyle.Render(m.statusMsg)
	}
	return "\n" + styles.SuccessStyle.Render(m.statusMsg)
}

// renderDetail describes the selected book with a colored status
func renderDetail(b domain.Book) string {
	desc := fmt.Sprintf("%s by %s (%d)", b.Title, b.Author, b.Year)
	return styles.TitleStyle.Render(desc) + "  " + styles.RenderStatus(b.Status)
}
