package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Catalog is the subset of catalog operations the browser uses
type Catalog interface {
	List() ([]domain.Book, error)
	Search(query string) ([]domain.Book, error)
	Delete(id int) error
	UpdateStatus(id int, status string) (domain.Book, error)
}

// InputMode represents what keystrokes currently drive
type InputMode int

const (
	ModeBrowse InputMode = iota
	ModeSearch
	ModeConfirmDelete
)

// Model is the browser's bubbletea model
type Model struct {
	catalog Catalog
	keys    KeyMap

	table table.Model
	input textinput.Model
	help  help.Model

	books   []domain.Book
	query   string
	mode    InputMode
	pending domain.Book // book awaiting delete confirmation

	statusMsg   string
	statusIsErr bool

	width  int
	height int

	// err is set when the session ended on an unrecoverable store error
	err error
}

// NewModel creates the browser model
func NewModel(c Catalog) Model {
	ti := textinput.New()
	ti.Placeholder = "title, author or year"
	ti.CharLimit = 100
	ti.Prompt = "/"
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(styles.TableStyles())

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		catalog: c,
		keys:    DefaultKeyMap(),
		table:   t,
		input:   ti,
		help:    h,
	}
}

// Init loads the initial book list
func (m Model) Init() tea.Cmd {
	return LoadBooksCmd(m.catalog, "")
}

// Err returns the error that ended the session, if any
func (m Model) Err() error {
	return m.err
}

// Books returns the books currently shown
func (m Model) Books() []domain.Book {
	return m.books
}

// Mode returns the current input mode
func (m Model) Mode() InputMode {
	return m.mode
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case BooksLoadedMsg:
		m.books = msg.Books
		m.query = msg.Query
		m.table.SetRows(rows(msg.Books))
		m.clampCursor()
		return m, nil

	case StatusUpdatedMsg:
		m.setStatus(fmt.Sprintf("%q is now %s", msg.Book.Title, msg.Book.Status.Label()), false)
		return m, LoadBooksCmd(m.catalog, m.query)

	case BookDeletedMsg:
		m.setStatus(fmt.Sprintf("Deleted %q", msg.Title), false)
		return m, LoadBooksCmd(m.catalog, m.query)

	case ErrMsg:
		if errors.Is(msg.Err, domain.ErrCorruptStore) || errors.Is(msg.Err, domain.ErrStoreIO) {
			m.err = msg
			return m, tea.Quit
		}
		m.setStatus(msg.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeSearch
		m.input.SetValue(m.query)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.query == "" {
			return m, nil
		}
		m.clearStatus()
		return m, LoadBooksCmd(m.catalog, "")

	case key.Matches(msg, m.keys.Toggle):
		book, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, SetStatusCmd(m.catalog, book.ID, book.Status.Toggle())

	case key.Matches(msg, m.keys.Delete):
		book, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.pending = book
		m.mode = ModeConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.clearStatus()
		return m, LoadBooksCmd(m.catalog, m.query)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = ModeBrowse
		m.input.Blur()
		m.clearStatus()
		m.table.SetCursor(0)
		return m, LoadBooksCmd(m.catalog, m.input.Value())
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	book := m.pending
	m.pending = domain.Book{}
	m.mode = ModeBrowse

	if key.Matches(msg, m.keys.Confirm) {
		return m, DeleteBookCmd(m.catalog, book)
	}
	m.setStatus("Delete cancelled", false)
	return m, nil
}

// selected returns the book under the table cursor
func (m Model) selected() (domain.Book, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.books) {
		return domain.Book{}, false
	}
	return m.books[i], true
}

// clampCursor keeps the cursor on a row after the list shrank or grew
func (m *Model) clampCursor() {
	c := m.table.Cursor()
	switch {
	case len(m.books) == 0:
		return
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(m.books):
		m.table.SetCursor(len(m.books) - 1)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusIsErr = false
}
