// Package menu runs the numbered interactive menu over a reader/writer pair.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Catalog is the set of operations the menu drives
type Catalog interface {
	Add(title, author string, year int) (domain.Book, error)
	Delete(id int) error
	Search(query string) ([]domain.Book, error)
	List() ([]domain.Book, error)
	UpdateStatus(id int, status string) (domain.Book, error)
}

// action is a numbered menu entry
type action int

const (
	actionAdd action = iota + 1
	actionDelete
	actionSearch
	actionList
	actionUpdateStatus
	actionExit
)

var actionLabels = []struct {
	action action
	label  string
}{
	{actionAdd, "Add a book"},
	{actionDelete, "Delete a book"},
	{actionSearch, "Search books"},
	{actionList, "List all books"},
	{actionUpdateStatus, "Change book status"},
	{actionExit, "Exit"},
}

// Menu reads choices from in and writes results to out
type Menu struct {
	catalog Catalog
	in      *bufio.Reader
	out     io.Writer
	styles  styles.Set
	logger  *slog.Logger
}

// New creates a menu. Styles follow the capabilities of out, so writing
// to a non-terminal produces plain text.
func New(catalog Catalog, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		catalog: catalog,
		in:      bufio.NewReader(in),
		out:     out,
		styles:  styles.NewSet(lipgloss.NewRenderer(out)),
		logger:  logger,
	}
}

// Run loops until the user exits or input ends. User mistakes are printed
// and the loop continues; a corrupt store or a failed read ends the session
// with an error.
func (m *Menu) Run() error {
	m.printf("\n%s\n", m.styles.Title.Render("Welcome to shelf, your personal library catalog."))

	for {
		m.printMenu()

		m.printf("\n")
		choice, err := m.prompt("Enter action number: ")
		if err != nil {
			return m.finish(err)
		}

		act, err := parseAction(choice)
		if err != nil {
			m.logger.Debug("invalid menu choice", "input", choice)
			m.printError(err)
			continue
		}

		if act == actionExit {
			m.printf("%s\n", m.styles.Dim.Render("Goodbye."))
			return nil
		}

		if err := m.dispatch(act); err != nil {
			if isFatal(err) {
				return m.finish(err)
			}
			m.printError(err)
		}
	}
}

// finish ends the session: end of input exits cleanly, anything else
// is returned to the caller
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		m.printf("\n%s\n", m.styles.Dim.Render("Goodbye."))
		return nil
	}
	m.logger.Error("menu session aborted", "error", err)
	return err
}

func (m *Menu) dispatch(act action) error {
	switch act {
	case actionAdd:
		return m.add()
	case actionDelete:
		return m.delete()
	case actionSearch:
		return m.search()
	case actionList:
		return m.list()
	case actionUpdateStatus:
		return m.updateStatus()
	default:
		return fmt.Errorf("%w: unknown action %d", domain.ErrInvalidInput, act)
	}
}

func (m *Menu) add() error {
	title, err := m.prompt("Title: ")
	if err != nil {
		return err
	}
	author, err := m.prompt("Author: ")
	if err != nil {
		return err
	}
	year, err := m.promptInt("Year: ")
	if err != nil {
		return err
	}

	book, err := m.catalog.Add(title, author, year)
	if err != nil {
		return err
	}
	m.printSuccess(fmt.Sprintf("Added %q with ID %d.", book.Title, book.ID))
	return nil
}

func (m *Menu) delete() error {
	id, err := m.promptInt("ID of the book to delete: ")
	if err != nil {
		return err
	}
	if err := m.catalog.Delete(id); err != nil {
		return err
	}
	m.printSuccess(fmt.Sprintf("Book %d deleted.", id))
	return nil
}

func (m *Menu) search() error {
	query, err := m.prompt("Title, author or year to search for: ")
	if err != nil {
		return err
	}
	books, err := m.catalog.Search(query)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		m.printf("%s\n", m.styles.Dim.Render("No books found."))
		return nil
	}
	m.printBooks(books)
	return nil
}

func (m *Menu) list() error {
	books, err := m.catalog.List()
	if err != nil {
		return err
	}
	if len(books) == 0 {
		m.printf("%s\n", m.styles.Dim.Render("The library has no books yet."))
		return nil
	}
	m.printf("%s\n", m.styles.Title.Render("Books in the library:"))
	m.printBooks(books)
	return nil
}

func (m *Menu) updateStatus() error {
	id, err := m.promptInt("ID of the book: ")
	if err != nil {
		return err
	}
	status, err := m.prompt(fmt.Sprintf("New status (%s): ", statusChoices()))
	if err != nil {
		return err
	}
	book, err := m.catalog.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	m.printSuccess(fmt.Sprintf("Book %d status set to %s.", book.ID, book.Status))
	return nil
}

// statusChoices lists the accepted status values, e.g. "in_stock/checked_out"
func statusChoices() string {
	names := make([]string, len(domain.Statuses))
	for i, st := range domain.Statuses {
		names[i] = string(st)
	}
	return strings.Join(names, "/")
}

// prompt prints label and reads one line without its line ending.
// A final line lacking a newline is still returned. label must be a single
// line: lipgloss pads every rendered line to a common width.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", m.styles.Accent.Render(label))

	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", readError{err}
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return parseInt(s)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidInput, s)
	}
	return n, nil
}

func parseAction(s string) (action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(actionAdd) || n > int(actionExit) {
		return 0, fmt.Errorf("%w: no action %q, choose %d-%d", domain.ErrInvalidInput, s, actionAdd, actionExit)
	}
	return action(n), nil
}

// isFatal reports whether err should end the session rather than be
// printed. A store that cannot be loaded ends it; a failed save is
// printed since nothing was written.
func isFatal(err error) bool {
	return errors.Is(err, domain.ErrCorruptStore) ||
		errors.Is(err, domain.ErrStoreIO) ||
		errors.Is(err, io.EOF) ||
		isReadError(err)
}

// readError marks a failure of the input stream itself
type readError struct{ err error }

func (e readError) Error() string { return e.err.Error() }
func (e readError) Unwrap() error { return e.err }

func isReadError(err error) bool {
	var re readError
	return errors.As(err, &re)
}
