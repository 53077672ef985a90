package menu

import (
	"fmt"
	"strconv"

	"github.com/mmcdole/shelf/internal/domain"
)

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) printMenu() {
	m.printf("\n%s\n", m.styles.Title.Render("Available actions:"))
	for _, a := range actionLabels {
		m.printf("%s %s\n", m.styles.Accent.Render(strconv.Itoa(int(a.action))+"."), a.label)
	}
}

func (m *Menu) printBooks(books []domain.Book) {
	for _, b := range books {
		m.printBook(b)
	}
}

func (m *Menu) printBook(b domain.Book) {
	field := func(name, value string) {
		m.printf("\t%s %s\n", m.styles.Label.Render(fmt.Sprintf("%-8s", name+":")), value)
	}
	field("ID", strconv.Itoa(b.ID))
	field("Title", b.Title)
	field("Author", b.Author)
	field("Year", strconv.Itoa(b.Year))
	field("Status", string(b.Status))
	m.printf("\n")
}

func (m *Menu) printSuccess(msg string) {
	m.printf("%s\n", m.styles.Success.Render(msg))
}

func (m *Menu) printError(err error) {
	m.printf("%s\n", m.styles.Error.Render("Error: "+err.Error()))
}
