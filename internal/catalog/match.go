package catalog

import (
	"strconv"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
	"golang.org/x/text/cases"
)

// matcher holds a query prepared for repeated matching.
// Case folding handles non-ASCII titles ("МАСТЕР" matches "мастер").
type matcher struct {
	raw    string
	folded string
	fold   cases.Caser
}

func newMatcher(query string) *matcher {
	fold := cases.Fold()
	return &matcher{
		raw:    query,
		folded: fold.String(query),
		fold:   fold,
	}
}

// Match reports whether b matches: substring of title or author after case
// folding, or exact equality with the decimal year.
func (m *matcher) Match(b domain.Book) bool {
	if strings.Contains(m.fold.String(b.Title), m.folded) {
		return true
	}
	if strings.Contains(m.fold.String(b.Author), m.folded) {
		return true
	}
	return m.raw == strconv.Itoa(b.Year)
}
