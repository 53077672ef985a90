package catalog

import (
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) *Service {
	t.Helper()
	s, _ := newTestService(t)
	mustAdd(t, s, "Dune", "Frank Herbert", 1965)
	mustAdd(t, s, "Foundation", "Isaac Asimov", 1951)
	mustAdd(t, s, "Мастер и Маргарита", "Михаил Булгаков", 1967)
	mustAdd(t, s, "Children of Dune", "Frank Herbert", 1976)
	mustAdd(t, s, "I, Robot", "Isaac Asimov", 1950)
	return s
}

func ids(books []domain.Book) []int {
	out := make([]int, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	s := seedCatalog(t)

	cases := []struct {
		query string
		want  []int
	}{
		{"dune", []int{1, 4}},
		{"DUNE", []int{1, 4}},
		{"herbert", []int{1, 4}},
		{"asimov", []int{2, 5}},
		{"мастер", []int{3}},
		{"БУЛГАКОВ", []int{3}},
		{"1951", []int{2}},
		{"195", []int{}},
		{" 1951", []int{}},
		{"tolkien", []int{}},
		{"", []int{1, 2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			results, err := s.Search(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(results))
		})
	}
}

func TestSearchYearReturnsExactlyThatYear(t *testing.T) {
	s := seedCatalog(t)
	mustAdd(t, s, "God Emperor of Dune", "Frank Herbert", 1965)

	results, err := s.Search("1965")
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, b := range results {
		assert.Equal(t, 1965, b.Year)
	}
}

func TestMatcherFoldsCase(t *testing.T) {
	m := newMatcher("ёжик")
	assert.True(t, m.Match(domain.Book{Title: "ЁЖИК В ТУМАНЕ"}))
	assert.True(t, m.Match(domain.Book{Title: "x", Author: "Ёжик"}))
	assert.False(t, m.Match(domain.Book{Title: "Ежик", Year: 2000}))
}
