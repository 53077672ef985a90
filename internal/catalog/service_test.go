package catalog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	ms := store.NewMemoryStore(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(ms, logger), ms
}

func mustAdd(t *testing.T, s *Service, title, author string, year int) domain.Book {
	t.Helper()
	b, err := s.Add(title, author, year)
	require.NoError(t, err)
	return b
}

func TestScenario(t *testing.T) {
	s, _ := newTestService(t)

	dune := mustAdd(t, s, "Dune", "Herbert", 1965)
	assert.Equal(t, 1, dune.ID)
	assert.Equal(t, domain.StatusInStock, dune.Status)

	foundation := mustAdd(t, s, "Foundation", "Asimov", 1951)
	assert.Equal(t, 2, foundation.ID)

	require.NoError(t, s.Delete(1))
	books, err := s.List()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 2, books[0].ID)

	updated, err := s.UpdateStatus(2, "checked_out")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, updated.Status)

	got, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, got.Status)
	assert.Equal(t, "Foundation", got.Title)

	results, err := s.Search("asimov")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ID)
}

func TestAddIDsStrictlyIncrease(t *testing.T) {
	s, _ := newTestService(t)

	prev := 0
	seen := map[int]bool{}
	for i := 0; i < 20; i++ {
		b := mustAdd(t, s, "Title", "Author", 2000+i)
		assert.Greater(t, b.ID, prev)
		assert.False(t, seen[b.ID])
		seen[b.ID] = true
		prev = b.ID

		// Interleave deletes of older records
		if i%3 == 2 {
			require.NoError(t, s.Delete(b.ID-1))
		}
	}
}

func TestAddContinuesAfterHighestID(t *testing.T) {
	ms := store.NewMemoryStore([]byte(`[{"id": 41, "title": "a", "author": "b", "year": 1, "status": "in_stock"}]`))
	s := NewService(ms, nil)

	b := mustAdd(t, s, "Next", "Author", 2020)
	assert.Equal(t, 42, b.ID)
}

func TestAddTrimsAndRejectsEmpty(t *testing.T) {
	s, ms := newTestService(t)

	b := mustAdd(t, s, "  Solaris ", "\tLem", 1961)
	assert.Equal(t, "Solaris", b.Title)
	assert.Equal(t, "Lem", b.Author)

	_, err := s.Add("  ", "Lem", 1961)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.Add("Solaris", "", 1961)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, ms.Writes())
}

func TestAddAllowsAnyYear(t *testing.T) {
	s, _ := newTestService(t)

	b := mustAdd(t, s, "Epic of Gilgamesh", "Unknown", -1800)
	assert.Equal(t, -1800, b.Year)
}

func TestDeleteMissingLeavesStoreUnchanged(t *testing.T) {
	s, ms := newTestService(t)
	mustAdd(t, s, "Dune", "Herbert", 1965)
	before := ms.Bytes()
	writes := ms.Writes()

	err := s.Delete(99)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
	assert.Equal(t, before, ms.Bytes())
	assert.Equal(t, writes, ms.Writes())
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	s, ms := newTestService(t)
	mustAdd(t, s, "Dune", "Herbert", 1965)
	before := ms.Bytes()

	for _, bad := range []string{"lost", "", "в наличии", "Checked_Out"} {
		_, err := s.UpdateStatus(1, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus, bad)
	}

	_, err := s.UpdateStatus(99, "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	assert.Equal(t, before, ms.Bytes())
	assert.Equal(t, 1, ms.Writes())
}

func TestUpdateStatusMissingID(t *testing.T) {
	s, ms := newTestService(t)
	mustAdd(t, s, "Dune", "Herbert", 1965)

	_, err := s.UpdateStatus(5, "checked_out")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
	assert.Equal(t, 1, ms.Writes())
}

func TestUpdateStatusBothDirections(t *testing.T) {
	s, _ := newTestService(t)
	mustAdd(t, s, "Dune", "Herbert", 1965)

	b, err := s.UpdateStatus(1, "checked_out")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, b.Status)

	b, err = s.UpdateStatus(1, "in_stock")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInStock, b.Status)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, 1965, b.Year)
}

func TestListEmptyStore(t *testing.T) {
	s, _ := newTestService(t)

	books, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestGetMissing(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Get(1)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestOperationsSurfaceCorruptStore(t *testing.T) {
	ms := store.NewMemoryStore([]byte("[{"))
	s := NewService(ms, nil)

	_, err := s.List()
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	_, err = s.Add("a", "b", 1)
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	err = s.Delete(1)
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	_, err = s.Search("a")
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	_, err = s.UpdateStatus(1, "in_stock")
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	assert.Equal(t, 0, ms.Writes())
}

func TestUnreadableStoreIsStoreIO(t *testing.T) {
	// A directory where the file should be cannot be read
	s := NewService(store.NewJSONStore(t.TempDir()), nil)

	_, err := s.List()
	assert.ErrorIs(t, err, domain.ErrStoreIO)
	assert.NotErrorIs(t, err, domain.ErrCorruptStore)

	_, err = s.Add("Dune", "Herbert", 1965)
	assert.ErrorIs(t, err, domain.ErrStoreIO)
}

func TestCorruptStoreIsNotStoreIO(t *testing.T) {
	s := NewService(store.NewMemoryStore([]byte("[{")), nil)

	_, err := s.List()
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	assert.NotErrorIs(t, err, domain.ErrStoreIO)
}
