package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("in_stock")
	require.NoError(t, err)
	assert.Equal(t, StatusInStock, st)

	st, err = ParseStatus(" checked_out\n")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, st)

	for _, bad := range []string{"", "lost", "IN_STOCK", "выдана"} {
		_, err := ParseStatus(bad)
		assert.ErrorIs(t, err, ErrInvalidStatus, bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestStatusToggle(t *testing.T) {
	assert.Equal(t, StatusCheckedOut, StatusInStock.Toggle())
	assert.Equal(t, StatusInStock, StatusCheckedOut.Toggle())
}

func TestStatusUnmarshalRejectsUnknown(t *testing.T) {
	var st Status
	require.NoError(t, json.Unmarshal([]byte(`"checked_out"`), &st))
	assert.Equal(t, StatusCheckedOut, st)

	assert.Error(t, json.Unmarshal([]byte(`"borrowed"`), &st))
	assert.Error(t, json.Unmarshal([]byte(`1`), &st))
}

func TestNewBookStartsInStock(t *testing.T) {
	b := NewBook(7, "Dune", "Herbert", 1965)
	assert.Equal(t, 7, b.ID)
	assert.Equal(t, StatusInStock, b.Status)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 1, NextID([]Book{}))
	assert.Equal(t, 8, NextID([]Book{{ID: 3}, {ID: 7}, {ID: 2}}))
}

func TestIndexOf(t *testing.T) {
	books := []Book{{ID: 3}, {ID: 7}}
	assert.Equal(t, 1, IndexOf(books, 7))
	assert.Equal(t, -1, IndexOf(books, 4))
}
