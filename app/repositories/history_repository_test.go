package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

func newHistoryRepo(t *testing.T) *repositories.HistoryRepository {
	t.Helper()
	return repositories.NewHistoryRepository(textstore.New(afero.NewMemMapFs(), "history.txt"))
}

func order(username, number string) models.Order {
	return models.Order{
		Username: username,
		Number:   number,
		PlacedAt: "2026-08-28 10:30:00",
		Amount:   decimal.NewFromInt(220),
		Items:    []string{"2 x Pen (Rs. 10)", "1 x Book (Rs. 200)"},
	}
}

func TestHistoryByUser_MissingStoreIsEmpty(t *testing.T) {
	repo := newHistoryRepo(t)

	orders, err := repo.ByUser("riya1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestHistoryByUser_NoMatchIsEmpty(t *testing.T) {
	repo := newHistoryRepo(t)
	require.NoError(t, repo.Append(order("dev42", "1724800000")))

	orders, err := repo.ByUser("riya1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestHistoryAppendThenByUser(t *testing.T) {
	repo := newHistoryRepo(t)

	want := order("riya1", "1724800000")
	require.NoError(t, repo.Append(want))
	require.NoError(t, repo.Append(order("dev42", "1724800100")))
	require.NoError(t, repo.Append(order("riya1", "1724800200")))

	orders, err := repo.ByUser("riya1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, want.Number, orders[0].Number)
	assert.Equal(t, want.PlacedAt, orders[0].PlacedAt)
	assert.True(t, want.Amount.Equal(orders[0].Amount))
	assert.Equal(t, want.Items, orders[0].Items)
	assert.Equal(t, "1724800200", orders[1].Number)
}

func TestHistoryByUser_MatchesLinePrefix(t *testing.T) {
	// The query matches lines starting with the username string, so a
	// username that prefixes another over-matches. Documented behavior.
	repo := newHistoryRepo(t)
	require.NoError(t, repo.Append(order("anna", "1724800000")))

	orders, err := repo.ByUser("ann")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
