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

func newProductRepo(t *testing.T) (*repositories.ProductRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return repositories.NewProductRepository(textstore.New(fs, "product_list.txt")), fs
}

func TestProductAppend_AssignsSequentialIDs(t *testing.T) {
	repo, _ := newProductRepo(t)

	added, err := repo.Append([]models.Product{
		{Title: "Pen", Price: decimal.NewFromInt(10), Quantity: 50},
		{Title: "Book", Price: decimal.NewFromInt(200), Quantity: 5},
		{Title: "Bag", Price: decimal.NewFromInt(950), Quantity: 8},
	})
	require.NoError(t, err)

	require.Len(t, added, 3)
	for i, p := range added {
		assert.Equal(t, i+1, p.ID)
	}

	stored, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, added, stored)
}

func TestProductAppend_ContinuesPastHighestID(t *testing.T) {
	repo, fs := newProductRepo(t)

	// A hand-edited store with a gap: ids 1 and 5.
	require.NoError(t, afero.WriteFile(fs, "product_list.txt",
		[]byte("1,Pen,10,50\n5,Book,200,5\n"), 0o644))

	added, err := repo.Append([]models.Product{
		{Title: "Bag", Price: decimal.NewFromInt(950), Quantity: 8},
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, 6, added[0].ID)
}

func TestProductAll_RoundTrip(t *testing.T) {
	repo, _ := newProductRepo(t)

	want := []models.Product{
		{ID: 1, Title: "Pen", Price: decimal.RequireFromString("10.5"), Quantity: 50},
		{ID: 2, Title: "Book", Price: decimal.NewFromInt(200), Quantity: 5},
	}
	require.NoError(t, repo.Overwrite(want))

	got, err := repo.All()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.True(t, want[i].Price.Equal(got[i].Price))
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
	}
}

func TestProductAll_SkipsMalformedLines(t *testing.T) {
	repo, fs := newProductRepo(t)

	raw := "1,Pen,10,50\n" +
		"not,enough\n" + // wrong arity
		"x,Book,200,5\n" + // non-integer id
		"3,Bag,abc,8\n" + // bad price
		"4,Mug,60,many\n" + // bad quantity
		"5,Lamp,300,12\n"
	require.NoError(t, afero.WriteFile(fs, "product_list.txt", []byte(raw), 0o644))

	products, err := repo.All()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pen", products[0].Title)
	assert.Equal(t, "Lamp", products[1].Title)
}

func TestProductAll_MissingStoreIsEmpty(t *testing.T) {
	repo, _ := newProductRepo(t)

	products, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, products)
}
