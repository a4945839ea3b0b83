package seed_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/config"
	"github.com/shashiranjanraj/dukaan/database/seed"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

func TestRunAll_PopulatesEmptyStores(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, seed.RunAll(fs))

	products := repositories.NewProductRepository(textstore.New(fs, config.ProductStore()))
	catalog, err := products.All()
	require.NoError(t, err)
	assert.NotEmpty(t, catalog)
	for i, p := range catalog {
		assert.Equal(t, i+1, p.ID)
	}

	admins := repositories.NewAdminRepository(textstore.New(fs, config.AdminStore()))
	ok, err := admins.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunAll_LeavesPopulatedStoresAlone(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, config.ProductStore(), []byte("1,Pen,10,50\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, config.AdminStore(), []byte("boss,bosspass\n"), 0o644))

	require.NoError(t, seed.RunAll(fs))

	products := repositories.NewProductRepository(textstore.New(fs, config.ProductStore()))
	catalog, err := products.All()
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Pen", catalog[0].Title)

	lines, err := textstore.New(fs, config.AdminStore()).Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"boss,bosspass"}, lines)
}
