package repositories_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

func TestAdminAuthenticate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "admin_data.txt",
		[]byte("admin,admin123\nroot,toor66\n"), 0o644))
	repo := repositories.NewAdminRepository(textstore.New(fs, "admin_data.txt"))

	ok, err := repo.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Authenticate("root", "toor66")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Authenticate("admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdminAuthenticate_MissingStoreFails(t *testing.T) {
	repo := repositories.NewAdminRepository(textstore.New(afero.NewMemMapFs(), "admin_data.txt"))

	ok, err := repo.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.False(t, ok)
}
