package repositories_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

func newUserRepo(t *testing.T) (*repositories.UserRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return repositories.NewUserRepository(textstore.New(fs, "user_data.txt")), fs
}

func TestUserAll_MissingStoreIsEmpty(t *testing.T) {
	repo, _ := newUserRepo(t)

	users, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserSaveAllRoundTrip(t *testing.T) {
	repo, _ := newUserRepo(t)

	want := []models.User{
		{Username: "riya1", Password: "secret99", FirstName: "Riya", LastName: "Sharma", Address: "12 Lake Road"},
		{Username: "dev42", Password: "hunter22", FirstName: "Dev", LastName: "Patel", Address: "7 Hill Street"},
	}
	require.NoError(t, repo.SaveAll(want))

	got, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserAll_SkipsMalformedLines(t *testing.T) {
	repo, fs := newUserRepo(t)

	good := textstore.Join([]string{"riya1", "secret99", "Riya", "Sharma", "12 Lake Road"}, textstore.Delimiter)
	bad := textstore.Join([]string{"broken", "record"}, textstore.Delimiter)
	require.NoError(t, afero.WriteFile(fs, "user_data.txt", []byte(bad+"\n"+good+"\n"), 0o644))

	users, err := repo.All()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "riya1", users[0].Username)
}
