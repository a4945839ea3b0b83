// Package repositories maps domain entities onto their flat-file stores.
//
// Every repository shares the same failure semantics: a missing backing
// file reads as an empty record set, malformed lines are skipped during
// decode, and write failures surface as wrapped errors without touching
// the caller's in-memory state.
package repositories

import (
	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

// userArity is the field count of one user record:
// username````password````first````last````address.
const userArity = 5

// UserRepository handles flat-file operations for User.
type UserRepository struct {
	store *textstore.Store
}

func NewUserRepository(store *textstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// All returns every well-formed user record in file order.
func (r *UserRepository) All() ([]models.User, error) {
	lines, err := r.store.Lines()
	if err != nil {
		return nil, err
	}

	var users []models.User
	for _, line := range lines {
		fields, ok := textstore.Split(line, textstore.Delimiter, userArity)
		if !ok {
			continue
		}
		users = append(users, models.User{
			Username:  fields[0],
			Password:  fields[1],
			FirstName: fields[2],
			LastName:  fields[3],
			Address:   fields[4],
		})
	}
	return users, nil
}

// SaveAll overwrites the store with the full user set. This is the only
// persistence path for users; there is no incremental append.
func (r *UserRepository) SaveAll(users []models.User) error {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, textstore.Join([]string{
			u.Username, u.Password, u.FirstName, u.LastName, u.Address,
		}, textstore.Delimiter))
	}
	return r.store.Overwrite(lines)
}
