package repositories

import "github.com/shashiranjanraj/dukaan/pkg/textstore"

// adminArity is the field count of one admin credential line:
// username,password.
const adminArity = 2

// AdminRepository reads the admin credentials store. The store is consulted
// only for admin login and is maintained by hand (or by the seeder).
type AdminRepository struct {
	store *textstore.Store
}

func NewAdminRepository(store *textstore.Store) *AdminRepository {
	return &AdminRepository{store: store}
}

// Authenticate reports whether the credentials match any stored admin line.
// A missing store means no admins exist, so authentication simply fails.
func (r *AdminRepository) Authenticate(username, password string) (bool, error) {
	lines, err := r.store.Lines()
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		fields, ok := textstore.Split(line, ",", adminArity)
		if !ok {
			continue
		}
		if fields[0] == username && fields[1] == password {
			return true, nil
		}
	}
	return false, nil
}
