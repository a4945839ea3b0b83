package models

import "fmt"

// User is a registered shopper. The username is the identity key.
//
// Passwords are stored and compared in plaintext, faithful to the classic
// store format. Known security gap; do not reuse this store for anything
// that matters.
type User struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
}

// String renders the user without the password.
func (u User) String() string {
	return fmt.Sprintf("Username: %s, Name: %s %s, Address: %s",
		u.Username, u.FirstName, u.LastName, u.Address)
}
