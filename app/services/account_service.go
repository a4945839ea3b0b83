// Package services holds the application's business rules: account
// management, catalog administration, order history, and checkout.
package services

import (
	"errors"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
	"github.com/shashiranjanraj/dukaan/pkg/validate"
)

// ErrInvalidCredentials is returned when no user matches both username and
// password exactly.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUsernameTaken is returned when a registration reuses an existing
// username (case-sensitive exact match).
var ErrUsernameTaken = errors.New("username already taken")

type usernameForm struct {
	Username string `json:"username" validate:"required,alpha_num,not_digits,between=4,8"`
}

type passwordForm struct {
	Password string `json:"password" validate:"required,min=6"`
}

// AccountService validates and creates user accounts and authenticates
// credentials against the user store.
//
// Passwords are handled in plaintext end to end; that is the store's
// contract, not an oversight worth copying elsewhere.
type AccountService struct {
	users *repositories.UserRepository
}

func NewAccountService(users *repositories.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// ValidateUsername checks shape (4–8 characters, alphanumeric, not all
// digits) and uniqueness among the known users.
func (s *AccountService) ValidateUsername(name string) error {
	if errs := validate.Struct(usernameForm{Username: name}); validate.HasErrors(errs) {
		return errors.New(errs["username"])
	}

	users, err := s.users.All()
	if err != nil {
		return err
	}
	if collection.Contains(users, func(u models.User) bool { return u.Username == name }) {
		return ErrUsernameTaken
	}
	return nil
}

// ValidatePassword checks the minimum length of 6 characters. No other
// constraint applies.
func (s *AccountService) ValidatePassword(pw string) error {
	if errs := validate.Struct(passwordForm{Password: pw}); validate.HasErrors(errs) {
		return errors.New(errs["password"])
	}
	return nil
}

// Register creates and persists a new account. Any validation failure
// aborts before anything is written. On success the entire updated user
// set is rewritten to the store.
func (s *AccountService) Register(username, password, firstName, lastName, address string) (models.User, error) {
	if err := s.ValidateUsername(username); err != nil {
		return models.User{}, err
	}
	if err := s.ValidatePassword(password); err != nil {
		return models.User{}, err
	}

	users, err := s.users.All()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
	}
	if err := s.users.SaveAll(append(users, user)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate scans the user set for an exact match on both fields.
func (s *AccountService) Authenticate(username, password string) (models.User, error) {
	users, err := s.users.All()
	if err != nil {
		return models.User{}, err
	}
	user, ok := collection.First(users, func(u models.User) bool {
		return u.Username == username && u.Password == password
	})
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Users lists every registered account, for the admin panel.
func (s *AccountService) Users() ([]models.User, error) {
	return s.users.All()
}
