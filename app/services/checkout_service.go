package services

import (
	"errors"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
)

// ErrEmptyCart is returned when checkout starts with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrUnknownUser is returned when the cart's owner is missing from the
// user store at checkout time.
var ErrUnknownUser = errors.New("user not found")

// ErrAddressMismatch is returned when the delivery address does not equal
// the address stored on the account.
var ErrAddressMismatch = errors.New("delivery address does not match")

// CheckoutService finalises a cart: it verifies the shopper and delivery
// address, records the order in history, and hands back a fresh cart.
type CheckoutService struct {
	users   *repositories.UserRepository
	history *HistoryService
}

func NewCheckoutService(users *repositories.UserRepository, history *HistoryService) *CheckoutService {
	return &CheckoutService{users: users, history: history}
}

// Checkout places the order. The delivery address must exactly equal the
// account's stored address. On success the recorded order and an empty
// replacement cart are returned; on any failure nothing is written.
func (s *CheckoutService) Checkout(cart *models.Cart, deliveryAddress string) (models.Order, *models.Cart, error) {
	if cart.Empty() {
		return models.Order{}, cart, ErrEmptyCart
	}

	users, err := s.users.All()
	if err != nil {
		return models.Order{}, cart, err
	}
	user, ok := collection.First(users, func(u models.User) bool {
		return u.Username == cart.Username
	})
	if !ok {
		return models.Order{}, cart, ErrUnknownUser
	}
	if deliveryAddress != user.Address {
		return models.Order{}, cart, ErrAddressMismatch
	}

	order, err := s.history.Record(cart)
	if err != nil {
		return models.Order{}, cart, err
	}
	return order, models.NewCart(cart.Username), nil
}
