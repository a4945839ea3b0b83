package services

import (
	"strconv"
	"time"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
)

const orderTimeLayout = "2006-01-02 15:04:05"

// HistoryService records completed orders and answers per-user history
// queries.
type HistoryService struct {
	history *repositories.HistoryRepository

	now func() time.Time // swapped in tests
}

func NewHistoryService(history *repositories.HistoryRepository) *HistoryService {
	return &HistoryService{history: history, now: time.Now}
}

// Record turns the cart into an order history entry and appends it. The
// order number is derived from the current unix time and treated as opaque
// from then on.
func (s *HistoryService) Record(cart *models.Cart) (models.Order, error) {
	now := s.now()
	order := models.Order{
		Username: cart.Username,
		Number:   strconv.FormatInt(now.Unix(), 10),
		PlacedAt: now.Format(orderTimeLayout),
		Amount:   cart.Bill,
		Items: collection.Map(cart.Items, func(item *models.CartItem) string {
			return item.Describe()
		}),
	}
	if err := s.history.Append(order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ByUser returns the user's orders in file order. No history — or no
// history store at all — is an empty slice, never an error.
func (s *HistoryService) ByUser(username string) ([]models.Order, error) {
	return s.history.ByUser(username)
}
