package repositories

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

// historyArity is the field count of one history record:
// username````number````time````amount````item,item,item.
const historyArity = 5

// HistoryRepository handles the append-only order history store.
type HistoryRepository struct {
	store *textstore.Store
}

func NewHistoryRepository(store *textstore.Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Append writes one order record. History is append-only; records are
// never rewritten.
func (r *HistoryRepository) Append(order models.Order) error {
	line := textstore.Join([]string{
		order.Username,
		order.Number,
		order.PlacedAt,
		order.Amount.String(),
		strings.Join(order.Items, ","),
	}, textstore.Delimiter)
	return r.store.Append(line)
}

// ByUser returns the user's orders in file order. A line matches when it
// starts with the username string. No matches — including a missing store —
// yields an empty slice, not an error.
func (r *HistoryRepository) ByUser(username string) ([]models.Order, error) {
	lines, err := r.store.Lines()
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	for _, line := range lines {
		if !strings.HasPrefix(line, username) {
			continue
		}
		fields, ok := textstore.Split(line, textstore.Delimiter, historyArity)
		if !ok {
			continue
		}
		amount, err := decimal.NewFromString(fields[3])
		if err != nil {
			continue
		}
		orders = append(orders, models.Order{
			Username: fields[0],
			Number:   fields[1],
			PlacedAt: fields[2],
			Amount:   amount,
			Items:    strings.Split(fields[4], ","),
		})
	}
	return orders, nil
}
