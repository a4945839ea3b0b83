package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. IDs are positive, assigned sequentially on
// creation and kept dense: deleting a product renumbers the survivors to
// 1..N in their remaining order.
type Product struct {
	ID       int
	Title    string
	Price    decimal.Decimal
	Quantity int
}

// String renders the product for plain console output.
func (p Product) String() string {
	return fmt.Sprintf("Product: %s, Price: Rs%s", p.Title, p.Price.StringFixed(2))
}
