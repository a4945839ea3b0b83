package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a shopping cart: a product snapshot plus the
// quantity the shopper wants.
type CartItem struct {
	Product  Product
	Quantity int
}

// Describe renders the item the way it appears in cart listings and in the
// persisted order history, e.g. "2 x Pen (Rs. 10)".
func (ci CartItem) Describe() string {
	return fmt.Sprintf("%d x %s (Rs. %s)", ci.Quantity, ci.Product.Title, ci.Product.Price.String())
}

// Cart collects the items one shopper intends to buy, with a running bill.
// It lives in memory only; checkout turns it into a history record.
//
// Invariant: Bill == Σ item.Product.Price × item.Quantity.
type Cart struct {
	Username string
	Items    []*CartItem
	Bill     decimal.Decimal
}

// NewCart returns an empty cart for username.
func NewCart(username string) *Cart {
	return &Cart{Username: username, Bill: decimal.Zero}
}

// Add puts quantity units of p into the cart. Adding a product already in
// the cart merges into the existing item instead of creating a duplicate.
func (c *Cart) Add(p Product, quantity int) {
	cost := p.Price.Mul(decimal.NewFromInt(int64(quantity)))
	for _, item := range c.Items {
		if item.Product.ID == p.ID {
			item.Quantity += quantity
			c.Bill = c.Bill.Add(cost)
			return
		}
	}
	c.Items = append(c.Items, &CartItem{Product: p, Quantity: quantity})
	c.Bill = c.Bill.Add(cost)
}

// Remove takes quantity units of p out of the cart. Removing at least the
// item's full quantity drops the item. Unknown products are ignored.
func (c *Cart) Remove(p Product, quantity int) {
	for i, item := range c.Items {
		if item.Product.ID != p.ID {
			continue
		}
		if item.Quantity > quantity {
			item.Quantity -= quantity
			c.Bill = c.Bill.Sub(p.Price.Mul(decimal.NewFromInt(int64(quantity))))
		} else {
			c.Bill = c.Bill.Sub(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Empty reports whether the cart holds no items.
func (c *Cart) Empty() bool { return len(c.Items) == 0 }
