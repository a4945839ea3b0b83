package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/dukaan/app/models"
)

func pen() models.Product {
	return models.Product{ID: 1, Title: "Pen", Price: decimal.NewFromInt(10), Quantity: 50}
}

func book() models.Product {
	return models.Product{ID: 2, Title: "Book", Price: decimal.NewFromInt(200), Quantity: 5}
}

// bill recomputes the invariant from scratch.
func bill(c *models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func TestCart_AddMergesSameProduct(t *testing.T) {
	cart := models.NewCart("riya1")

	cart.Add(pen(), 2)
	cart.Add(pen(), 3)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.Bill.Equal(decimal.NewFromInt(50)), "bill = %s", cart.Bill)
}

func TestCart_BillInvariant(t *testing.T) {
	cart := models.NewCart("riya1")

	cart.Add(pen(), 2)
	cart.Add(book(), 1)
	cart.Add(pen(), 1)
	cart.Remove(book(), 1)
	cart.Remove(pen(), 2)

	assert.True(t, cart.Bill.Equal(bill(cart)), "bill %s != recomputed %s", cart.Bill, bill(cart))
}

func TestCart_RemoveDropsItemAtZero(t *testing.T) {
	cart := models.NewCart("riya1")

	cart.Add(pen(), 2)
	cart.Remove(pen(), 2)

	assert.True(t, cart.Empty())
	assert.True(t, cart.Bill.IsZero(), "bill = %s", cart.Bill)
}

func TestCart_RemoveMoreThanHeldDropsItem(t *testing.T) {
	cart := models.NewCart("riya1")

	cart.Add(pen(), 2)
	cart.Remove(pen(), 5)

	assert.True(t, cart.Empty())
	assert.True(t, cart.Bill.IsZero(), "bill = %s", cart.Bill)
}

func TestCart_RemoveUnknownProductIsNoop(t *testing.T) {
	cart := models.NewCart("riya1")

	cart.Add(pen(), 2)
	cart.Remove(book(), 1)

	assert.Len(t, cart.Items, 1)
	assert.True(t, cart.Bill.Equal(decimal.NewFromInt(20)), "bill = %s", cart.Bill)
}

func TestCartItem_Describe(t *testing.T) {
	item := models.CartItem{Product: pen(), Quantity: 2}
	assert.Equal(t, "2 x Pen (Rs. 10)", item.Describe())
}
