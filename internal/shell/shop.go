package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/services"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
)

// shopMenu loops on the logged-in shopper's menu until quit.
func (s *Shell) shopMenu(ctx context.Context, user models.User) {
	cart := models.NewCart(user.Username)

	for {
		menu.Fprintln(s.out, "1. Display products")
		menu.Fprintln(s.out, "2. Add product to cart")
		menu.Fprintln(s.out, "3. Remove product from cart")
		menu.Fprintln(s.out, "4. Display cart")
		menu.Fprintln(s.out, "5. Display history")
		menu.Fprintln(s.out, "6. Proceed to checkout")
		menu.Fprintln(s.out, "7. Quit")

		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			s.displayProducts()
		case 2:
			s.addToCart(ctx, cart)
		case 3:
			s.removeFromCart(ctx, cart)
		case 4:
			s.displayCart(cart)
		case 5:
			orders, err := s.history.ByUser(user.Username)
			if err != nil {
				failure.Fprintf(s.out, "Error: %s\n", err)
				continue
			}
			PrintOrders(s.out, user.Username, orders)
		case 6:
			cart = s.runCheckout(ctx, cart)
		case 7:
			return
		default:
			failure.Fprintln(s.out, "Invalid choice entered.")
		}
	}
}

func (s *Shell) displayProducts() {
	products, err := s.catalog.Products()
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	PrintProducts(s.out, products)
}

// addToCart picks a product by its catalog number, guards the requested
// quantity against available stock, and persists the decrement right away.
func (s *Shell) addToCart(ctx context.Context, cart *models.Cart) {
	products, err := s.catalog.Products()
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	PrintProducts(s.out, products)

	number, ok := s.promptInt("Enter the product no.: ")
	if !ok {
		return
	}
	if number < 1 || number > len(products) {
		failure.Fprintln(s.out, "Invalid product number. Please try again.")
		return
	}
	product := products[number-1]

	quantity, ok := s.promptInt("Enter product quantity: ")
	if !ok {
		return
	}
	if quantity < 1 {
		failure.Fprintln(s.out, "Invalid quantity. Please try again.")
		return
	}
	if quantity > product.Quantity {
		failure.Fprintf(s.out, "Cannot add %d %s(s) to the cart. Only %d available.\n",
			quantity, product.Title, product.Quantity)
		return
	}

	if err := s.catalog.DecrementStock(product.ID, quantity); err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	cart.Add(product, quantity)
	logger.WithCtx(ctx).Info("product added to cart",
		"product_id", product.ID, "quantity", quantity)
	success.Fprintf(s.out, "%d %s(s) added to cart.\n", quantity, product.Title)
}

func (s *Shell) removeFromCart(ctx context.Context, cart *models.Cart) {
	if cart.Empty() {
		failure.Fprintln(s.out, "Cart is empty.")
		return
	}
	for i, item := range cart.Items {
		fmt.Fprintf(s.out, "Item %d: %s\n", i+1, item.Describe())
	}

	number, ok := s.promptInt("Enter the item no.: ")
	if !ok {
		return
	}
	if number < 1 || number > len(cart.Items) {
		failure.Fprintln(s.out, "Invalid item number.")
		return
	}
	item := cart.Items[number-1]
	fmt.Fprintf(s.out, "Selected Item: %s\n", item.Describe())
	fmt.Fprintf(s.out, "Current Quantity in Cart: %d\n", item.Quantity)

	quantity, ok := s.promptInt("Enter product quantity to remove: ")
	if !ok {
		return
	}
	if quantity > item.Quantity {
		failure.Fprintf(s.out, "Error: Quantity to remove (%d) exceeds quantity in cart (%d).\n",
			quantity, item.Quantity)
		return
	}

	product := item.Product
	removed := quantity
	cart.Remove(product, quantity)
	if err := s.catalog.RestoreStock(product.ID, removed); err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
	}
	logger.WithCtx(ctx).Info("product removed from cart",
		"product_id", product.ID, "quantity", removed)
	accent.Fprintf(s.out, "%d %s(s) removed from cart.\n", removed, product.Title)
}

func (s *Shell) displayCart(cart *models.Cart) {
	for _, item := range cart.Items {
		fmt.Fprintln(s.out, item.Describe())
	}
	accent.Fprintf(s.out, "Total bill: Rs.%s\n", cart.Bill.String())
}

// runCheckout walks the confirmation flow and returns the cart to keep
// using: a fresh one after success, the same one otherwise.
func (s *Shell) runCheckout(ctx context.Context, cart *models.Cart) *models.Cart {
	if cart.Empty() {
		failure.Fprintln(s.out, "Add some products to cart first.")
		return cart
	}

	accent.Fprintln(s.out, "Proceeding to checkout...")
	s.displayCart(cart)
	fmt.Fprintf(s.out, "Account holder: %s\n", cart.Username)

	address, ok := s.promptLine("Enter your delivery address: ")
	if !ok {
		return cart
	}

	confirmation, ok := s.promptLine("Press 'y' or 'Y' to confirm: ")
	if !ok {
		return cart
	}
	if confirmation != "y" && confirmation != "Y" {
		failure.Fprintln(s.out, "Checkout canceled.")
		return cart
	}

	order, fresh, err := s.checkout.Checkout(cart, address)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressMismatch):
			failure.Fprintln(s.out, "Delivery address does not match. Please enter the correct address.")
		case errors.Is(err, services.ErrUnknownUser):
			failure.Fprintln(s.out, "User not found. Cannot proceed with checkout.")
		default:
			failure.Fprintf(s.out, "Error: %s\n", err)
		}
		return cart
	}

	logger.WithCtx(ctx).Info("order recorded",
		"order_number", order.Number, "amount", order.Amount.String())
	accent.Fprintln(s.out, "Order will be delivered in 2 days.")
	success.Fprintln(s.out, "Checkout successful. Thank you :)")
	return fresh
}
