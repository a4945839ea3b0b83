package shell

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/dukaan/app/services"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
)

// adminMenu loops on the admin panel until logout.
func (s *Shell) adminMenu(ctx context.Context) {
	for {
		headline.Fprintln(s.out, "ADMIN PANEL:")
		menu.Fprintln(s.out, "1. Add product")
		menu.Fprintln(s.out, "2. Edit product")
		menu.Fprintln(s.out, "3. Delete product")
		menu.Fprintln(s.out, "4. View users")
		menu.Fprintln(s.out, "5. View orders")
		menu.Fprintln(s.out, "6. Display products")
		menu.Fprintln(s.out, "7. Logout")

		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			s.addProduct(ctx)
		case 2:
			s.editProduct(ctx)
		case 3:
			s.deleteProduct(ctx)
		case 4:
			s.viewUsers()
		case 5:
			s.viewOrders()
		case 6:
			s.displayProducts()
		case 7:
			return
		default:
			failure.Fprintln(s.out, "Invalid choice entered.")
		}
	}
}

// promptProductFields reads title, price, and quantity for add/edit.
func (s *Shell) promptProductFields(titleMsg, priceMsg, quantityMsg string) (string, decimal.Decimal, int, bool) {
	title, ok := s.promptLine(titleMsg)
	if !ok {
		return "", decimal.Zero, 0, false
	}
	for {
		raw, ok := s.promptLine(priceMsg)
		if !ok {
			return "", decimal.Zero, 0, false
		}
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			failure.Fprintln(s.out, "Invalid price. Please try again.")
			continue
		}
		quantity, ok := s.promptInt(quantityMsg)
		if !ok {
			return "", decimal.Zero, 0, false
		}
		if quantity < 0 {
			failure.Fprintln(s.out, "Invalid quantity. Please try again.")
			continue
		}
		return title, price, quantity, true
	}
}

func (s *Shell) addProduct(ctx context.Context) {
	title, price, quantity, ok := s.promptProductFields(
		"Enter product title: ", "Enter product price: ", "Enter product quantity: ")
	if !ok {
		return
	}

	product, err := s.catalog.Add(title, price, quantity)
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	logger.WithCtx(ctx).Info("product added", "product_id", product.ID, "title", product.Title)
	success.Fprintf(s.out, "Product '%s' added successfully.\n", product.Title)
}

func (s *Shell) editProduct(ctx context.Context) {
	s.displayProducts()

	index, ok := s.promptInt("Enter the product number to edit: ")
	if !ok {
		return
	}
	title, price, quantity, ok := s.promptProductFields(
		"Enter new product name: ", "Enter new product price: ", "Enter new product quantity: ")
	if !ok {
		return
	}

	product, err := s.catalog.Edit(index, title, price, quantity)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			failure.Fprintln(s.out, "Invalid product index.")
		} else {
			failure.Fprintf(s.out, "Error: %s\n", err)
		}
		return
	}
	logger.WithCtx(ctx).Info("product edited", "product_id", product.ID)
	success.Fprintf(s.out, "Product %d updated successfully.\n", index)
}

func (s *Shell) deleteProduct(ctx context.Context) {
	s.displayProducts()

	number, ok := s.promptInt("Enter the product number to delete: ")
	if !ok {
		return
	}

	deleted, err := s.catalog.Delete(strconv.Itoa(number))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			failure.Fprintln(s.out, "Invalid product number.")
		} else {
			failure.Fprintf(s.out, "Error: %s\n", err)
		}
		return
	}
	logger.WithCtx(ctx).Info("product deleted", "title", deleted.Title)
	success.Fprintf(s.out, "Product '%s' deleted successfully.\n", deleted.Title)
}

func (s *Shell) viewUsers() {
	users, err := s.accounts.Users()
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	PrintUsers(s.out, users)
}

// viewOrders prints every user's order history, or a note when a user has
// none.
func (s *Shell) viewOrders() {
	users, err := s.accounts.Users()
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	if len(users) == 0 {
		failure.Fprintln(s.out, "No users available.")
		return
	}

	for _, user := range users {
		orders, err := s.history.ByUser(user.Username)
		if err != nil {
			failure.Fprintf(s.out, "Error: %s\n", err)
			continue
		}
		PrintOrders(s.out, user.Username, orders)
	}
	headline.Fprintln(s.out, "All orders displayed.")
}
