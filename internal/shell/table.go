package shell

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shashiranjanraj/dukaan/app/models"
)

// PrintProducts writes the catalog as an aligned table.
func PrintProducts(out io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No products available.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NO.\tPRODUCT\tPRICE\tQUANTITY")
	fmt.Fprintln(w, "---\t-------\t-----\t--------")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Title, p.Price.StringFixed(2), p.Quantity)
	}
	w.Flush()
}

// PrintUsers writes the registered users as an aligned table, passwords
// omitted.
func PrintUsers(out io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "No users available.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tFIRST NAME\tLAST NAME\tADDRESS")
	fmt.Fprintln(w, "--------\t----------\t---------\t-------")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Username, u.FirstName, u.LastName, u.Address)
	}
	w.Flush()
}

// PrintOrders writes one user's order history.
func PrintOrders(out io.Writer, username string, orders []models.Order) {
	if len(orders) == 0 {
		failure.Fprintf(out, "No order history available for user '%s'.\n", username)
		return
	}

	fmt.Fprintf(out, "Order history for user '%s':\n", username)
	for i, order := range orders {
		fmt.Fprintf(out, "  Order %d:\n", i+1)
		fmt.Fprintf(out, "    Order Number: %s\n", order.Number)
		fmt.Fprintf(out, "    Order Time: %s\n", order.PlacedAt)
		fmt.Fprintf(out, "    Order Amount: Rs.%s\n", order.Amount.String())
		fmt.Fprintln(out, "    Items Purchased:")
		for _, item := range order.Items {
			fmt.Fprintf(out, "      - %s\n", item)
		}
		fmt.Fprintln(out)
	}
}
