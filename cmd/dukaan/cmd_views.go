package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/internal/shell"
)

// dukaan products — print the catalog without entering the shell.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := wire(afero.NewOsFs())
		products, err := w.catalog.Products()
		if err != nil {
			return err
		}
		shell.PrintProducts(os.Stdout, products)
		return nil
	},
}

// dukaan users — print every registered account.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := wire(afero.NewOsFs())
		users, err := w.accounts.Users()
		if err != nil {
			return err
		}
		shell.PrintUsers(os.Stdout, users)
		return nil
	},
}

// dukaan history <username> — print one user's order history.
var historyCmd = &cobra.Command{
	Use:   "history <username>",
	Short: "Show a user's order history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := wire(afero.NewOsFs())
		orders, err := w.history.ByUser(args[0])
		if err != nil {
			return err
		}
		shell.PrintOrders(os.Stdout, args[0], orders)
		return nil
	},
}
