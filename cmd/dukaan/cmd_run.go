package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/app/services"
	"github.com/shashiranjanraj/dukaan/config"
	"github.com/shashiranjanraj/dukaan/internal/shell"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

// wiring bundles the repositories and services built over one filesystem.
type wiring struct {
	users    *repositories.UserRepository
	admins   *repositories.AdminRepository
	accounts *services.AccountService
	catalog  *services.CatalogService
	history  *services.HistoryService
	checkout *services.CheckoutService
}

func wire(fs afero.Fs) *wiring {
	users := repositories.NewUserRepository(textstore.New(fs, config.UserStore()))
	products := repositories.NewProductRepository(textstore.New(fs, config.ProductStore()))
	historyRepo := repositories.NewHistoryRepository(textstore.New(fs, config.HistoryStore()))
	admins := repositories.NewAdminRepository(textstore.New(fs, config.AdminStore()))

	history := services.NewHistoryService(historyRepo)
	return &wiring{
		users:    users,
		admins:   admins,
		accounts: services.NewAccountService(users),
		catalog:  services.NewCatalogService(products),
		history:  history,
		checkout: services.NewCheckoutService(users, history),
	}
}

// dukaan run — start the interactive shell.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shopping shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := wire(afero.NewOsFs())
		sh := shell.New(os.Stdin, os.Stdout,
			w.accounts, w.catalog, w.history, w.checkout, w.admins)
		return sh.Run(cmd.Context())
	},
}
