// Package seed writes demo data into the flat-file stores so a fresh
// checkout of the app has something to sell and an admin who can log in.
//
// Run via CLI: dukaan seed
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/config"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

type seederEntry struct {
	name string
	fn   func(fs afero.Fs) error
}

var entries = []seederEntry{
	{"products", seedProducts},
	{"admins", seedAdmins},
}

// RunAll executes every seeder in order, stopping on the first error.
// Each seeder is idempotent: an already-populated store is left alone.
func RunAll(fs afero.Fs) error {
	for _, e := range entries {
		fmt.Printf("  • Running seeder: %s … ", e.name)
		if err := e.fn(fs); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}

func seedProducts(fs afero.Fs) error {
	store := textstore.New(fs, config.ProductStore())
	repo := repositories.NewProductRepository(store)

	existing, err := repo.All()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = repo.Append([]models.Product{
		{Title: "Pen", Price: decimal.NewFromInt(10), Quantity: 50},
		{Title: "Notebook", Price: decimal.NewFromInt(60), Quantity: 30},
		{Title: "Backpack", Price: decimal.NewFromInt(950), Quantity: 8},
	})
	return err
}

func seedAdmins(fs afero.Fs) error {
	store := textstore.New(fs, config.AdminStore())

	existing, err := store.Lines()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	return store.Append("admin,admin123")
}
