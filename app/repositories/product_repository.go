package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/textstore"
)

// productArity is the field count of one product record:
// id,title,price,quantity.
const productArity = 4

// ProductRepository handles flat-file operations for Product. Product
// records use a comma-based encoding, unlike the other stores.
type ProductRepository struct {
	store *textstore.Store
}

func NewProductRepository(store *textstore.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// All returns every well-formed product record in file order. Lines with
// the wrong field count or unparseable numeric fields are skipped.
func (r *ProductRepository) All() ([]models.Product, error) {
	lines, err := r.store.Lines()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	for _, line := range lines {
		p, ok := decodeProduct(line)
		if !ok {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Append assigns sequential IDs to the new products in input order,
// starting one past the highest existing ID, appends their records, and
// returns the products with IDs filled in.
func (r *ProductRepository) Append(newProducts []models.Product) ([]models.Product, error) {
	existing, err := r.All()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, p := range existing {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	added := make([]models.Product, 0, len(newProducts))
	for _, p := range newProducts {
		maxID++
		p.ID = maxID
		if err := r.store.Append(encodeProduct(p)); err != nil {
			return added, err
		}
		added = append(added, p)
	}
	return added, nil
}

// Overwrite replaces the whole store with the given ordered product set.
// Used after every edit or delete, including renumbered IDs.
func (r *ProductRepository) Overwrite(products []models.Product) error {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, encodeProduct(p))
	}
	return r.store.Overwrite(lines)
}

func encodeProduct(p models.Product) string {
	return fmt.Sprintf("%d,%s,%s,%d", p.ID, p.Title, p.Price.String(), p.Quantity)
}

func decodeProduct(line string) (models.Product, bool) {
	fields, ok := textstore.Split(line, ",", productArity)
	if !ok {
		return models.Product{}, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return models.Product{}, false
	}
	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.Product{}, false
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return models.Product{}, false
	}

	return models.Product{ID: id, Title: fields[1], Price: price, Quantity: quantity}, true
}
