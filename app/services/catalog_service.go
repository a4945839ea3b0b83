package services

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
)

// ErrProductNotFound is returned when an edit index or delete ID matches
// nothing in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a stock decrement asks for more
// units than the catalog holds.
var ErrInsufficientStock = errors.New("insufficient stock")

// CatalogService owns the product catalog: admin add/edit/delete plus the
// stock movements purchases cause.
//
// Edit addresses a product by its 1-based position in the current read
// order of the store; Delete addresses it by stored ID. The two are easy
// to confuse and deliberately kept distinct.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// Products returns the catalog in store order.
func (s *CatalogService) Products() ([]models.Product, error) {
	return s.products.All()
}

// Add appends one product; its ID is assigned by the repository.
func (s *CatalogService) Add(title string, price decimal.Decimal, quantity int) (models.Product, error) {
	added, err := s.products.Append([]models.Product{
		{Title: title, Price: price, Quantity: quantity},
	})
	if err != nil {
		return models.Product{}, err
	}
	return added[0], nil
}

// Edit replaces the title, price, and quantity of the product at the given
// 1-based position, keeping its stored ID, and persists the whole catalog.
func (s *CatalogService) Edit(index int, title string, price decimal.Decimal, quantity int) (models.Product, error) {
	products, err := s.products.All()
	if err != nil {
		return models.Product{}, err
	}
	if index < 1 || index > len(products) {
		return models.Product{}, ErrProductNotFound
	}

	p := &products[index-1]
	p.Title = title
	p.Price = price
	p.Quantity = quantity

	if err := s.products.Overwrite(products); err != nil {
		return models.Product{}, err
	}
	return *p, nil
}

// Delete removes the product whose stored ID equals idStr (string
// comparison), renumbers the survivors to a dense 1..N sequence in their
// remaining order, and persists the result.
func (s *CatalogService) Delete(idStr string) (models.Product, error) {
	products, err := s.products.All()
	if err != nil {
		return models.Product{}, err
	}

	deleted, ok := collection.First(products, func(p models.Product) bool {
		return strconv.Itoa(p.ID) == idStr
	})
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	remaining := collection.Filter(products, func(p models.Product) bool {
		return p.ID != deleted.ID
	})
	for i := range remaining {
		remaining[i].ID = i + 1
	}

	if err := s.products.Overwrite(remaining); err != nil {
		return models.Product{}, err
	}
	return deleted, nil
}

// DecrementStock takes quantity units of the product out of stock and
// persists the catalog. The caller must have checked availability; going
// below zero is refused here as a backstop.
func (s *CatalogService) DecrementStock(productID, quantity int) error {
	return s.adjustStock(productID, -quantity)
}

// RestoreStock puts quantity units of the product back into stock, for
// items removed from a cart before checkout.
func (s *CatalogService) RestoreStock(productID, quantity int) error {
	return s.adjustStock(productID, quantity)
}

func (s *CatalogService) adjustStock(productID, delta int) error {
	products, err := s.products.All()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID != productID {
			continue
		}
		if products[i].Quantity+delta < 0 {
			return ErrInsufficientStock
		}
		products[i].Quantity += delta
		return s.products.Overwrite(products)
	}
	return ErrProductNotFound
}
