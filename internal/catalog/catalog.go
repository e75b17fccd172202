package catalog

import (
	"errors"

	"github.com/dshu-atelier/storefront/internal/models"
)

var ErrNotFound = errors.New("product not found")

// Catalog is a static, read-only product list. Order of products and
// categories is preserved for display.
type Catalog struct {
	products   []models.Product
	categories []models.Category
}

func New(products []models.Product, categories []models.Category) *Catalog {
	return &Catalog{products: products, categories: categories}
}

// Default returns the catalog backed by the built-in dataset.
func Default() *Catalog {
	return New(defaultProducts, defaultCategories)
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) ByCategory(id models.ProductCategory) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == id {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByID(id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}
