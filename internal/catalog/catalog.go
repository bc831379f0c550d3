// Package catalog answers storefront queries over a fixed list of shoes.
package catalog

import (
	"slices"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
)

type Catalog struct {
	shoes []model.Shoe
}

func New(shoes []model.Shoe) *Catalog {
	return &Catalog{shoes: slices.Clone(shoes)}
}

// All returns the shoes in catalog order.
func (c *Catalog) All() []model.Shoe {
	return slices.Clone(c.shoes)
}

// Brands returns each brand once, sorted.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, s := range c.shoes {
		if !seen[s.Brand] {
			seen[s.Brand] = true
			brands = append(brands, s.Brand)
		}
	}
	slices.Sort(brands)
	return brands
}

func (c *Catalog) ByID(id string) (model.Shoe, bool) {
	for _, s := range c.shoes {
		if s.ShoeID == id {
			return s, true
		}
	}
	return model.Shoe{}, false
}

// ByBrand matches the brand exactly.
func (c *Catalog) ByBrand(brand string) []model.Shoe {
	var out []model.Shoe
	for _, s := range c.shoes {
		if s.Brand == brand {
			out = append(out, s)
		}
	}
	return out
}

// MostExpensive returns up to n shoes, highest price first.
func (c *Catalog) MostExpensive(n int) []model.Shoe {
	return c.top(n, func(a, b model.Shoe) int { return b.Price.Cmp(a.Price) })
}

// LeastExpensive returns up to n shoes, lowest price first.
func (c *Catalog) LeastExpensive(n int) []model.Shoe {
	return c.top(n, func(a, b model.Shoe) int { return a.Price.Cmp(b.Price) })
}

// top keeps catalog order between equal prices.
func (c *Catalog) top(n int, cmp func(a, b model.Shoe) int) []model.Shoe {
	sorted := slices.Clone(c.shoes)
	slices.SortStableFunc(sorted, cmp)
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
