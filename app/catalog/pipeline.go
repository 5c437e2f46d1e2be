package catalog

import (
	"github.com/mytheresa/product-categories/models"
)

// Row is a product enriched with its resolved category and owner.
// Category and User are nil when the lookup fails.
type Row struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Category *models.Category `json:"category"`
	User     *models.User     `json:"user"`
}

// Enrich maps every product to a Row, preserving order.
func (r *Resolver) Enrich(products []models.Product) []Row {
	rows := make([]Row, len(products))
	for i, p := range products {
		rows[i] = Row{
			ID:       p.ID,
			Name:     p.Name,
			Category: r.Category(p.CategoryID),
			User:     r.Owner(p.CategoryID),
		}
	}
	return rows
}
