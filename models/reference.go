package models

// ReferenceData holds the three read-only tables the catalog view is built from.
// Slice order is source order.
type ReferenceData struct {
	Users      []User
	Categories []Category
	Products   []Product
}

// IsEmpty reports whether all three tables are empty.
func (d *ReferenceData) IsEmpty() bool {
	return d == nil || (len(d.Users) == 0 && len(d.Categories) == 0 && len(d.Products) == 0)
}
