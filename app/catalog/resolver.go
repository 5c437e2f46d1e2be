package catalog

import (
	"github.com/mytheresa/product-categories/models"
)

// Resolver joins products to their category and the category's owner.
// Lookups keep the first row for a duplicated id, the same row a linear scan
// would find. Returned records are copies; the reference tables stay read-only.
type Resolver struct {
	categories map[int]models.Category
	users      map[int]models.User
}

func NewResolver(data *models.ReferenceData) *Resolver {
	r := &Resolver{
		categories: make(map[int]models.Category, len(data.Categories)),
		users:      make(map[int]models.User, len(data.Users)),
	}
	for _, c := range data.Categories {
		if _, ok := r.categories[c.ID]; !ok {
			r.categories[c.ID] = c
		}
	}
	for _, u := range data.Users {
		if _, ok := r.users[u.ID]; !ok {
			r.users[u.ID] = u
		}
	}
	return r
}

// Category returns the category with the given id, or nil.
func (r *Resolver) Category(categoryID int) *models.Category {
	c, ok := r.categories[categoryID]
	if !ok {
		return nil
	}
	return &c
}

// User returns the user with the given id, or nil.
func (r *Resolver) User(userID int) *models.User {
	u, ok := r.users[userID]
	if !ok {
		return nil
	}
	return &u
}

// Owner resolves categoryID to its category and then to the category's owner.
// It returns nil when either hop fails.
func (r *Resolver) Owner(categoryID int) *models.User {
	c, ok := r.categories[categoryID]
	if !ok {
		return nil
	}
	return r.User(c.OwnerID)
}
