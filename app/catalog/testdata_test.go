package catalog

import (
	"github.com/mytheresa/product-categories/models"
)

// --- Fixtures ---

func newTestData() *models.ReferenceData {
	return &models.ReferenceData{
		Users: []models.User{
			{ID: 1, Name: "Roma", Sex: models.SexMale},
			{ID: 2, Name: "Anna", Sex: models.SexFemale},
			{ID: 3, Name: "Max", Sex: models.SexMale},
		},
		Categories: []models.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Orphans", Icon: "❓", OwnerID: 77},
		},
		Products: []models.Product{
			{ID: 1, Name: "MILK", CategoryID: 1},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Mineral water", CategoryID: 2},
			{ID: 4, Name: "Lost sock", CategoryID: 99},
			{ID: 5, Name: "Mystery box", CategoryID: 3},
		},
	}
}

func rowIDs(rows []Row) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}
