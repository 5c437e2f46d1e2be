package models

// SampleReferenceData returns the built-in data set used by the memory source
// and for seeding an empty database.
//
// Category 6 has an owner that does not exist and product 10 has a category
// that does not exist.
func SampleReferenceData() *ReferenceData {
	return &ReferenceData{
		Users: []User{
			{ID: 1, Name: "Roma", Sex: SexMale},
			{ID: 2, Name: "Anna", Sex: SexFemale},
			{ID: 3, Name: "Max", Sex: SexMale},
			{ID: 4, Name: "John", Sex: SexMale},
		},
		Categories: []Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 4, Title: "Electronics", Icon: "💻", OwnerID: 1},
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
			{ID: 6, Title: "Garden", Icon: "🌱", OwnerID: 42},
		},
		Products: []Product{
			{ID: 1, Name: "Milk", CategoryID: 1},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Eggs", CategoryID: 1},
			{ID: 4, Name: "Jacket", CategoryID: 5},
			{ID: 5, Name: "Sugar", CategoryID: 1},
			{ID: 6, Name: "Sausage", CategoryID: 1},
			{ID: 7, Name: "Beer", CategoryID: 2},
			{ID: 8, Name: "Laptop", CategoryID: 4},
			{ID: 9, Name: "Rake", CategoryID: 6},
			{ID: 10, Name: "Umbrella", CategoryID: 9},
		},
	}
}
