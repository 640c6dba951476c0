package entity

import "github.com/Asian-Restaurant/backend/pkg/docstore"

// Dish is managed externally; this system only reads it. Price and weight
// are passed through verbatim, whatever type the store holds.
type Dish struct {
	DishName    string `json:"dish_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       any    `json:"price"`
	Weight      any    `json:"weight"`
}

func DishFromDoc(doc docstore.Document) *Dish {
	return &Dish{
		DishName:    str(doc["dish_name"]),
		Description: str(doc["description"]),
		ImageURL:    str(doc["image_url"]),
		Price:       doc["price"],
		Weight:      doc["weight"],
	}
}
