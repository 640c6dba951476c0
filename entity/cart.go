package entity

import "github.com/Asian-Restaurant/backend/pkg/docstore"

// DefaultCartComment is applied when a cart addition carries no comment.
const DefaultCartComment = "Want to bring home"

// CartLine is the accumulated order entry for one dish within a cart.
// Price is the unit price from the first addition; Quantity and TotalPrice
// accumulate across repeated additions of the same dish.
type CartLine struct {
	NameDish   string  `json:"name_dish"`
	Comment    string  `json:"comment"`
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// Doc is the durable shape appended to the "carts" collection on save.
func (l *CartLine) Doc() docstore.Document {
	return docstore.Document{
		"comment":     l.Comment,
		"name_dish":   l.NameDish,
		"price":       l.Price,
		"quantity":    l.Quantity,
		"total_price": l.TotalPrice,
	}
}
