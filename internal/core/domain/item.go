package domain

import "time"

// Category groups items. The relation is held on the item side only; a
// category keeps no list of its items.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Item is a catalog entry. CategoryID may be empty (an item without a
// category); Category is populated by the repository when the reference
// resolves.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CategoryID  string    `json:"-"`
	Category    *Category `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
