package models

type ProductCategory string

const (
	CategoryRings     ProductCategory = "rings"
	CategoryEarrings  ProductCategory = "earrings"
	CategoryNecklaces ProductCategory = "necklaces"
	CategoryOther     ProductCategory = "other"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Product is supplied whole by the catalog and never mutated here.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	Image       string          `json:"image"`
	Category    ProductCategory `json:"category"`
	Size        string          `json:"size,omitempty"`
	InStock     int             `json:"in_stock"`
	Type        string          `json:"type"`
}

type Category struct {
	ID   ProductCategory `json:"id"`
	Name string          `json:"name"`
}

// CartItem identity is (Product.ID, SelectedSize). Quantity is always >= 1;
// a line that would drop to zero is removed instead.
type CartItem struct {
	Product      Product `json:"product"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selected_size,omitempty"`
}
