package cart

import "time"

// Cart belongs to exactly one authenticated user, or to an anonymous
// session (session carts are carried in the schema but no endpoint
// creates them).
type Cart struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	SessionID *string   `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Item is a single line in a cart. Items snapshotted into an order have a
// nil CartID and a non-nil OrderID; they never point at both.
type Item struct {
	ID        string  `json:"id"`
	CartID    *string `json:"cart_id,omitempty"`
	OrderID   *string `json:"order_id,omitempty"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
}

// Entry is a {product, quantity} pair submitted by the client on sync.
type Entry struct {
	ProductID string
	Quantity  int
}

// Line is a cart row joined against the catalog, as returned to clients.
type Line struct {
	ProductID string `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}
