package order

import "time"

const (
	// StatusPending is the schema default; nothing in the current flow
	// leaves an order in it, but the column keeps it for forward compat.
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
)

type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	// NUMERIC -> string
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Item is an order's content snapshot: a cart item detached from any cart
// (cart_id NULL, order_id set).
type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Line is an order item joined against the catalog, for the history page.
type Line struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}
