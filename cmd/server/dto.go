package main

import "encoding/json"

// SyncCartItem is one {id, quantity} pair of the client-held cart.
// swagger:model SyncCartItem
type SyncCartItem struct {
	ID       string `json:"id"       example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity int    `json:"quantity" example:"2"`
}

// SyncCartRequest replaces the server-side cart with the given lines.
// swagger:model SyncCartRequest
type SyncCartRequest struct {
	Cart []SyncCartItem `json:"cart"`
}

// PlaceOrderItem is one checkout line. Price comes from the client and is
// recorded as submitted, not re-derived from the catalog.
// swagger:model PlaceOrderItem
type PlaceOrderItem struct {
	ID       string      `json:"id"       example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Price    json.Number `json:"price"    example:"9.99"`
	Quantity int         `json:"quantity" example:"2"`
}

// StatusResponse is the uniform API result envelope.
// swagger:model StatusResponse
type StatusResponse struct {
	Status string `json:"status"            example:"success"`
	// set on errors and on successful order placement
	Message string `json:"message,omitempty" example:"Order placed successfully!"`
	OrderID string `json:"order_id,omitempty"`
}
