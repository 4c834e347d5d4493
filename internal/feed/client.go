// Package feed fetches the external product feed the catalog is imported from.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Product is one feed entry, field-mapped 1:1 onto the catalog.
type Product struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type Client struct {
	HTTP    *http.Client
	FeedURL string
}

func NewClient(feedURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		FeedURL: feedURL,
	}
}

func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.FeedURL, nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", res.Status)
	}
	var out []Product
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
