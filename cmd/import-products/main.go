// Command import-products wipes the product catalog and repopulates it
// from the configured product feed. The delete and re-insert happen in a
// single transaction, so the storefront never sees an empty catalog.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jortega-dev/threads-shop/internal/catalog"
	"github.com/jortega-dev/threads-shop/internal/config"
	"github.com/jortega-dev/threads-shop/internal/feed"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	log.Printf("fetching from %s", cfg.ProductFeedURL)
	items, err := feed.NewClient(cfg.ProductFeedURL).FetchProducts(ctx)
	if err != nil {
		log.Fatalf("fetch feed: %v", err)
	}

	products := make([]catalog.Product, 0, len(items))
	for _, it := range items {
		products = append(products, catalog.Product{
			ID:          uuid.NewString(),
			Title:       it.Title,
			Price:       decimal.NewFromFloat(it.Price).StringFixed(2),
			Description: it.Description,
			Category:    it.Category,
			Image:       it.Image,
		})
		log.Printf("importing: %s", it.Title)
	}

	if err := catalog.NewPGRepo(pool).ReplaceAll(ctx, products); err != nil {
		log.Fatalf("replace catalog: %v", err)
	}
	log.Printf("successfully imported %d products", len(products))
}
