// Command server runs the storefront: catalog pages, the cart sync API,
// checkout and order history.
//
// @title threads-shop API
// @version 1.0
// @description Storefront cart and order endpoints.
// @BasePath /
package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jortega-dev/threads-shop/internal/account"
	"github.com/jortega-dev/threads-shop/internal/cart"
	"github.com/jortega-dev/threads-shop/internal/catalog"
	"github.com/jortega-dev/threads-shop/internal/config"
	"github.com/jortega-dev/threads-shop/internal/order"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	r := buildRouter(cfg,
		catalog.NewPGRepo(pool),
		cart.NewPGRepo(pool),
		order.NewPGRepo(pool),
		account.NewPGRepo(pool),
	)

	log.Printf("server listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
