// Package cart implements the server-side cart store and its
// reconciliation against client-held cart state.
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type Repository interface {
	Sync(ctx context.Context, userID string, entries []Entry) error
	Lines(ctx context.Context, userID string) ([]Line, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Sync replaces the user's entire cart with entries. The cart is created
// on first use (one cart per user). The delete and the re-inserts run in
// one transaction, so an unknown product id leaves the previous cart
// contents untouched.
func (r *PGRepo) Sync(ctx context.Context, userID string, entries []Entry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cartID string
	err = tx.QueryRow(ctx, `SELECT id FROM carts WHERE user_id=$1`, userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		cartID = uuid.NewString()
		if _, err := tx.Exec(ctx, `
			INSERT INTO carts (id, user_id, created_at) VALUES ($1,$2,NOW())
		`, cartID, userID); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID); err != nil {
		return err
	}

	for _, e := range entries {
		// INSERT..SELECT keeps product existence and row creation one statement.
		tag, err := tx.Exec(ctx, `
			INSERT INTO cart_items (id, cart_id, product_id, quantity)
			SELECT $1, $2, p.id, $4 FROM products p WHERE p.id=$3
		`, uuid.NewString(), cartID, e.ProductID, e.Quantity)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", ErrProductNotFound, e.ProductID)
		}
	}
	return tx.Commit(ctx)
}

// Lines returns the user's cart joined against the catalog. A user without
// a cart gets an empty slice, not an error.
func (r *PGRepo) Lines(ctx context.Context, userID string) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, p.price::text, ci.quantity, p.image
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		JOIN products p ON ci.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY p.title
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ProductID, &l.Title, &l.Price, &l.Quantity, &l.Image); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
