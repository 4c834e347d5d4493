// Package catalog provides the repository interface and PostgreSQL implementation for the product catalog.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	ReplaceAll(ctx context.Context, products []Product) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, title, price::text, description, category, image, created_at
		FROM products
		ORDER BY created_at DESC, title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Category, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, title, price::text, description, category, image, created_at
		FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Category, &p.Image, &p.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

// ReplaceAll swaps the whole catalog in one transaction so readers never
// observe an empty table between the delete and the re-insert.
func (r *PGRepo) ReplaceAll(ctx context.Context, products []Product) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (id, title, price, description, category, image, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,NOW())
		`, p.ID, p.Title, p.Price, p.Description, p.Category, p.Image); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
