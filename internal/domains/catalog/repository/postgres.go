package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Products(ctx context.Context) ([]model.Product, error) {
	const query = `
		SELECT id, name, description, category, price, image_data, image_mime_type
		FROM products
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.ImageData, &p.ImageMimeType,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `
		SELECT id, name, description, category, price, image_data, image_mime_type
		FROM products
		WHERE id = $1`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.ImageData, &p.ImageMimeType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}

	return &p, nil
}

func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM products ORDER BY category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}
