package repository

import (
	"context"

	"github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

// RepositoryInterface is the read-only catalog boundary. Ordering is part
// of the contract: Products returns records ordered by ID so pagination
// is stable across requests.
type RepositoryInterface interface {
	Products(ctx context.Context) ([]model.Product, error)
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
}
