package service

import (
	"context"

	"github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

type ServiceInterface interface {
	ListProducts(ctx context.Context, req model.ListProductsRequest) ([]model.ListProductsResponse, *model.PaginationMeta, error)
	Categories(ctx context.Context) ([]string, error)
	ProductImage(ctx context.Context, id int64) ([]byte, string, error)
}
