package service

import (
	"context"
	"fmt"

	"github.com/Axocidue/SportsStore/internal/domains/catalog/model"
	"github.com/Axocidue/SportsStore/internal/domains/catalog/repository"
)

type CatalogService struct {
	repo            repository.RepositoryInterface
	defaultPageSize int
}

func NewCatalogService(repo repository.RepositoryInterface, defaultPageSize int) ServiceInterface {
	if defaultPageSize < 1 {
		defaultPageSize = 4
	}
	return &CatalogService{
		repo:            repo,
		defaultPageSize: defaultPageSize,
	}
}

// ListProducts returns one catalog page, optionally filtered by category.
// The repository returns the full ordered catalog and the page window is
// computed in memory; the catalog is small and the window math stays in
// one place instead of being split between SQL and Go.
func (s *CatalogService) ListProducts(ctx context.Context, req model.ListProductsRequest) ([]model.ListProductsResponse, *model.PaginationMeta, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = s.defaultPageSize
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list products: %w", err)
	}

	page, info, err := model.Paginate(products, req.Category, req.PageSize, req.Page)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]model.ListProductsResponse, len(page))
	for i, p := range page {
		responses[i] = model.ProductToListDTO(p)
	}

	meta := &model.PaginationMeta{
		Page:       info.CurrentPage,
		PageSize:   info.ItemsPerPage,
		Total:      info.TotalItems,
		TotalPages: info.TotalPages(),
	}

	return responses, meta, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ProductImage returns the raw image bytes and MIME type for one product
func (s *CatalogService) ProductImage(ctx context.Context, id int64) ([]byte, string, error) {
	p, err := s.repo.ProductByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if len(p.ImageData) == 0 {
		return nil, "", model.ErrProductNotFound
	}
	return p.ImageData, p.ImageMimeType, nil
}
