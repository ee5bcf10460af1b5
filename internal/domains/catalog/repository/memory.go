package repository

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

// MemoryRepository serves the catalog from a fixed slice. Used when the
// API runs without a database (CATALOG_SOURCE=memory) and in tests.
type MemoryRepository struct {
	products []model.Product
}

func NewMemoryRepository(products []model.Product) RepositoryInterface {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &MemoryRepository{products: sorted}
}

// NewSeededRepository returns a memory repository with the demo catalog
func NewSeededRepository() RepositoryInterface {
	return NewMemoryRepository(seedProducts())
}

func (r *MemoryRepository) Products(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (r *MemoryRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func seedProducts() []model.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []model.Product{
		{ID: 1, Name: "Kayak", Description: "A boat for one person", Category: "Watersports", Price: price("275.00")},
		{ID: 2, Name: "Lifejacket", Description: "Protective and fashionable", Category: "Watersports", Price: price("48.95")},
		{ID: 3, Name: "Soccer Ball", Description: "FIFA-approved size and weight", Category: "Soccer", Price: price("19.50")},
		{ID: 4, Name: "Corner Flags", Description: "Give your playing field a professional touch", Category: "Soccer", Price: price("34.95")},
		{ID: 5, Name: "Stadium", Description: "Flat-packed 35,000-seat stadium", Category: "Soccer", Price: price("79500.00")},
		{ID: 6, Name: "Thinking Cap", Description: "Improve brain efficiency by 75%", Category: "Chess", Price: price("16.00")},
		{ID: 7, Name: "Unsteady Chair", Description: "Secretly give your opponent a disadvantage", Category: "Chess", Price: price("29.95")},
		{ID: 8, Name: "Human Chess Board", Description: "A fun game for the family", Category: "Chess", Price: price("75.00")},
		{ID: 9, Name: "Bling-Bling King", Description: "Gold-plated, diamond-studded King", Category: "Chess", Price: price("1200.00")},
	}
}
