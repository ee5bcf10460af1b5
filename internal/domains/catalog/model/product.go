package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product is a catalog record. The cart treats products as immutable;
// the catalog owns their lifecycle.
type Product struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	Category      string          `json:"category" db:"category"`
	Price         decimal.Decimal `json:"price" db:"price"`
	ImageData     []byte          `json:"-" db:"image_data"`
	ImageMimeType string          `json:"-" db:"image_mime_type"`
}

// PagingInfo describes a page window over a filtered product sequence
type PagingInfo struct {
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
	TotalItems   int `json:"total_items"`
}

// TotalPages is derived, never stored: ceil(TotalItems / ItemsPerPage)
func (p PagingInfo) TotalPages() int {
	if p.ItemsPerPage < 1 {
		return 0
	}
	return (p.TotalItems + p.ItemsPerPage - 1) / p.ItemsPerPage
}

var (
	ErrInvalidPageSize  = errors.New("page size must be >= 1")
	ErrInvalidPageIndex = errors.New("page index must be >= 1")
	ErrProductNotFound  = errors.New("product not found")
)
