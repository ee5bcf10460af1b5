package model

import "fmt"

// ListProductsRequest - query parameters for product listing
type ListProductsRequest struct {
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size"`
}

// ListProductsResponse - one product in a listing page
type ListProductsResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
}

// PaginationMeta - metadata for pagination
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ProductToListDTO maps a catalog entity to its listing representation
func ProductToListDTO(p Product) ListProductsResponse {
	dto := ListProductsResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.StringFixed(2),
	}
	if len(p.ImageData) > 0 {
		dto.ImageURL = productImagePath(p.ID)
	}
	return dto
}

func productImagePath(id int64) string {
	// Keep in sync with the route registered in cmd/api
	return fmt.Sprintf("/api/v1/products/%d/image", id)
}
