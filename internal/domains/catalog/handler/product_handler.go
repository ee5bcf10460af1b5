package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Axocidue/SportsStore/internal/domains/catalog/model"
	"github.com/Axocidue/SportsStore/internal/domains/catalog/service"
	"github.com/Axocidue/SportsStore/internal/shared/response"
)

// Handler handles HTTP requests for the product catalog
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListProducts handles GET /products?category=&page=&page_size=
func (h *Handler) ListProducts(c *gin.Context) {
	var req model.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	products, meta, err := h.service.ListProducts(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPageSize) || errors.Is(err, model.ErrInvalidPageIndex) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to list products")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, products, &response.Meta{
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		Total:      meta.Total,
		TotalPages: meta.TotalPages,
	})
}

// Categories handles GET /categories
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// ProductImage handles GET /products/:id/image
func (h *Handler) ProductImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	data, mimeType, err := h.service.ProductImage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product image not found")
			return
		}
		response.InternalServerError(c, "failed to load product image")
		return
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Data(http.StatusOK, mimeType, data)
}
