package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
	"github.com/Axocidue/SportsStore/internal/domains/cart/service"
	catalogModel "github.com/Axocidue/SportsStore/internal/domains/catalog/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
	"github.com/Axocidue/SportsStore/internal/shared/middleware"
	"github.com/Axocidue/SportsStore/internal/shared/response"
)

// Handler handles HTTP requests for the session cart
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetCart handles GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "missing session")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		response.InternalServerError(c, "failed to load cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// AddItem handles POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "missing session")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, catalogModel.ErrProductNotFound):
			response.NotFound(c, "product not found")
		case errors.Is(err, model.ErrInvalidQuantity):
			response.BadRequest(c, err.Error())
		case isValidationError(err):
			response.UnprocessableEntity(c, "invalid request", err)
		default:
			response.InternalServerError(c, "failed to add item")
		}
		return
	}

	response.Success(c, http.StatusCreated, cart)
}

// RemoveItem handles DELETE /cart/items/:productID
func (h *Handler) RemoveItem(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "missing session")
		return
	}

	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		response.InternalServerError(c, "failed to remove item")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /cart
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "missing session")
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), sessionID); err != nil {
		response.InternalServerError(c, "failed to clear cart")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// Checkout handles POST /cart/checkout
//
// A failed outcome is a 422 with the validation or processing errors in
// the details; the stored cart is untouched so the client can retry.
func (h *Handler) Checkout(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "missing session")
		return
	}

	var details checkoutModel.ShippingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), sessionID, details)
	if err != nil {
		response.InternalServerError(c, "checkout failed")
		return
	}

	if !result.Completed {
		response.UnprocessableEntity(c, "checkout rejected", result.Errors)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func isValidationError(err error) bool {
	var fieldErrs validation.Errors
	return errors.As(err, &fieldErrs)
}
