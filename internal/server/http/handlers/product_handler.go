package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafru/exportdesk/internal/server/http/dto"
)

// ProductHandler manages product catalog endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), req.Name, req.Category, req.Origin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, pagination, err := h.facade.Products(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ProductListResponse{
		Products:   make([]dto.ProductResponse, 0, len(products)),
		Pagination: pagination,
	}
	for i := range products {
		resp.Products = append(resp.Products, dto.ToProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}
