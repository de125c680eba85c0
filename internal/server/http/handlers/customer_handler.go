package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	"github.com/nafru/exportdesk/internal/server/http/dto"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name and a valid email are required")
		return
	}

	customer, err := h.facade.CreateCustomer(c.Request.Context(), model.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Address:  req.Address,
		City:     req.City,
		Country:  req.Country,
		Language: req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	filter := repository.CustomerFilter{
		Search: c.Query("search"),
		Page:   pageFromQuery(c),
	}

	customers, pagination, err := h.facade.Customers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.CustomerListResponse{
		Customers:  make([]dto.CustomerResponse, 0, len(customers)),
		Pagination: pagination,
	}
	for i := range customers {
		resp.Customers = append(resp.Customers, dto.ToCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, resp)
}
