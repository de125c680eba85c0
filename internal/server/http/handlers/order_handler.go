package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	"github.com/nafru/exportdesk/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "customer_id and at least one valid item are required")
		return
	}

	items := make([]repository.NewOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, repository.NewOrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PricePerKg: item.PricePerKg,
		})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUser(c), repository.NewOrder{
		CustomerID: req.CustomerID,
		Items:      items,
		Currency:   req.Currency,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter := repository.OrderFilter{
		Status: model.OrderStatus(c.Query("status")),
		Page:   pageFromQuery(c),
	}

	orders, pagination, err := h.facade.Orders(c.Request.Context(), CurrentUser(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.OrderListResponse{
		Orders:     make([]dto.OrderResponse, 0, len(orders)),
		Pagination: pagination,
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, dto.ToOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}
