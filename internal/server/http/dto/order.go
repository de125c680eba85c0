package dto

import (
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// OrderItemRequest is one product line of an order creation payload.
type OrderItemRequest struct {
	ProductID  int64   `json:"product_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	PricePerKg float64 `json:"price_per_kg" binding:"required,gt=0"`
}

// CreateOrderRequest describes order creation payload.
type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Currency   string             `json:"currency"`
	Notes      *string            `json:"notes"`
}

// OrderItemResponse is the public projection of an order line.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	PricePerKg  float64 `json:"price_per_kg"`
	TotalPrice  float64 `json:"total_price"`
}

// OrderResponse is the public projection of an order.
type OrderResponse struct {
	ID         int64               `json:"id"`
	OrderNo    string              `json:"order_no"`
	CustomerID int64               `json:"customer_id"`
	Customer   *CustomerResponse   `json:"customer,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	TotalKg    float64             `json:"total_kg"`
	TotalPrice float64             `json:"total_price"`
	Currency   string              `json:"currency"`
	Notes      *string             `json:"notes,omitempty"`
	Status     string              `json:"status"`
	CreatedBy  int64               `json:"created_by"`
	CreatedAt  time.Time           `json:"created_at"`
}

// OrderListResponse pairs orders with pagination info.
type OrderListResponse struct {
	Orders     []OrderResponse  `json:"orders"`
	Pagination model.Pagination `json:"pagination"`
}

// ToOrderResponse projects an order for API output.
func ToOrderResponse(o *model.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		CustomerID: o.CustomerID,
		Items:      make([]OrderItemResponse, 0, len(o.Items)),
		TotalKg:    o.TotalKg,
		TotalPrice: o.TotalPrice,
		Currency:   o.Currency,
		Notes:      o.Notes,
		Status:     string(o.Status),
		CreatedBy:  o.CreatedBy,
		CreatedAt:  o.CreatedAt,
	}
	if o.Customer != nil {
		customer := ToCustomerResponse(o.Customer)
		resp.Customer = &customer
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PricePerKg:  item.PricePerKg,
			TotalPrice:  item.TotalPrice,
		})
	}
	return resp
}
