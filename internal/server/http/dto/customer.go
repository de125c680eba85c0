package dto

import (
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// CreateCustomerRequest describes customer creation payload.
type CreateCustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Country  string  `json:"country"`
	Language string  `json:"language"`
}

// CustomerResponse is the public projection of a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	Country   string    `json:"country"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse pairs customers with pagination info.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination model.Pagination   `json:"pagination"`
}

// ToCustomerResponse projects a customer for API output.
func ToCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		City:      c.City,
		Country:   c.Country,
		Language:  c.Language,
		CreatedAt: c.CreatedAt,
	}
}
