package dto

import (
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// CreateProductRequest describes a catalog entry creation payload.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category *string `json:"category"`
	Origin   *string `json:"origin"`
}

// ProductResponse is the public projection of a catalog entry.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category,omitempty"`
	Origin    *string   `json:"origin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductListResponse pairs catalog entries with pagination info.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination model.Pagination  `json:"pagination"`
}

// ToProductResponse projects a catalog entry for API output.
func ToProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Origin:    p.Origin,
		CreatedAt: p.CreatedAt,
	}
}
