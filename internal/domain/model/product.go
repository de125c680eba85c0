package model

import "time"

// Product is a catalog entry orders reference by ID.
type Product struct {
	ID        int64
	Name      string
	Category  *string
	Origin    *string
	CreatedAt time.Time
}
