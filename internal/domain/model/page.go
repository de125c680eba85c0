package model

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest carries 1-indexed pagination input.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize replaces out-of-range values with the defaults.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset returns the number of records to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination summarizes a paginated listing result.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes page count for the given total.
func NewPagination(req PageRequest, total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{Page: req.Page, Limit: req.Limit, Total: total, Pages: pages}
}
