package store

import "math"

// PaginationParams contains parameters for paginated queries
type PaginationParams struct {
	Page     int    // 1-indexed
	PageSize int    // Number of items per page
	Search   string // Matched against account names
}

// PaginationResult contains pagination metadata
type PaginationResult struct {
	Total       int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"page"`
	PageSize    int   `json:"limit"`
	HasNext     bool  `json:"has_next"`
}

// NewPaginationParams clamps page to >= 1 and pageSize to [1, 50], default 20.
func NewPaginationParams(page, pageSize int, search string) PaginationParams {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = 20
	case pageSize > 50:
		pageSize = 50
	}
	return PaginationParams{Page: page, PageSize: pageSize, Search: search}
}

func (p PaginationParams) offset() int {
	return (p.Page - 1) * p.PageSize
}

// CalculatePagination calculates pagination metadata
func CalculatePagination(total int64, currentPage, pageSize int) PaginationResult {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if currentPage < 1 {
		currentPage = 1
	}
	return PaginationResult{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		HasNext:     currentPage < totalPages,
	}
}
