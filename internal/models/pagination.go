package models

// Pagination describes one page of a list response
// swagger:model Pagination
type Pagination struct {
	// Page number, starting at 1
	// example: 1
	Page int `json:"page"`

	// Page size
	// example: 10
	Limit int `json:"limit"`

	// Total number of rows matching the filter
	// example: 42
	Total int64 `json:"total"`

	// Total number of pages
	// example: 5
	TotalPages int `json:"totalPages"`
}

// NewPagination builds the pagination envelope for a page of results.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
