package domain

import "time"

// SearchCriteria is the per-request filter set for catalog searches. Every
// filter is optional; unset filters are omitted from the query. All filters
// combine conjunctively.
type SearchCriteria struct {
	// ParentCategoryID matches every child category under the parent.
	// CategoryID takes precedence when both are set.
	ParentCategoryID *uint
	CategoryID       *uint

	// Keyword matches name or description, case-insensitive substring.
	Keyword string

	StoreID *uint
	BrandID *uint
	Status  *ProductStatus

	// StartDate is inclusive from start of day; EndDate is inclusive
	// through the entire end day.
	StartDate *time.Time
	EndDate   *time.Time

	PageNumber int
	PageSize   int
}

// Normalize clamps pagination to usable values
func (c *SearchCriteria) Normalize() {
	if c.PageNumber < 1 {
		c.PageNumber = 1
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
}

// Offset returns the number of rows to skip
func (c SearchCriteria) Offset() int {
	return (c.PageNumber - 1) * c.PageSize
}

// PagedResult is the page envelope returned by listing operations
type PagedResult[T any] struct {
	Data        []T   `json:"data"`
	TotalCount  int64 `json:"total_count"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
}

// NewPagedResult builds a page envelope with the derived total page count
func NewPagedResult[T any](data []T, totalCount int64, pageNumber, pageSize int) PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	if data == nil {
		data = []T{}
	}
	return PagedResult[T]{
		Data:        data,
		TotalCount:  totalCount,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}
