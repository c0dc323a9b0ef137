package domain

import "time"

// OrderSearchCriteria filters the admin order listing. Unset filters are
// omitted; the keyword matches the order number as a substring.
type OrderSearchCriteria struct {
	Keyword string
	Status  *OrderStatus

	// StartDate is inclusive from start of day; EndDate is inclusive
	// through the entire end day.
	StartDate *time.Time
	EndDate   *time.Time

	PageNumber int
	PageSize   int
}

// Normalize clamps pagination to usable values
func (c *OrderSearchCriteria) Normalize() {
	if c.PageNumber < 1 {
		c.PageNumber = 1
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
}

// Offset returns the number of rows to skip
func (c OrderSearchCriteria) Offset() int {
	return (c.PageNumber - 1) * c.PageSize
}

// PagedResult is the page envelope returned by order listings
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

// OrderRepository defines order persistence operations
type OrderRepository interface {
	FindByID(id uint) (*Order, error)
	ListFiltered(criteria OrderSearchCriteria) ([]Order, int64, error)
	Create(order *Order) error
	UpdateStatus(id uint, status OrderStatus) (int64, error)
}
