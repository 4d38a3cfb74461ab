package kernel

// PaginationOptions carries page-based pagination parameters from the API layer.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the options into a safe range.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	return p
}

// Offset returns the row offset for SQL queries.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo describes the page a Paginated result represents.
type PageInfo struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
}

// Paginated wraps a page of items together with page metadata.
type Paginated[T any] struct {
	Items []T      `json:"items"`
	Page  PageInfo `json:"page"`
}

// NewPaginated builds a Paginated result from a page of items.
func NewPaginated[T any](items []T, page, size, total int) *Paginated[T] {
	return &Paginated[T]{
		Items: items,
		Page: PageInfo{
			Number: page,
			Size:   size,
			Total:  total,
		},
	}
}

// TotalPages returns the number of pages available.
func (p *Paginated[T]) TotalPages() int {
	if p.Page.Size <= 0 {
		return 0
	}
	pages := p.Page.Total / p.Page.Size
	if p.Page.Total%p.Page.Size != 0 {
		pages++
	}
	return pages
}
