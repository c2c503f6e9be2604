package models

// PageInfo carries offset-pagination metadata. Offset pagination means a page
// can shift if rows are inserted between fetches; that is accepted behavior
// for comment and blog listings, not something callers should compensate for.
type PageInfo struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// NewPageInfo computes pagination metadata for a 1-based page of the given
// size over total items.
func NewPageInfo(page, pageSize int, total int64) PageInfo {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
