package dto

import "busbooking/shared"

type Metadata struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}

type Paginated[T any] struct {
	Items    []T      `json:"items"`
	Metadata Metadata `json:"metadata"`
}

// Paginate slices an already filtered and sorted list.
func Paginate[T any](items []T, q QueryParams) Paginated[T] {
	total := len(items)
	page, limit := q.Page, q.Limit

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = total
	}

	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	return Paginated[T]{
		Items: items[start:end],
		Metadata: Metadata{
			Page:      page,
			Limit:     limit,
			Total:     total,
			TotalPage: shared.CalculateTotalPage(total, limit),
		},
	}
}
