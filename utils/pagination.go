package utils

import "gemstone-admin/models"

// EllipsisPage marks a gap in the visible page-number window.
const EllipsisPage = -1

const maxVisiblePages = 5

// Paginate slices one page out of an already filtered list. Page numbers are
// 1-based; out-of-range pages yield an empty slice rather than a panic.
func Paginate[T any](items []T, page, limit int) ([]T, models.PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && totalPages > 0,
	}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, meta
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], meta
}

// PageNumbers generates the visible page links: a window of 5 around the
// current page with EllipsisPage standing in for gaps, matching the
// 1 … x-1 x x+1 … N convention.
func PageNumbers(current, totalPages int) []int {
	pages := []int{}

	if totalPages <= maxVisiblePages {
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		for i := 1; i <= 4; i++ {
			pages = append(pages, i)
		}
		pages = append(pages, EllipsisPage, totalPages)
	case current >= totalPages-2:
		pages = append(pages, 1, EllipsisPage)
		for i := totalPages - 3; i <= totalPages; i++ {
			pages = append(pages, i)
		}
	default:
		pages = append(pages, 1, EllipsisPage)
		for i := current - 1; i <= current+1; i++ {
			pages = append(pages, i)
		}
		pages = append(pages, EllipsisPage, totalPages)
	}

	return pages
}
