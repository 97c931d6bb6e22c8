package service

import "fmt"

// PageOutOfRangeError reports a requested page beyond the last available
// one, including when the underlying list is empty (total pages 0).
type PageOutOfRangeError struct {
	Page       int
	TotalPages int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("page %d is off limit, total pages is %d", e.Page, e.TotalPages)
}

// Paginate slices a fully materialized list into one 1-based page.
//
// Total pages is ceil(len(items) / pageSize). Requesting a page beyond the
// total fails with *PageOutOfRangeError; the caller maps that to a client
// error.
func Paginate[T any](items []T, page, pageSize int) ([]T, int, error) {
	totalPages := (len(items) + pageSize - 1) / pageSize
	if page > totalPages {
		return nil, totalPages, &PageOutOfRangeError{Page: page, TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages, nil
}
