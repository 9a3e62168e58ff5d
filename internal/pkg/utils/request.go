package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page and per_page from the query string, falling back
// to page 1 and the supplied default size on absent or malformed values.
func ParsePagination(r *http.Request, defaultPageSize int) (page, pageSize int) {
	page = 1
	pageSize = defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}
	return page, pageSize
}
