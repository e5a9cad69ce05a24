package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page/limit query params and returns skip/limit
// values bounded by the given defaults.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) (int64, int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, limit
}
