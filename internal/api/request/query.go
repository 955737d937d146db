package request

import (
	"fmt"
	"net/http"
	"strconv"
)

// MaxLimit caps the number of entries a list endpoint returns
const MaxLimit = 100

// ListQuery holds the query parameters accepted by list endpoints
type ListQuery struct {
	Limit int
}

// ParseListQuery reads ?limit=N. A missing limit means MaxLimit.
func ParseListQuery(r *http.Request) (ListQuery, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return ListQuery{Limit: MaxLimit}, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return ListQuery{}, fmt.Errorf("limit must be a number, got %q", raw)
	}
	if limit < 1 || limit > MaxLimit {
		return ListQuery{}, fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, limit)
	}
	return ListQuery{Limit: limit}, nil
}

// ParseIndex parses a path segment as a non-negative index
func ParseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("index must be a non-negative number, got %q", raw)
	}
	return index, nil
}
