package shared

import (
	"net/http"
	"strconv"

	"paie/internal/transport/http/api"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

type Pagination struct {
	Limit  int
	Offset int
}

// ParsePagination reads limit and offset from the query string. Bad values
// fall back to the defaults; limit is capped at maxLimit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) Pagination {
	limit := defaultLimit
	offset := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Pagination{Limit: limit, Offset: offset}
}

func (p Pagination) Meta(total int) api.Meta {
	return api.Meta{Total: total, Limit: p.Limit, Offset: p.Offset}
}
