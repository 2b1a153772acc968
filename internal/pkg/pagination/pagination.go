package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/okazmarkt/core/internal/pkg/response"
)

const (
	defaultSize = 10
	maxSize     = 100
)

// Query is a sanitized page request. Zero values are never produced by
// FromContext; construct directly only in tests.
type Query struct {
	Page int
	Size int
}

func (q Query) offset() int { return (q.Page - 1) * q.Size }

// FromContext reads ?page and ?size (with ?limit accepted as an alias) and
// clamps them to sane bounds.
func FromContext(c *gin.Context) Query {
	size := intParam(c, "size", 0)
	if size == 0 {
		size = intParam(c, "limit", defaultSize)
	}
	return Query{
		Page: clamp(intParam(c, "page", 1), 1, 1<<30),
		Size: clamp(size, 1, maxSize),
	}
}

// Paginate runs the count and the windowed find on the given query and
// returns the metadata envelope alongside.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int(total / int64(q.Size))
	if total%int64(q.Size) != 0 {
		pages++
	}
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}, nil
}

func intParam(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
