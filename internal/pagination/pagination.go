package pagination

import (
	"math"
	"strconv"

	"gorm.io/gorm"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Limit int
	Page  int
}

// Default returns the first page with the default size.
func Default() Query {
	return Query{Limit: DefaultLimit, Page: DefaultPage}
}

// Parse validates the raw limit and p query values. Empty values fall back to
// the defaults; anything non-numeric, below one, or so large that the offset
// would overflow is rejected.
func Parse(limit, page string) (Query, error) {
	q := Default()

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return Query{}, apperr.ErrInvalidLimit
		}
		q.Limit = min(n, MaxLimit)
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		// the offset must stay representable
		if err != nil || n < 1 || n-1 > math.MaxInt/q.Limit {
			return Query{}, apperr.ErrInvalidPage
		}
		q.Page = n
	}

	return q, nil
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Paginate counts the rows matched by tx, then loads the requested page into dest.
func Paginate[T any](tx *gorm.DB, q Query, dest *[]T) (int64, error) {
	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	if err := tx.Offset(q.Offset()).Limit(q.Limit).Find(dest).Error; err != nil {
		return 0, err
	}

	if *dest == nil {
		*dest = []T{}
	}

	return total, nil
}
