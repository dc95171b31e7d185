package repositories

import (
	"gorm.io/gorm"
)

// CounterRepository is the single path for every denormalized counter
// adjustment in the system. Adjustments are issued as store-level atomic
// increments, never as read-modify-write from application memory.
type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Adjust applies delta to the named counter column on the rows matched by
// the query. Adjusting a row that no longer exists matches nothing and is
// a no-op, which is what cascade deletes rely on.
func (r *CounterRepository) Adjust(model interface{}, field string, delta int, query string, args ...interface{}) error {
	return r.db.Model(model).
		Where(query, args...).
		UpdateColumn(field, gorm.Expr(field+" + ?", delta)).Error
}
