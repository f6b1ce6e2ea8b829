package database

import (
	"gorm.io/gorm"

	"github.com/ogerber/townpicker/internal/model"
)

type PickQuery struct {
	Query[model.Pick]
	uid string
}

func NewPickQuery(db *gorm.DB) *PickQuery {
	return &PickQuery{
		Query: Query[model.Pick]{
			db:     db,
			limit:  20,
			offset: 0,
			order:  "created_at DESC",
		},
	}
}

func (q *PickQuery) Limit(n int) *PickQuery {
	q.limit = n
	return q
}

func (q *PickQuery) Offset(n int) *PickQuery {
	q.offset = n
	return q
}

func (q *PickQuery) UID(uid string) *PickQuery {
	q.uid = uid
	return q
}

func (q *PickQuery) where() *gorm.DB {
	tx := q.db

	if q.uid != "" {
		tx = tx.Where("uid = ?", q.uid)
	}

	return tx
}

func (q *PickQuery) Get() []*model.Pick {
	return q.get(q.where().Model(&model.Pick{}))
}

func (q *PickQuery) One() *model.Pick {
	return q.one(q.where().Model(&model.Pick{}))
}

func (q *PickQuery) Count() int64 {
	return q.count(q.where().Model(&model.Pick{}))
}

func (q *PickQuery) Delete() error {
	return q.where().Delete(&model.Pick{}).Error
}
