package database

import (
	"gorm.io/gorm"

	"github.com/ogerber/townpicker/internal/model"
)

type TownQuery struct {
	Query[model.Town]
	id      uint
	name    string
	canton  string
	plz     int
	cluster *int
}

func NewTownQuery(db *gorm.DB) *TownQuery {
	return &TownQuery{
		Query: Query[model.Town]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "name",
		},
	}
}

func (q *TownQuery) Order(s string) *TownQuery {
	q.order = s
	return q
}

func (q *TownQuery) Limit(n int) *TownQuery {
	q.limit = n
	return q
}

func (q *TownQuery) Offset(n int) *TownQuery {
	q.offset = n
	return q
}

func (q *TownQuery) Id(id uint) *TownQuery {
	q.id = id
	return q
}

// Name filters by case-insensitive substring match.
func (q *TownQuery) Name(name string) *TownQuery {
	q.name = name
	return q
}

func (q *TownQuery) Canton(canton string) *TownQuery {
	q.canton = canton
	return q
}

func (q *TownQuery) PLZ(plz int) *TownQuery {
	q.plz = plz
	return q
}

func (q *TownQuery) Cluster(c int) *TownQuery {
	q.cluster = &c
	return q
}

func (q *TownQuery) where() *gorm.DB {
	tx := q.db

	if q.id != 0 {
		tx = tx.Where("id = ?", q.id)
	}

	if q.name != "" {
		tx = tx.Where("name LIKE ?", "%"+q.name+"%")
	}

	if q.canton != "" {
		tx = tx.Where("canton = ?", q.canton)
	}

	if q.plz != 0 {
		tx = tx.Where("plz = ?", q.plz)
	}

	if q.cluster != nil {
		tx = tx.Where("cluster = ?", *q.cluster)
	}

	return tx
}

func (q *TownQuery) Get() []*model.Town {
	return q.get(q.where().Model(&model.Town{}))
}

func (q *TownQuery) One() *model.Town {
	return q.one(q.where().Model(&model.Town{}))
}

func (q *TownQuery) Count() int64 {
	return q.count(q.where().Model(&model.Town{}))
}

func (q *TownQuery) Update(updates map[string]any) error {
	return q.updateOrError(q.where().Model(&model.Town{}), updates)
}

func (q *TownQuery) Delete() error {
	return q.where().Delete(&model.Town{}).Error
}
