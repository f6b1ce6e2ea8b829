package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/ogerber/townpicker/internal/model"
)

type DatabaseManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB) *DatabaseManager {
	m := &DatabaseManager{
		db:     db,
		logger: slog.With("logger", "dbm"),
	}

	return m
}

func (mm *DatabaseManager) Create(s any) error {
	if mm == nil || mm.db == nil {
		return nil
	}

	err := mm.db.Create(s).Error

	if err != nil {
		mm.logger.Error("error create object", slog.Any("error", err))
	}

	return err
}

func (mm *DatabaseManager) Save(s any) error {
	if mm == nil || mm.db == nil {
		return nil
	}

	err := mm.db.Save(s).Error

	if err != nil {
		mm.logger.Error("error saving object", slog.Any("error", err))
	}

	return err
}

func (mm *DatabaseManager) TownQuery() *TownQuery {
	return NewTownQuery(mm.db)
}

func (mm *DatabaseManager) PickQuery() *PickQuery {
	return NewPickQuery(mm.db)
}

func (mm *DatabaseManager) Migrate() error {
	if mm == nil || mm.db == nil {
		return fmt.Errorf("no database")
	}

	if err := mm.db.AutoMigrate(
		&model.Town{},
		&model.Pick{},
	); err != nil {
		return err
	}

	return nil
}

// ReplaceTowns swaps the towns table content for a freshly loaded
// dataset in one transaction.
func (mm *DatabaseManager) ReplaceTowns(towns []*model.Town) error {
	if mm == nil || mm.db == nil {
		return fmt.Errorf("no database")
	}

	return mm.db.Transaction(func(tx *gorm.DB) error {
		q := NewTownQuery(tx.Session(&gorm.Session{AllowGlobalUpdate: true}))

		if err := q.Delete(); err != nil {
			return err
		}

		return tx.CreateInBatches(towns, 500).Error
	})
}
