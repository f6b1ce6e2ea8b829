package repository

import (
	"github.com/ogerber/townpicker/internal/callbacks"
	"github.com/ogerber/townpicker/internal/model"
)

type TownsRepository interface {
	Start() error
	Stop()
	Get(id uint) *model.Town
	ForEach(f func(t *model.Town) bool)
	All() []*model.Town
	Find(name string) []*model.Town
	Total() int
	ChangeCallback() *callbacks.Callback[[]*model.Town]
}
