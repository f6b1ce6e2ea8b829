package model

import (
	"fmt"
	"time"
)

// Town is one row of the reference dataset, LV95 coordinates as
// shipped plus the WGS84 annotation computed on load.
type Town struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	Name      string    `gorm:"index;size:255" json:"name"`
	PLZ       int       `gorm:"index" json:"plz"`
	Canton    string    `gorm:"index;size:8" json:"canton"`
	Commune   string    `gorm:"size:255" json:"commune"`
	E         float64   `json:"e"`
	N         float64   `json:"n"`
	H         float64   `json:"h"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Cluster   int       `gorm:"index" json:"cluster"`
}

type TownDTO struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	PLZ     int     `json:"plz"`
	Canton  string  `json:"canton"`
	Commune string  `json:"commune"`
	E       float64 `json:"e"`
	N       float64 `json:"n"`
	H       float64 `json:"h"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Cluster int     `json:"cluster"`
}

func (t *Town) String() string {
	if t == nil {
		return "nil"
	}

	return fmt.Sprintf("%s %d %s", t.Name, t.PLZ, t.Canton)
}

func (t *Town) GetName() string {
	if t == nil {
		return ""
	}

	return t.Name
}

// Key identifies a dataset row for duplicate filtering.
func (t *Town) Key() string {
	if t == nil {
		return ""
	}

	return fmt.Sprintf("%s|%d", t.Name, t.PLZ)
}

func (t *Town) DTO() *TownDTO {
	if t == nil {
		return nil
	}

	return &TownDTO{
		ID:      t.ID,
		Name:    t.Name,
		PLZ:     t.PLZ,
		Canton:  t.Canton,
		Commune: t.Commune,
		E:       t.E,
		N:       t.N,
		H:       t.H,
		Lat:     t.Lat,
		Lon:     t.Lon,
		Cluster: t.Cluster,
	}
}
