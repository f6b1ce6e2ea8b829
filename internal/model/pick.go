package model

import (
	"time"
)

// Pick is one sampling session: n towns, one per spatial cluster.
type Pick struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UID       string    `gorm:"uniqueIndex;size:255" json:"uid"`
	CreatedAt time.Time `json:"time"`
	N         int       `json:"n"`
	TownIDs   []uint    `gorm:"serializer:json" json:"town_ids"`
}

type PickDTO struct {
	UID   string     `json:"uid"`
	Time  time.Time  `json:"time"`
	N     int        `json:"n"`
	Towns []*TownDTO `json:"towns"`
}
