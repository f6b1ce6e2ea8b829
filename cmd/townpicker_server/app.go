package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/ogerber/townpicker/internal/model"
	"github.com/ogerber/townpicker/internal/wshandler"
)

func (app *App) RandomTown() *model.Town {
	towns := app.towns.All()

	if len(towns) == 0 {
		return nil
	}

	return towns[rand.Intn(len(towns))]
}

// NearestTown resolves through a short-lived cache keyed by the
// query point rounded to about 100 m.
func (app *App) NearestTown(lat, lon float64) (*model.Town, float64) {
	t := app.nearest.Load(fmt.Sprintf("%.3f|%.3f", lat, lon))

	if t == nil {
		return nil, 0
	}

	dist, _ := model.DistBea(lat, lon, t.Lat, t.Lon)

	return t, dist
}

func (app *App) findNearest(key string) *model.Town {
	var lat, lon float64

	if _, err := fmt.Sscanf(key, "%f|%f", &lat, &lon); err != nil {
		return nil
	}

	var nearest *model.Town

	best := math.MaxFloat64

	app.towns.ForEach(func(t *model.Town) bool {
		dist, _ := model.DistBea(lat, lon, t.Lat, t.Lon)

		if dist < best {
			best = dist
			nearest = t
		}

		return true
	})

	return nearest
}

// DoPick samples n towns, stores the session and notifies ws clients.
func (app *App) DoPick(n int) (*model.PickDTO, error) {
	pick, picked, err := app.picker.Pick(app.towns.All(), n)
	if err != nil {
		return nil, err
	}

	app.dbm.Save(pick)

	dto := &model.PickDTO{
		UID:   pick.UID,
		Time:  pick.CreatedAt,
		N:     pick.N,
		Towns: make([]*model.TownDTO, 0, len(picked)),
	}

	for _, t := range picked {
		dto.Towns = append(dto.Towns, t.DTO())

		if err := app.dbm.TownQuery().Id(t.ID).Update(map[string]any{"cluster": t.Cluster}); err != nil {
			app.logger.Warn("error saving cluster", slog.Any("error", err))
		}
	}

	app.pruneHistory()

	picksMetric.Inc()

	app.ws.All(func(h *wshandler.JSONWsHandler) bool {
		h.SendPick(dto)

		return true
	})

	return dto, nil
}

// pruneHistory drops stored picks beyond the configured history depth.
func (app *App) pruneHistory() {
	keep := app.config.PickerHistory()

	if keep <= 0 {
		return
	}

	total := int(app.dbm.PickQuery().Count())

	if total <= keep {
		return
	}

	for _, old := range app.dbm.PickQuery().Limit(total).Offset(keep).Get() {
		if err := app.dbm.PickQuery().UID(old.UID).Delete(); err != nil {
			app.logger.Warn("error pruning pick history", slog.Any("error", err))
		}
	}
}

func (app *App) pickDTO(p *model.Pick) *model.PickDTO {
	dto := &model.PickDTO{
		UID:   p.UID,
		Time:  p.CreatedAt,
		N:     p.N,
		Towns: make([]*model.TownDTO, 0, len(p.TownIDs)),
	}

	for _, id := range p.TownIDs {
		if t := app.towns.Get(id); t != nil {
			dto.Towns = append(dto.Towns, t.DTO())
		}
	}

	return dto
}
