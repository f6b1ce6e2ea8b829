package main

import (
	"errors"
	"fmt"

	"github.com/jroimartin/gocui"

	"github.com/ogerber/townpicker/internal/model"
)

const (
	townsView = "towns"
	townView  = "town"
)

type binding struct {
	view string
	key  any
	mod  gocui.Modifier
	f    func(_ *gocui.Gui, _ *gocui.View) error
}

func (app *App) setBindings() error {
	bindings := []binding{
		{"", gocui.KeyCtrlC, gocui.ModNone, app.stop},
		{"", 'q', gocui.ModNone, app.stop},
		{"", 'p', gocui.ModNone, app.doPick},
		{"", 'a', gocui.ModNone, app.showAll},
		{townsView, gocui.KeyArrowUp, gocui.ModNone, app.cursorUp},
		{townsView, gocui.KeyArrowDown, gocui.ModNone, app.cursorDown},
	}

	for _, b := range bindings {
		if err := app.g.SetKeybinding(b.view, b.key, b.mod, b.f); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(townsView, 0, 0, maxX/2-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}

		v.Frame = true
		v.Highlight = true
		v.Title = "Towns (p: pick, a: all, q: quit)"
		v.BgColor = gocui.ColorBlack | gocui.AttrBold
		v.SelBgColor = gocui.ColorWhite
	}

	if v, err := g.SetView(townView, maxX/2, 0, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}

		v.Frame = true
		v.Title = "Town details"
	}

	_, err := g.SetCurrentView(townsView)
	app.drawTown()

	return err
}

func (app *App) redraw() {
	if app.g == nil {
		return
	}

	app.g.Update(func(gui *gocui.Gui) error {
		if v, err := gui.View(townsView); err == nil {
			v.Clear()
			v.Title = app.title

			for _, t := range app.shown() {
				fmt.Fprintf(v, "%s\n", t.Name)
			}
		}

		app.drawTown()

		return nil
	})
}

func (app *App) cursorUp(_ *gocui.Gui, v *gocui.View) error {
	v.MoveCursor(0, -1, false)
	app.drawTown()

	return nil
}

func (app *App) cursorDown(_ *gocui.Gui, v *gocui.View) error {
	v.MoveCursor(0, 1, false)
	app.drawTown()

	return nil
}

func (app *App) drawTown() {
	var name string

	if v, err := app.g.View(townsView); err == nil {
		_, y := v.Cursor()
		l, _ := v.Line(y)
		name = l
	}

	if v, err := app.g.View(townView); err == nil {
		v.Clear()

		t := app.byName(name)

		if t == nil {
			fmt.Fprintf(v, "no town")

			return
		}

		fmt.Fprintf(v, "Name: %s\n", t.Name)
		fmt.Fprintf(v, "PLZ: %d\n", t.PLZ)
		fmt.Fprintf(v, "Canton: %s\n", t.Canton)
		fmt.Fprintf(v, "Commune: %s\n", t.Commune)
		fmt.Fprintf(v, "\nLV95: E %.1f  N %.1f\n", t.E, t.N)
		fmt.Fprintf(v, "WGS84: %.5f, %.5f\n", t.Lat, t.Lon)

		if app.pick != nil {
			fmt.Fprintf(v, "\nCluster: %d\n", t.Cluster)
		}
	}
}

func (app *App) byName(name string) *model.TownDTO {
	for _, t := range app.shown() {
		if t.Name == name {
			return t
		}
	}

	return nil
}
