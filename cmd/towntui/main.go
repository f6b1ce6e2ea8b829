package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/jroimartin/gocui"

	"github.com/ogerber/townpicker/internal/model"
)

type App struct {
	g      *gocui.Gui
	remote *RemoteAPI
	n      int

	mx    sync.RWMutex
	towns []*model.TownDTO
	pick  *model.PickDTO
	title string
}

func NewApp(addr string, n int) *App {
	return &App{
		remote: NewRemoteAPI(addr),
		n:      n,
		title:  "Towns (p: pick, a: all, q: quit)",
	}
}

func (app *App) Run(ctx context.Context) error {
	towns, err := app.remote.GetTowns(ctx)
	if err != nil {
		return err
	}

	sort.Slice(towns, func(i, j int) bool { return towns[i].Name < towns[j].Name })

	app.towns = towns

	app.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}

	defer app.g.Close()

	app.g.SetManagerFunc(app.layout)

	if err := app.setBindings(); err != nil {
		return err
	}

	app.redraw()

	if err := app.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}

	return nil
}

func (app *App) stop(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (app *App) shown() []*model.TownDTO {
	app.mx.RLock()
	defer app.mx.RUnlock()

	if app.pick != nil {
		return app.pick.Towns
	}

	return app.towns
}

func (app *App) doPick(_ *gocui.Gui, _ *gocui.View) error {
	pick, err := app.remote.Pick(context.Background(), app.n)

	app.mx.Lock()
	if err != nil {
		app.title = "pick error: " + err.Error()
	} else {
		app.pick = pick
		app.title = fmt.Sprintf("Pick %d of %d (a: all, q: quit)", pick.N, len(app.towns))
	}
	app.mx.Unlock()

	app.redraw()

	return nil
}

func (app *App) showAll(_ *gocui.Gui, _ *gocui.View) error {
	app.mx.Lock()
	app.pick = nil
	app.title = "Towns (p: pick, a: all, q: quit)"
	app.mx.Unlock()

	app.redraw()

	return nil
}

func main() {
	server := flag.String("server", "localhost:8080", "server address")
	n := flag.Int("n", 10, "towns per pick")
	debug := flag.Bool("debug", false, "log to towntui.log")
	flag.Parse()

	if *debug {
		f, err := os.Create("towntui.log")
		if err != nil {
			panic(err)
		}

		defer f.Close()

		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	app := NewApp(*server, *n)

	if err := app.Run(context.Background()); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
