package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ogerber/townpicker/internal/cache"
	"github.com/ogerber/townpicker/internal/config"
	"github.com/ogerber/townpicker/internal/database"
	"github.com/ogerber/townpicker/internal/model"
	"github.com/ogerber/townpicker/internal/picker"
	"github.com/ogerber/townpicker/internal/repository"
	"github.com/ogerber/townpicker/internal/wshandler"
	"github.com/ogerber/townpicker/pkg/util"
)

var (
	gitRevision = "unknown"
	gitBranch   = "unknown"
)

type App struct {
	logger *slog.Logger
	config *config.AppConfig

	towns  repository.TownsRepository
	dbm    *database.DatabaseManager
	picker *picker.Picker

	ws      *util.Holder[*wshandler.JSONWsHandler]
	nearest *cache.Cache[*model.Town]
}

func NewApp(cfg *config.AppConfig) *App {
	app := &App{
		logger: slog.Default(),
		config: cfg,
		towns:  repository.NewTownsFileRepo(cfg.TownsFile(), cfg.WatchTownsFile()),
		picker: picker.New(),
		ws:     util.NewHolder[*wshandler.JSONWsHandler](),
	}

	db, err := database.GetDatabase(cfg.DB(), cfg.Bool("debug"))
	if err != nil {
		app.logger.Error("error opening db", slog.Any("error", err))

		return nil
	}

	app.dbm = database.New(db)
	app.nearest = cache.NewWithTTL(time.Minute, app.findNearest)

	return app
}

func (app *App) Run() error {
	if err := app.dbm.Migrate(); err != nil {
		return err
	}

	// mirror every (re)loaded dataset into sqlite
	app.towns.ChangeCallback().Subscribe("db", func(towns []*model.Town) bool {
		if err := app.dbm.ReplaceTowns(towns); err != nil {
			app.logger.Error("error mirroring towns", slog.Any("error", err))
		}

		return true
	})

	// announce reloads to connected map clients
	app.towns.ChangeCallback().Subscribe("ws", func(towns []*model.Town) bool {
		res := make([]*model.TownDTO, 0, len(towns))
		for _, t := range towns {
			res = append(res, t.DTO())
		}

		app.ws.All(func(h *wshandler.JSONWsHandler) bool {
			h.SendTowns(res)

			return true
		})

		return true
	})

	if err := app.towns.Start(); err != nil {
		return err
	}

	defer app.towns.Stop()

	api := NewHttpApi(app, app.config.ApiAddr())

	go func() {
		if err := api.Listen(); err != nil {
			app.logger.Error("api error", slog.Any("error", err))
		}
	}()

	app.logger.Info("listening on " + app.config.ApiAddr())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c

	return api.Shutdown()
}

func main() {
	conf := flag.String("config", "townpicker.yml", "name of config file")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg := config.NewAppConfig()
	cfg.Load(*conf)

	if err := cfg.LoadEnv("TOWNPICKER_"); err != nil {
		fmt.Println(err)

		return
	}

	if *debug {
		cfg.Set("debug", true)
	}

	var opts *slog.HandlerOptions
	if cfg.Bool("debug") {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	} else {
		opts = &slog.HandlerOptions{Level: slog.LevelInfo}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))

	slog.Info(fmt.Sprintf("version %s:%s", gitBranch, gitRevision))

	app := NewApp(cfg)

	if app == nil {
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		slog.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}
