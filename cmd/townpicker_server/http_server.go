package main

import (
	"embed"
	"errors"
	"net/http"
	"runtime/pprof"
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ogerber/townpicker/internal/model"
	"github.com/ogerber/townpicker/internal/wshandler"
	"github.com/ogerber/townpicker/pkg/coord"
	"github.com/ogerber/townpicker/pkg/log"
	"github.com/ogerber/townpicker/staticfiles"
)

//go:embed templates
var templates embed.FS

type HttpApi struct {
	f    *fiber.App
	addr string
}

func (api *HttpApi) Listen() error {
	return api.f.Listen(api.addr)
}

func (api *HttpApi) Shutdown() error {
	return api.f.Shutdown()
}

func NewHttpApi(app *App, addr string) *HttpApi {
	api := &HttpApi{addr: addr}

	engine := html.NewFileSystem(http.FS(templates), ".html")

	engine.Delims("[[", "]]")

	api.f = fiber.New(fiber.Config{EnablePrintRoutes: false, DisableStartupMessage: true, Views: engine})

	api.f.Use(log.NewFiberLogger(&log.LoggerConfig{Name: "http", DoMetrics: true, LogErrorsOnly: true}))

	staticfiles.Embed(api.f)

	api.f.Get("/", getIndexHandler())
	api.f.Get("/map", getMapHandler())

	api.f.Get("/config", getConfigHandler(app))
	api.f.Get("/crs", getCrsHandler())

	api.f.Get("/town", getTownsHandler(app))
	api.f.Get("/town/random", getRandomTownHandler(app))
	api.f.Get("/town/nearest", getNearestTownHandler(app))

	api.f.Get("/pick", getPickHandler(app))
	api.f.Get("/picks", getPicksHandler(app))

	api.f.Post("/transform", getTransformHandler(app))

	api.f.Get("/ws", getWsHandler(app))

	api.f.Get("/stack", getStackHandler())
	api.f.Get("/metrics", getMetricsHandler())

	return api
}

func getIndexHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := fiber.Map{
			"page": "towns",
			"js":   []string{"towns.js"},
		}

		return ctx.Render("templates/index", data, "templates/header")
	}
}

func getMapHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := fiber.Map{
			"page": "map",
			"js":   []string{"map.js"},
		}

		return ctx.Render("templates/map", data, "templates/header")
	}
}

func getConfigHandler(app *App) fiber.Handler {
	m := make(map[string]any)
	m["lat"] = app.config.MapLat()
	m["lon"] = app.config.MapLon()
	m["zoom"] = app.config.MapZoom()
	m["version"] = gitRevision
	m["layers"] = app.config.Layers()

	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(m)
	}
}

func getCrsHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(coord.List())
	}
}

func getTownsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		q := app.dbm.TownQuery()

		if name := ctx.Query("name"); name != "" {
			q = q.Name(name)
		}

		if canton := ctx.Query("canton"); canton != "" {
			q = q.Canton(canton)
		}

		if plz := ctx.QueryInt("plz"); plz > 0 {
			q = q.PLZ(plz)
		}

		if cluster := ctx.QueryInt("cluster", -1); cluster >= 0 {
			q = q.Cluster(cluster)
		}

		if limit := ctx.QueryInt("limit"); limit > 0 {
			q = q.Limit(limit)
		}

		if offset := ctx.QueryInt("offset"); offset > 0 {
			q = q.Offset(offset)
		}

		towns := q.Get()
		res := make([]*model.TownDTO, 0, len(towns))

		for _, t := range towns {
			res = append(res, t.DTO())
		}

		return ctx.JSON(res)
	}
}

func getRandomTownHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		town := app.RandomTown()

		if town == nil {
			return ctx.SendStatus(fiber.StatusNotFound)
		}

		return ctx.JSON(town.DTO())
	}
}

func getNearestTownHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		lat, err1 := strconv.ParseFloat(ctx.Query("lat"), 64)
		lon, err2 := strconv.ParseFloat(ctx.Query("lon"), 64)

		if err1 != nil || err2 != nil {
			return fiber.NewError(fiber.StatusBadRequest, "need lat and lon")
		}

		town, dist := app.NearestTown(lat, lon)

		if town == nil {
			return ctx.SendStatus(fiber.StatusNotFound)
		}

		return ctx.JSON(fiber.Map{"town": town.DTO(), "distance": dist})
	}
}

func getPickHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		n := ctx.QueryInt("n", app.config.PickerDefaultN())

		dto, err := app.DoPick(n)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return ctx.JSON(dto)
	}
}

func getPicksHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		picks := app.dbm.PickQuery().Limit(app.config.PickerHistory()).Get()

		res := make([]*model.PickDTO, 0, len(picks))
		for _, p := range picks {
			res = append(res, app.pickDTO(p))
		}

		return ctx.JSON(res)
	}
}

type transformRequest struct {
	Points []coord.Point `json:"points"`
	From   string        `json:"from"`
	To     string        `json:"to"`
}

func getTransformHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		req := new(transformRequest)

		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := coord.Transform(req.Points, req.From, req.To)

		if err != nil {
			if errors.Is(err, coord.ErrUnsupportedCRS) || errors.Is(err, coord.ErrUnknownCRS) || errors.Is(err, coord.ErrInvalidInput) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			return err
		}

		transformsMetric.With(prometheus.Labels{"from": req.From, "to": req.To}).Inc()

		return ctx.JSON(fiber.Map{"points": res, "from": req.From, "to": req.To})
	}
}

func getWsHandler(app *App) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		name := uuid.NewString()

		h := wshandler.NewHandler(app.logger, name, c)

		app.ws.Add(h)
		h.Listen()
		app.ws.Remove(name)
	})
}

func getStackHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return pprof.Lookup("goroutine").WriteTo(ctx.Response().BodyWriter(), 1)
	}
}

func getMetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{DisableCompression: true},
	))
}
