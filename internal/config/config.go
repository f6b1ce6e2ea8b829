package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ogerber/townpicker/internal/layers"
)

type AppConfig struct {
	k *koanf.Koanf
}

func NewAppConfig() *AppConfig {
	c := &AppConfig{k: koanf.New(".")}

	setDefaults(c.k)

	return c
}

func (c *AppConfig) Load(filename ...string) bool {
	loaded := false

	for _, name := range filename {
		if err := c.k.Load(file.Provider(name), yaml.Parser()); err != nil {
			slog.Info(fmt.Sprintf("error loading config: %s", err.Error()))
		} else {
			loaded = true
		}
	}

	return loaded
}

func (c *AppConfig) LoadEnv(prefix string) error {
	return c.k.Load(env.Provider(prefix, ".", func(s string) string {
		s1 := strings.ToLower(strings.TrimPrefix(s, prefix))
		for _, pr := range []string{"map_", "picker_"} {
			if strings.HasPrefix(s1, pr) {
				return strings.Replace(s1, "_", ".", 1)
			}
		}

		return s1
	}), nil)
}

func (c *AppConfig) Bool(key string) bool {
	return c.k.Bool(key)
}

func (c *AppConfig) String(key string) string {
	return c.k.String(key)
}

func (c *AppConfig) Float64(key string) float64 {
	return c.k.Float64(key)
}

func (c *AppConfig) Int(key string) int {
	return c.k.Int(key)
}

func (c *AppConfig) Set(key string, v any) error {
	return c.k.Set(key, v)
}

func (c *AppConfig) ApiAddr() string {
	return c.k.String("api_addr")
}

func (c *AppConfig) DB() string {
	return c.k.String("db")
}

func (c *AppConfig) TownsFile() string {
	return c.k.String("towns_file")
}

func (c *AppConfig) WatchTownsFile() bool {
	return c.k.Bool("towns_watch")
}

func (c *AppConfig) MapLat() float64 {
	return c.k.Float64("map.lat")
}

func (c *AppConfig) MapLon() float64 {
	return c.k.Float64("map.lon")
}

func (c *AppConfig) MapZoom() int {
	return c.k.Int("map.zoom")
}

// Layers returns tile layers from the config, falling back to the
// built-in set.
func (c *AppConfig) Layers() []*layers.LayerDescription {
	if !c.k.Exists("map.layers") {
		return layers.GetDefaultLayers()
	}

	res := make([]*layers.LayerDescription, 0)

	if err := c.k.Unmarshal("map.layers", &res); err != nil || len(res) == 0 {
		return layers.GetDefaultLayers()
	}

	return res
}

func (c *AppConfig) PickerDefaultN() int {
	return c.k.Int("picker.n")
}

func (c *AppConfig) PickerHistory() int {
	return c.k.Int("picker.history")
}

func setDefaults(k *koanf.Koanf) {
	k.Set("api_addr", ":8080")
	k.Set("db", "towns.sqlite")
	k.Set("towns_file", "")
	k.Set("towns_watch", true)

	// map defaults centered on the LV95 projection origin
	k.Set("map.lat", 46.951)
	k.Set("map.lon", 7.439)
	k.Set("map.zoom", 8)

	k.Set("picker.n", 10)
	k.Set("picker.history", 20)
}
