package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewAppConfig()

	require.Equal(t, ":8080", c.ApiAddr())
	require.Equal(t, 10, c.PickerDefaultN())
	require.InDelta(t, 46.951, c.MapLat(), 0.001)
	require.Len(t, c.Layers(), 2)
}

func TestLayersFromFile(t *testing.T) {
	f, err := os.CreateTemp("", "townpicker_test")
	require.NoError(t, err)

	defer os.Remove(f.Name())

	fmt.Fprint(f, "map:\n    layers:\n        - name: Custom\n          url: \"https://tiles.example.com/{z}/{x}/{y}.png\"\n          max_zoom: 16\n")
	f.Close()

	c := NewAppConfig()
	require.True(t, c.Load(f.Name()))

	l := c.Layers()
	require.Len(t, l, 1)
	require.Equal(t, "Custom", l[0].Name)
	require.Equal(t, 16, l[0].MaxZoom)
}

func TestLoadFile(t *testing.T) {
	f, err := os.CreateTemp("", "townpicker_test")
	require.NoError(t, err)

	defer os.Remove(f.Name())

	fmt.Fprint(f, "---\ntowns_file: /tmp/towns.csv\nmap:\n    zoom: 11\n")
	f.Close()

	c := NewAppConfig()
	require.True(t, c.Load(f.Name()))

	require.Equal(t, "/tmp/towns.csv", c.TownsFile())
	require.Equal(t, 11, c.MapZoom())
	// untouched defaults survive a partial file
	require.Equal(t, "towns.sqlite", c.DB())
}

func TestLoadMissingFile(t *testing.T) {
	c := NewAppConfig()
	require.False(t, c.Load("/nonexistent/townpicker.yml"))
}
