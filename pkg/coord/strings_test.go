package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	s   string
	crs string
	p   Point
}

func TestStringConvert(t *testing.T) {
	data := []testData{
		{"E=2600000 N=1200000", "CH1903+", Point{2600000, 1200000}},
		{"e2600000,n1200000", "CH1903+", Point{2600000, 1200000}},
		{"2683256 1248121 408", "CH1903+", Point{2683256, 1248121, 408}},
		{"2683256.5; 1248121.25", "CH1903+", Point{2683256.5, 1248121.25}},
		{"46.95 7.44", "WGS84", Point{46.95, 7.44}},
		{"46.95,  -7.44", "WGS84", Point{46.95, -7.44}},
		{"46.95, 7.44, 550", "WGS84", Point{46.95, 7.44, 550}},
		{"46.95N  7.44E", "WGS84", Point{46.95, 7.44}},
		{"46.95N, 7.44w", "WGS84", Point{46.95, -7.44}},
	}

	for _, d := range data {
		p, crs, err := StringToPoint(d.s)
		require.NoError(t, err, d.s)
		assert.Equal(t, d.crs, crs, d.s)
		assert.Equal(t, d.p, p, d.s)
	}
}

func TestStringConvertBad(t *testing.T) {
	for _, s := range []string{"", "hello", "46.95", "N=12 E=13"} {
		_, _, err := StringToPoint(s)
		assert.ErrorIs(t, err, ErrInvalidInput, s)
	}
}
