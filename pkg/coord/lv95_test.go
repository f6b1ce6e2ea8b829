package coord

import (
	"math"
	"testing"
)

func TestLV95ToWGS84Origin(t *testing.T) {
	// projection center: all polynomial terms but the constants vanish
	lat, lon, alt := LV95ToWGS84(2_600_000, 1_200_000, 0)

	if math.Abs(lat-46.951) > 0.01 {
		t.Errorf("lat: %f", lat)
	}

	if math.Abs(lon-7.439) > 0.01 {
		t.Errorf("lon: %f", lon)
	}

	if math.Abs(alt-49.55) > 0.001 {
		t.Errorf("alt: %f", alt)
	}
}

func TestLV95ToWGS84(t *testing.T) {
	lat, lon, alt := LV95ToWGS84(2683256, 1248121, 408)

	if math.Abs(lat-47.378230) > 0.00001 || math.Abs(lon-8.541101) > 0.00001 {
		t.Errorf("result: %f, %f", lat, lon)
	}

	if math.Abs(alt-455.41) > 0.01 {
		t.Errorf("alt: %f", alt)
	}
}

func TestConvertBoth(t *testing.T) {
	// mutual consistency of the approximation pair near the
	// projection center, no exact equality expected
	points := [][3]float64{
		{2_600_000, 1_200_000, 0},
		{2601030, 1204583, 540},
		{2611000, 1208000, 450},
	}

	for _, p := range points {
		lat, lon, alt := LV95ToWGS84(p[0], p[1], p[2])
		e, n, h := WGS84ToLV95(lat, lon, alt)

		if math.Abs(e-p[0]) > 2 {
			t.Errorf("e: %f -> %f", p[0], e)
		}

		if math.Abs(n-p[1]) > 2 {
			t.Errorf("n: %f -> %f", p[1], n)
		}

		if math.Abs(h-p[2]) > 0.1 {
			t.Errorf("h: %f -> %f", p[2], h)
		}
	}
}
