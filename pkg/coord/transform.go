package coord

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCRS is returned for names absent from the registry.
	ErrUnknownCRS = errors.New("unknown CRS")
	// ErrUnsupportedCRS is returned for CRS with no projection pair.
	ErrUnsupportedCRS = errors.New("unsupported CRS")
	// ErrInvalidInput is returned for malformed coordinate batches.
	ErrInvalidInput = errors.New("invalid input")
)

// Point is a coordinate tuple of 2 (horizontal only) or 3 (with
// height) components. Axis order depends on the CRS, see List.
type Point []float64

// projection is a forward/inverse pair to and from WGS84 over
// (lat|e, lon|n, h) scalars.
type projection struct {
	toWGS84   func(a, b, h float64) (float64, float64, float64)
	fromWGS84 func(lat, lon, h float64) (float64, float64, float64)
}

func identity(a, b, h float64) (float64, float64, float64) {
	return a, b, h
}

// Every transform pivots through WGS84, so a new CRS needs only its
// own pair here plus a registry entry.
var projections = map[string]projection{
	"WGS84":   {toWGS84: identity, fromWGS84: identity},
	"CH1903+": {toWGS84: LV95ToWGS84, fromWGS84: WGS84ToLV95},
}

// Transform converts a batch of points from one named CRS to another,
// pivoting through WGS84. All points must share a dimensionality of 2
// or 3; 2-D input yields 2-D output with height treated as zero
// internally. The input is never mutated.
func Transform(points []Point, from, to string) ([]Point, error) {
	if !Supported(from) {
		return nil, fmt.Errorf("%w: source %s", ErrUnsupportedCRS, from)
	}

	if !Supported(to) {
		return nil, fmt.Errorf("%w: target %s", ErrUnsupportedCRS, to)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidInput)
	}

	dim := len(points[0])

	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("%w: point dimensionality %d", ErrInvalidInput, dim)
	}

	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: mixed dimensionality at index %d", ErrInvalidInput, i)
		}
	}

	res := make([]Point, len(points))

	if from == to {
		for i, p := range points {
			p1 := make(Point, dim)
			copy(p1, p)
			res[i] = p1
		}

		return res, nil
	}

	fwd, ok := projections[from]
	if !ok {
		return nil, fmt.Errorf("%w: source %s", ErrUnsupportedCRS, from)
	}

	inv, ok := projections[to]
	if !ok {
		return nil, fmt.Errorf("%w: target %s", ErrUnsupportedCRS, to)
	}

	for i, p := range points {
		var h float64
		if dim == 3 {
			h = p[2]
		}

		a, b, h := fwd.toWGS84(p[0], p[1], h)
		a, b, h = inv.fromWGS84(a, b, h)

		if dim == 3 {
			res[i] = Point{a, b, h}
		} else {
			res[i] = Point{a, b}
		}
	}

	return res, nil
}
