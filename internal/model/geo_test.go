package model

import (
	"math"
	"testing"
)

func TestDistBea(t *testing.T) {
	// Bern -> Zurich is roughly 95 km to the north-east
	dist, bea := DistBea(46.948, 7.447, 47.378, 8.541)

	if math.Abs(dist-95000) > 2000 {
		t.Errorf("dist: %f", dist)
	}

	if bea < 50 || bea > 70 {
		t.Errorf("bea: %f", bea)
	}
}
