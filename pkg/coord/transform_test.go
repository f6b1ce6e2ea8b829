package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformIdentity(t *testing.T) {
	in := []Point{{2600000, 1200000, 100}, {2683256, 1248121, 408}}

	for _, name := range []string{"WGS84", "CH1903+"} {
		out, err := Transform(in, name, name)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestTransformBern(t *testing.T) {
	out, err := Transform([]Point{{2600000, 1200000, 0}}, "CH1903+", "WGS84")
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.InDelta(t, 46.951, out[0][0], 0.01)
	assert.InDelta(t, 7.439, out[0][1], 0.01)
	assert.InDelta(t, 49.55, out[0][2], 0.001)
}

func TestTransformRoundTrip(t *testing.T) {
	in := []Point{{2600000, 1200000, 0}, {2601030, 1204583, 540}}

	wgs, err := Transform(in, "CH1903+", "WGS84")
	require.NoError(t, err)

	back, err := Transform(wgs, "WGS84", "CH1903+")
	require.NoError(t, err)

	for i, p := range back {
		assert.InDelta(t, in[i][0], p[0], 2)
		assert.InDelta(t, in[i][1], p[1], 2)
		assert.InDelta(t, in[i][2], p[2], 0.1)
	}
}

func TestTransformDimensionality(t *testing.T) {
	out, err := Transform([]Point{{2600000, 1200000}}, "CH1903+", "WGS84")
	require.NoError(t, err)
	require.Len(t, out[0], 2)

	out, err = Transform([]Point{{2600000, 1200000, 500}}, "CH1903+", "WGS84")
	require.NoError(t, err)
	require.Len(t, out[0], 3)

	// 2-D input is projected as h=0
	out2, err := Transform([]Point{{2600000, 1200000}}, "CH1903+", "WGS84")
	require.NoError(t, err)

	out3, err := Transform([]Point{{2600000, 1200000, 0}}, "CH1903+", "WGS84")
	require.NoError(t, err)

	assert.Equal(t, out3[0][0], out2[0][0])
	assert.Equal(t, out3[0][1], out2[0][1])
}

func TestTransformErrors(t *testing.T) {
	_, err := Transform([]Point{{1, 2}}, "CH1903+", "NAD83")
	assert.ErrorIs(t, err, ErrUnsupportedCRS)
	assert.ErrorContains(t, err, "target")

	_, err = Transform([]Point{{1, 2}}, "NAD83", "WGS84")
	assert.ErrorIs(t, err, ErrUnsupportedCRS)
	assert.ErrorContains(t, err, "source")

	_, err = Transform(nil, "WGS84", "WGS84")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Transform([]Point{{1, 2}, {1, 2, 3}}, "WGS84", "CH1903+")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Transform([]Point{{1}}, "WGS84", "CH1903+")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Transform([]Point{{1, 2, 3, 4}}, "WGS84", "CH1903+")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransformBatchConsistency(t *testing.T) {
	in := []Point{
		{2600000, 1200000, 0},
		{2683256, 1248121, 408},
		{2601030, 1204583, 540},
	}

	batch, err := Transform(in, "CH1903+", "WGS84")
	require.NoError(t, err)

	for i, p := range in {
		one, err := Transform([]Point{p}, "CH1903+", "WGS84")
		require.NoError(t, err)
		require.Equal(t, batch[i], one[0])
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	in := []Point{{2600000, 1200000, 0}}

	_, err := Transform(in, "CH1903+", "WGS84")
	require.NoError(t, err)

	assert.True(t, in[0][0] == 2600000 && in[0][1] == 1200000 && math.Abs(in[0][2]) == 0)
}
