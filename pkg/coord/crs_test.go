package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	all := List()
	require.Len(t, all, 2)
	assert.Equal(t, "WGS84", all[0].Name)
	assert.Equal(t, "CH1903+", all[1].Name)

	assert.True(t, Supported("WGS84"))
	assert.True(t, Supported("CH1903+"))
	assert.False(t, Supported("NAD83"))

	c, err := Describe("CH1903+")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Format)
	assert.NotEmpty(t, c.Description)

	_, err = Describe("NAD83")
	assert.ErrorIs(t, err, ErrUnknownCRS)
}

func TestEveryCRSHasProjection(t *testing.T) {
	for _, c := range List() {
		_, ok := projections[c.Name]
		assert.True(t, ok, c.Name)
	}
}
