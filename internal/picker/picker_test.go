package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogerber/townpicker/internal/model"
	"github.com/ogerber/townpicker/internal/repository"
)

func getTowns(t *testing.T) []*model.Town {
	t.Helper()

	r := repository.NewTownsFileRepo("", false)
	require.NoError(t, r.Start())

	t.Cleanup(r.Stop)

	return r.All()
}

func TestPick(t *testing.T) {
	towns := getTowns(t)

	p := NewSeeded(42)

	pick, picked, err := p.Pick(towns, 5)
	require.NoError(t, err)
	require.Len(t, picked, 5)
	require.NotEmpty(t, pick.UID)
	require.Equal(t, 5, pick.N)
	require.Len(t, pick.TownIDs, 5)

	// one town per cluster, no town twice
	seen := make(map[uint]bool)
	clusterSeen := make(map[int]bool)

	for _, town := range picked {
		assert.False(t, seen[town.ID])
		assert.False(t, clusterSeen[town.Cluster])
		seen[town.ID] = true
		clusterSeen[town.Cluster] = true
	}
}

func TestPickAll(t *testing.T) {
	towns := getTowns(t)

	_, picked, err := New().Pick(towns, len(towns))
	require.NoError(t, err)
	require.Len(t, picked, len(towns))
}

func TestPickDoesNotMutate(t *testing.T) {
	towns := getTowns(t)

	for _, town := range towns {
		town.Cluster = -1
	}

	_, _, err := New().Pick(towns, 3)
	require.NoError(t, err)

	for _, town := range towns {
		assert.Equal(t, -1, town.Cluster)
	}
}

func TestPickBadN(t *testing.T) {
	towns := getTowns(t)

	_, _, err := New().Pick(towns, 0)
	require.Error(t, err)

	_, _, err = New().Pick(towns, len(towns)+1)
	require.Error(t, err)
}
