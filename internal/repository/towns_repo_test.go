package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogerber/townpicker/internal/model"
)

const testCsv = `Ortschaftsname;PLZ;Zusatzziffer;Gemeindename;BFS-Nr;Kantonskürzel;E;N;Sprache
Bern;3000;0;Bern;351;BE;2600000;1199750;de
Bern;3000;2;Bern;351;BE;2600000;1199750;de
Zürich;8000;0;Zürich;261;ZH;2683256;1248121;de
`

func TestReadTowns(t *testing.T) {
	towns, err := ReadTowns(strings.NewReader(testCsv))
	require.NoError(t, err)

	// duplicate Bern/3000 row is dropped
	require.Len(t, towns, 2)
	assert.Equal(t, "Bern", towns[0].Name)
	assert.Equal(t, 3000, towns[0].PLZ)
	assert.Equal(t, "BE", towns[0].Canton)
	assert.EqualValues(t, 1, towns[0].ID)
	assert.EqualValues(t, 2, towns[1].ID)
}

func TestReadTownsBadHeader(t *testing.T) {
	_, err := ReadTowns(strings.NewReader("Name;E;N\nBern;1;2\n"))
	require.Error(t, err)
}

func TestEmbeddedDataset(t *testing.T) {
	r := NewTownsFileRepo("", false)
	require.NoError(t, r.Start())

	defer r.Stop()

	require.Greater(t, r.Total(), 10)

	bern := r.Find("bern")
	require.NotEmpty(t, bern)

	// WGS84 annotation is present and in the Swiss region
	for _, town := range r.All() {
		assert.InDelta(t, 46.8, town.Lat, 1.2, town.Name)
		assert.InDelta(t, 8.2, town.Lon, 2.2, town.Name)
	}

	town := r.Get(1)
	require.NotNil(t, town)
	assert.Equal(t, town, r.Get(town.ID))
}

func TestChangeCallback(t *testing.T) {
	r := NewTownsFileRepo("", false)

	ch := make(chan []*model.Town, 1)

	r.ChangeCallback().Subscribe("test", func(towns []*model.Town) bool {
		ch <- towns

		return true
	})

	require.NoError(t, r.Start())

	defer r.Stop()

	towns := <-ch
	require.Len(t, towns, r.Total())
}
