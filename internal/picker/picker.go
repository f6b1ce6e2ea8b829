package picker

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/ogerber/townpicker/internal/model"
)

// Picker samples n towns spread over the country: towns are k-means
// clustered on their WGS84 coordinates and one town is drawn uniformly
// from every cluster.
type Picker struct {
	logger *slog.Logger
	rnd    *rand.Rand

	mx sync.Mutex
}

type townObservation struct {
	town *model.Town
}

func (o townObservation) Coordinates() clusters.Coordinates {
	return clusters.Coordinates{o.town.Lat, o.town.Lon}
}

func (o townObservation) Distance(point clusters.Coordinates) float64 {
	return o.Coordinates().Distance(point)
}

func New() *Picker {
	return &Picker{
		logger: slog.Default().With("logger", "picker"),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeeded returns a picker with a fixed random source.
func NewSeeded(seed int64) *Picker {
	p := New()
	p.rnd = rand.New(rand.NewSource(seed))

	return p
}

// Pick draws n towns, one per spatial cluster. The input slice is not
// modified; picked towns are copies with the Cluster field set.
func (p *Picker) Pick(towns []*model.Town, n int) (*model.Pick, []*model.Town, error) {
	if n < 1 || n > len(towns) {
		return nil, nil, fmt.Errorf("n must be between 1 and %d", len(towns))
	}

	obs := make(clusters.Observations, len(towns))
	for i, t := range towns {
		obs[i] = townObservation{town: t}
	}

	km := kmeans.New()

	cls, err := km.Partition(obs, n)
	if err != nil {
		return nil, nil, err
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	picked := make([]*model.Town, 0, len(cls))
	ids := make([]uint, 0, len(cls))

	for i, c := range cls {
		if len(c.Observations) == 0 {
			continue
		}

		o := c.Observations[p.rnd.Intn(len(c.Observations))]

		town := *o.(townObservation).town
		town.Cluster = i
		picked = append(picked, &town)
		ids = append(ids, town.ID)
	}

	pick := &model.Pick{
		UID:       uuid.NewString(),
		CreatedAt: time.Now(),
		N:         n,
		TownIDs:   ids,
	}

	p.logger.Debug(fmt.Sprintf("picked %d of %d towns", len(picked), len(towns)))

	return pick, picked, nil
}
