package repository

import (
	"bytes"
	"encoding/csv"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ogerber/townpicker/internal/callbacks"
	"github.com/ogerber/townpicker/internal/model"
	"github.com/ogerber/townpicker/pkg/coord"
	"github.com/ogerber/townpicker/pkg/tools"
	"github.com/ogerber/townpicker/pkg/util"
)

//go:embed towns.csv
var defaultTowns string

var _ TownsRepository = &TownsFileRepository{}

// TownsFileRepository loads the reference dataset from a
// semicolon-separated CSV, drops duplicate rows, annotates every town
// with WGS84 coordinates and reloads when the file changes. With no
// file configured it serves a small embedded dataset.
type TownsFileRepository struct {
	fileName string
	watch    bool
	logger   *slog.Logger
	towns    []*model.Town
	byID     map[uint]*model.Town

	changeCb *callbacks.Callback[[]*model.Town]
	watcher  *fsnotify.Watcher

	mx sync.RWMutex
}

func NewTownsFileRepo(fileName string, watch bool) *TownsFileRepository {
	return &TownsFileRepository{
		fileName: fileName,
		watch:    watch,
		logger:   slog.Default().With("logger", "towns"),
		byID:     make(map[uint]*model.Town),
		changeCb: callbacks.New[[]*model.Town](),
	}
}

func (r *TownsFileRepository) Start() error {
	if err := r.load(); err != nil {
		return err
	}

	if r.fileName == "" || !r.watch {
		return nil
	}

	var err error
	r.watcher, err = fsnotify.NewWatcher()

	if err != nil {
		return err
	}

	if err := r.watcher.Add(r.fileName); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-r.watcher.Events:
				if !ok {
					return
				}

				if event.Has(fsnotify.Write) && event.Name == r.fileName {
					r.logger.Info("towns file is modified, reloading")

					if err := r.load(); err != nil {
						r.logger.Error("reload error", slog.Any("error", err))
					}
				}
			case err, ok := <-r.watcher.Errors:
				if !ok {
					return
				}

				r.logger.Error("watcher error", slog.Any("error", err))
			}
		}
	}()

	return nil
}

func (r *TownsFileRepository) Stop() {
	if r.watcher != nil {
		_ = r.watcher.Close()
	}
}

func (r *TownsFileRepository) load() error {
	var reader io.Reader

	if r.fileName == "" {
		r.logger.Info("no towns file configured, using embedded dataset")

		reader = strings.NewReader(defaultTowns)
	} else {
		dat, err := os.ReadFile(r.fileName)
		if err != nil {
			return err
		}

		r.logger.Debug("dataset hash " + tools.Hash(dat))

		reader = bytes.NewReader(dat)
	}

	towns, err := ReadTowns(reader)
	if err != nil {
		return err
	}

	if err := annotate(towns); err != nil {
		return err
	}

	r.mx.Lock()
	r.towns = towns
	r.byID = make(map[uint]*model.Town, len(towns))

	for _, t := range towns {
		r.byID[t.ID] = t
	}
	r.mx.Unlock()

	r.logger.Info(fmt.Sprintf("loaded %d towns", len(towns)))
	r.changeCb.Broadcast(towns)

	return nil
}

// ReadTowns parses the dataset CSV. Column order follows the header
// row, duplicate name/PLZ pairs keep the first occurrence.
func ReadTowns(reader io.Reader) ([]*model.Town, error) {
	cr := csv.NewReader(reader)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	for _, name := range []string{"Ortschaftsname", "PLZ", "Kantonskürzel", "E", "N"} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %s", name)
		}
	}

	seen := util.NewStringSet()
	towns := make([]*model.Town, 0)

	var id uint

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		t, err := townFromRecord(rec, idx)
		if err != nil {
			return nil, err
		}

		if seen.Has(t.Key()) {
			continue
		}

		seen.Add(t.Key())

		id++
		t.ID = id
		towns = append(towns, t)
	}

	return towns, nil
}

func townFromRecord(rec []string, idx map[string]int) (*model.Town, error) {
	field := func(name string) string {
		if i, ok := idx[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}

		return ""
	}

	plz, err := strconv.Atoi(field("PLZ"))
	if err != nil {
		return nil, fmt.Errorf("bad PLZ %q: %w", field("PLZ"), err)
	}

	e, err := strconv.ParseFloat(field("E"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad E %q: %w", field("E"), err)
	}

	n, err := strconv.ParseFloat(field("N"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad N %q: %w", field("N"), err)
	}

	return &model.Town{
		Name:    field("Ortschaftsname"),
		PLZ:     plz,
		Canton:  field("Kantonskürzel"),
		Commune: field("Gemeindename"),
		E:       e,
		N:       n,
	}, nil
}

// annotate adds WGS84 lat/lon to every town in one transform batch.
func annotate(towns []*model.Town) error {
	if len(towns) == 0 {
		return nil
	}

	points := make([]coord.Point, len(towns))
	for i, t := range towns {
		points[i] = coord.Point{t.E, t.N}
	}

	res, err := coord.Transform(points, "CH1903+", "WGS84")
	if err != nil {
		return err
	}

	for i, t := range towns {
		t.Lat = res[i][0]
		t.Lon = res[i][1]
	}

	return nil
}

func (r *TownsFileRepository) ChangeCallback() *callbacks.Callback[[]*model.Town] {
	return r.changeCb
}

func (r *TownsFileRepository) Get(id uint) *model.Town {
	r.mx.RLock()
	defer r.mx.RUnlock()

	return r.byID[id]
}

func (r *TownsFileRepository) ForEach(f func(t *model.Town) bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	for _, t := range r.towns {
		if !f(t) {
			return
		}
	}
}

func (r *TownsFileRepository) All() []*model.Town {
	r.mx.RLock()
	defer r.mx.RUnlock()

	res := make([]*model.Town, len(r.towns))
	copy(res, r.towns)

	return res
}

func (r *TownsFileRepository) Find(name string) []*model.Town {
	name = strings.ToLower(name)

	res := make([]*model.Town, 0)

	r.ForEach(func(t *model.Town) bool {
		if strings.Contains(strings.ToLower(t.GetName()), name) {
			res = append(res, t)
		}

		return true
	})

	return res
}

func (r *TownsFileRepository) Total() int {
	r.mx.RLock()
	defer r.mx.RUnlock()

	return len(r.towns)
}
