package coord

import (
	_ "embed"
	"fmt"
	"strings"
)

// CRS describes a supported coordinate reference system.
type CRS struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	Description string `json:"description"`
}

//go:embed formats
var strFormats string

var crsList []*CRS

var crsIndex = make(map[string]*CRS)

func init() {
	for _, s := range strings.Split(strFormats, "\n") {
		ss := strings.Trim(s, " \n\r\t")
		if ss == "" || strings.HasPrefix(ss, "#") {
			continue
		}

		n := strings.SplitN(ss, ";", 3)
		if len(n) != 3 {
			continue
		}

		c := &CRS{Name: n[0], Format: n[1], Description: n[2]}

		if _, ok := crsIndex[c.Name]; ok {
			continue
		}

		crsList = append(crsList, c)
		crsIndex[c.Name] = c
	}
}

// Supported reports whether name is a registered CRS.
func Supported(name string) bool {
	_, ok := crsIndex[name]

	return ok
}

// Describe returns the descriptor for name.
func Describe(name string) (*CRS, error) {
	if c, ok := crsIndex[name]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownCRS, name)
}

// List returns all registered CRS in registration order.
func List() []*CRS {
	res := make([]*CRS, len(crsList))
	copy(res, crsList)

	return res
}
