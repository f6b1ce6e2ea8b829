package layers

type LayerDescription struct {
	Name        string   `yaml:"name" json:"name" koanf:"name"`
	URL         string   `yaml:"url" json:"url" koanf:"url"`
	MinZoom     int      `yaml:"min_zoom" json:"min_zoom,omitempty" koanf:"min_zoom"`
	MaxZoom     int      `yaml:"max_zoom" json:"max_zoom,omitempty" koanf:"max_zoom"`
	Tms         bool     `yaml:"tms" json:"tms,omitempty" koanf:"tms"`
	ServerParts []string `yaml:"server_parts" json:"server_parts,omitempty" koanf:"server_parts"`
}

func GetDefaultLayers() []*LayerDescription {
	return []*LayerDescription{
		{
			Name:        "OSM",
			URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			MaxZoom:     19,
			ServerParts: []string{"a", "b", "c"},
		},
		{
			Name:    "Swisstopo",
			URL:     "https://wmts.geo.admin.ch/1.0.0/ch.swisstopo.pixelkarte-farbe/default/current/3857/{z}/{x}/{y}.jpeg",
			MaxZoom: 18,
		},
	}
}
