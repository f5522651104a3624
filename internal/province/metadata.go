package province

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"province-mapper/internal/label"
	"province-mapper/pkg/geometry"
)

// Province is the metadata record emitted for every component that survives
// the minimum-area filter.
type Province struct {
	ID       int              `json:"id"`
	Color    string           `json:"color"` // hex form of the id-encoded RGB
	AreaPx   int              `json:"area_px"`
	CenterPx geometry.Point2D `json:"center_px"`
	BoundsPx geometry.RectInt `json:"bounds_px"`
}

// Dimensions holds the source image size.
type Dimensions struct {
	W int `json:"w"`
	H int `json:"h"`
}

// MaskColors echoes the configured mask match colors.
type MaskColors struct {
	Border string `json:"border"`
	Land   string `json:"land"`
	Water  string `json:"water"`
}

// OutputColors echoes the configured non-province output colors.
type OutputColors struct {
	Border string `json:"border"`
	Water  string `json:"water"`
}

// Meta aggregates run-level information: source dimensions, province
// statistics, and a full echo of the configuration that produced them.
type Meta struct {
	Source           string       `json:"source"`
	Size             Dimensions   `json:"size"`
	ProvincesCount   int          `json:"provinces_count"`
	MinAreaPx        int          `json:"min_area_px"`
	MaxAreaPx        int          `json:"max_area_px"`
	MeanAreaPx       float64      `json:"mean_area_px"`
	Connectivity     int          `json:"connectivity"`
	MinAreaFilter    int          `json:"min_area_filter"`
	DilateBorders1px bool         `json:"dilate_borders_1px"`
	Tolerance        int          `json:"tolerance"`
	MaskColors       MaskColors   `json:"mask_colors"`
	OutputColors     OutputColors `json:"output_colors"`
	IDEncoding       string       `json:"id_encoding"`
}

// Payload is the complete metadata artifact written alongside the output
// image.
type Payload struct {
	Meta      Meta       `json:"meta"`
	Provinces []Province `json:"provinces"`
}

// BuildMetadata assembles the payload from labeler output. Records are
// emitted in ascending label order for every component with area >= the
// configured minimum; aggregates are derived from the emitted records only.
func BuildMetadata(source string, width, height int, components []label.Component, cfg Config) (Payload, error) {
	provinces := make([]Province, 0, len(components))
	var areas []float64

	for _, comp := range components {
		if comp.Area < cfg.MinArea {
			continue
		}
		c, err := IDToRGB(int(comp.Label))
		if err != nil {
			return Payload{}, err
		}
		provinces = append(provinces, Province{
			ID:       int(comp.Label),
			Color:    c.Hex(),
			AreaPx:   comp.Area,
			CenterPx: comp.Centroid,
			BoundsPx: comp.Bounds,
		})
		areas = append(areas, float64(comp.Area))
	}

	meta := Meta{
		Source:           source,
		Size:             Dimensions{W: width, H: height},
		ProvincesCount:   len(provinces),
		Connectivity:     int(cfg.Connectivity),
		MinAreaFilter:    cfg.MinArea,
		DilateBorders1px: cfg.DilateBorders,
		Tolerance:        cfg.Tolerance,
		MaskColors: MaskColors{
			Border: cfg.BorderColor.Hex(),
			Land:   cfg.LandColor.Hex(),
			Water:  cfg.WaterColor.Hex(),
		},
		OutputColors: OutputColors{
			Border: cfg.OutBorderColor.Hex(),
			Water:  cfg.OutWaterColor.Hex(),
		},
		IDEncoding: IDEncodingFormula,
	}
	if len(areas) > 0 {
		meta.MinAreaPx = int(floats.Min(areas))
		meta.MaxAreaPx = int(floats.Max(areas))
		meta.MeanAreaPx = stat.Mean(areas, nil)
	}

	return Payload{Meta: meta, Provinces: provinces}, nil
}

// Save writes the payload as JSON, indented when pretty is set.
func (p Payload) Save(path string, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(p, "", "  ")
	} else {
		data, err = json.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}
