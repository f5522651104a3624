package province

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"province-mapper/internal/label"
	"province-mapper/internal/mask"
	"province-mapper/internal/raster"
)

// Result holds everything one run produces: the id-encoded output image and
// the metadata payload, plus the raw label count for reporting.
type Result struct {
	Image      *raster.RGB
	Payload    Payload
	LabelCount int // distinct positive labels before filtering
}

// Process runs the full pipeline over an input pixel buffer: classify,
// optionally dilate borders, label the fill mask, paint the output image,
// and build the metadata payload. The input buffer is not modified.
func Process(img *raster.RGB, source string, cfg Config, log zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	start := time.Now()
	classes := mask.Classify(img, cfg.BorderColor, cfg.LandColor, cfg.WaterColor, cfg.Tolerance)
	if cfg.DilateBorders {
		mask.DilateBorder(&classes)
	}
	fill := classes.FillMask()
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("border_px", classes.Border.Count()).
		Int("land_px", classes.Land.Count()).
		Int("water_px", classes.Water.Count()).
		Msg("classified mask")

	stage := time.Now()
	labels, err := label.Components(fill, cfg.Connectivity)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Dur("elapsed", time.Since(stage)).
		Int("labels", len(labels.Components)).
		Msg("extracted components")

	stage = time.Now()
	lut, err := BuildLookup(labels.Components, cfg.MinArea, cfg.OutWaterColor)
	if err != nil {
		return nil, err
	}
	out := Paint(labels, lut, classes, cfg.OutBorderColor, cfg.OutWaterColor)
	log.Debug().Dur("elapsed", time.Since(stage)).Msg("painted output")

	stage = time.Now()
	payload, err := BuildMetadata(source, img.Width, img.Height, labels.Components, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Dur("elapsed", time.Since(stage)).
		Int("provinces", payload.Meta.ProvincesCount).
		Msg("built metadata")

	logTopProvinces(log, payload.Provinces)

	log.Info().
		Dur("total", time.Since(start)).
		Int("width", img.Width).
		Int("height", img.Height).
		Int("labels", len(labels.Components)).
		Int("provinces", payload.Meta.ProvincesCount).
		Msg("pipeline complete")

	return &Result{
		Image:      out,
		Payload:    payload,
		LabelCount: len(labels.Components),
	}, nil
}

// logTopProvinces dumps the ten largest provinces at debug level.
func logTopProvinces(log zerolog.Logger, provinces []Province) {
	if len(provinces) == 0 {
		return
	}
	top := make([]Province, len(provinces))
	copy(top, provinces)
	sort.Slice(top, func(i, j int) bool { return top[i].AreaPx > top[j].AreaPx })
	if len(top) > 10 {
		top = top[:10]
	}
	for rank, p := range top {
		log.Debug().
			Int("rank", rank+1).
			Int("id", p.ID).
			Int("area_px", p.AreaPx).
			Float64("cx", p.CenterPx.X).
			Float64("cy", p.CenterPx.Y).
			Msg("top province")
	}
}
