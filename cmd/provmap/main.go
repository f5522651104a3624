// Command provmap converts a painted region mask into an id-encoded
// province image plus a JSON metadata payload.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"province-mapper/internal/label"
	"province-mapper/internal/province"
	"province-mapper/internal/raster"
	"province-mapper/internal/version"
	"province-mapper/pkg/colorutil"
)

func main() {
	input := flag.String("input", "mask.png", "Input mask image (PNG, JPEG, TIFF, BMP)")
	outImg := flag.String("out-img", "province_id.png", "Output province id PNG")
	outJSON := flag.String("out-json", "provinces.json", "Output JSON metadata")

	borderSpec := flag.String("border", "#000000", "Border color in mask")
	landSpec := flag.String("land", "#ffffff", "Land color in mask")
	waterSpec := flag.String("water", "#303030", "Water color in mask")
	outBorderSpec := flag.String("out-border", "#000000", "Border color in output")
	outWaterSpec := flag.String("out-water", "#303030", "Water color in output")

	tol := flag.Int("tol", 0, "Per-channel tolerance for color matching (0 = exact)")
	dilate := flag.Bool("dilate-borders-1px", false, "Dilate borders by 1px (3x3) before labeling")
	minArea := flag.Int("min-area", 1, "Minimum province area in px")
	connectivity := flag.Int("connectivity", 4, "Connected components connectivity (4 or 8)")

	prettyJSON := flag.Bool("pretty-json", false, "Indent the JSON payload")
	pngCompress := flag.Int("png-compress", 1, "PNG compression 0..9 (0 = none, lower = faster)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("provmap %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	log := newLogger(*logLevel)

	cfg, err := buildConfig(*borderSpec, *landSpec, *waterSpec, *outBorderSpec, *outWaterSpec,
		*tol, *dilate, *minArea, *connectivity)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	img, err := raster.Load(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("failed to load mask")
	}
	log.Info().Str("input", *input).Int("width", img.Width).Int("height", img.Height).Msg("loaded mask")

	result, err := province.Process(img, *input, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("processing failed")
	}

	// The two artifacts are independent; write them concurrently. A failure
	// on one does not roll back the other.
	start := time.Now()
	var wg sync.WaitGroup
	var imgErr, jsonErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		imgErr = raster.SavePNG(result.Image, *outImg, *pngCompress)
	}()
	go func() {
		defer wg.Done()
		jsonErr = result.Payload.Save(*outJSON, *prettyJSON)
	}()
	wg.Wait()

	if imgErr != nil {
		log.Fatal().Err(imgErr).Str("path", *outImg).Msg("failed to write output image")
	}
	if jsonErr != nil {
		log.Fatal().Err(jsonErr).Str("path", *outJSON).Msg("failed to write metadata")
	}

	meta := result.Payload.Meta
	log.Info().
		Dur("elapsed", time.Since(start)).
		Str("image", *outImg).
		Str("json", *outJSON).
		Int("provinces", meta.ProvincesCount).
		Int("min_area_px", meta.MinAreaPx).
		Int("max_area_px", meta.MaxAreaPx).
		Msg("outputs written")
}

// buildConfig resolves flag values into a validated pipeline configuration.
func buildConfig(border, land, water, outBorder, outWater string,
	tol int, dilate bool, minArea, connectivity int) (province.Config, error) {

	cfg := province.DefaultConfig()
	cfg.Tolerance = tol
	cfg.DilateBorders = dilate
	cfg.MinArea = minArea
	cfg.Connectivity = label.Connectivity(connectivity)

	specs := []struct {
		name string
		spec string
		dst  *colorutil.RGB
	}{
		{"border", border, &cfg.BorderColor},
		{"land", land, &cfg.LandColor},
		{"water", water, &cfg.WaterColor},
		{"out-border", outBorder, &cfg.OutBorderColor},
		{"out-water", outWater, &cfg.OutWaterColor},
	}
	for _, s := range specs {
		c, err := colorutil.ParseRGB(s.spec)
		if err != nil {
			return province.Config{}, fmt.Errorf("bad -%s: %w", s.name, err)
		}
		*s.dst = c
	}

	if err := cfg.Validate(); err != nil {
		return province.Config{}, err
	}
	return cfg, nil
}

// newLogger builds a console logger at the requested level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
