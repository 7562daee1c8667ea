// Package pipeline orchestrates batch map rendering: it loads the project
// tables once, fans maps out to workers over a shared tileset cache, and
// isolates per-map failures so a broken map never aborts the batch.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gbamap/internal/logger"
	"github.com/Faultbox/gbamap/internal/project"
	"github.com/Faultbox/gbamap/internal/render"
	"github.com/Faultbox/gbamap/internal/tileset"
	"github.com/Faultbox/gbamap/pkg/formats"
)

// Options configures a render run.
type Options struct {
	ProjectDir string
	OutputDir  string
	Workers    int    // concurrent map workers, minimum 1
	Scale      int    // integer upscale factor, minimum 1
	Indexed    bool   // write quantized paletted PNGs
	Filter     string // only render maps whose name contains this substring
}

// Summary reports the outcome of a run.
type Summary struct {
	Rendered int
	Skipped  int
	Elapsed  time.Duration
}

// Runner holds the loaded project tables for a render run. All fields are
// read-only after New; per-map state lives entirely inside renderMap.
type Runner struct {
	opts     Options
	maps     []*project.Map
	tilesets *tileset.Cache
	sprites  project.SpriteTable
}

// New loads the project tables and links maps to layouts.
func New(opts Options) (*Runner, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	layouts, err := project.LoadLayouts(filepath.Join(opts.ProjectDir, "data", "layouts", "layouts.json"))
	if err != nil {
		return nil, err
	}

	maps, err := project.LoadMaps(filepath.Join(opts.ProjectDir, "data", "maps", "map_groups.json"), opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	for _, name := range project.LinkLayouts(maps, layouts) {
		logger.Warn("map references unknown layout", zap.String("map", name))
	}

	sprites := project.BuildSpriteTable(opts.ProjectDir)

	logger.Info("project loaded",
		zap.Int("layouts", len(layouts)),
		zap.Int("maps", len(maps)),
		zap.Int("sprites", len(sprites)))

	return &Runner{
		opts:     opts,
		maps:     maps,
		tilesets: tileset.NewCache(project.BuildTilesetPaths(opts.ProjectDir)),
		sprites:  sprites,
	}, nil
}

// Maps returns the loaded map records in group order.
func (r *Runner) Maps() []*project.Map {
	return r.maps
}

// Run renders every map (subject to the name filter) and writes one PNG
// per map into the output directory. Individual map failures are logged
// and counted as skipped; the batch itself only fails if the output
// directory cannot be created.
func (r *Runner) Run() (Summary, error) {
	start := time.Now()

	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var rendered, skipped atomic.Int64

	jobs := make(chan *project.Map)
	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				if err := r.renderMapSafe(m); err != nil {
					skipped.Add(1)
					logger.Error("skipping map", zap.String("map", m.Name), zap.Error(err))
					continue
				}
				rendered.Add(1)
			}
		}()
	}

	queued := 0
	for _, m := range r.maps {
		if r.opts.Filter != "" && !strings.Contains(m.Name, r.opts.Filter) {
			continue
		}
		jobs <- m
		queued++
		if queued%50 == 0 {
			logger.Info("progress", zap.Int("queued", queued))
		}
	}
	close(jobs)
	wg.Wait()

	summary := Summary{
		Rendered: int(rendered.Load()),
		Skipped:  int(skipped.Load()),
		Elapsed:  time.Since(start),
	}
	logger.Info("run complete",
		zap.Int("rendered", summary.Rendered),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("elapsed", summary.Elapsed))

	return summary, nil
}

// renderMapSafe converts a panic inside one map's pipeline into that map's
// error so it cannot take the other workers down.
func (r *Runner) renderMapSafe(m *project.Map) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic rendering map: %v", rec)
		}
	}()
	return r.renderMap(m)
}

// renderMap runs the full pipeline for one map: tilesets, blockdata, map
// composite, object event overlay, optional upscale, PNG out.
func (r *Runner) renderMap(m *project.Map) error {
	if m.Layout == nil {
		return errors.New("map has no layout")
	}
	layout := m.Layout

	primary, err := r.tilesets.Get(layout.PrimaryTileset)
	if err != nil {
		return fmt.Errorf("primary tileset: %w", err)
	}
	secondary, err := r.tilesets.Get(layout.SecondaryTileset)
	if err != nil {
		return fmt.Errorf("secondary tileset: %w", err)
	}

	grid, err := formats.ParseBlockdataFile(
		filepath.Join(r.opts.ProjectDir, layout.BlockdataPath), layout.Width, layout.Height)
	if err != nil {
		return fmt.Errorf("blockdata: %w", err)
	}
	if grid.Truncated {
		logger.Warn("blockdata shorter than expected, padded with empty metatiles",
			zap.String("map", m.Name))
	}

	img := render.RenderMap(grid, primary, secondary)
	drawn := render.OverlayObjectEvents(img, m.ObjectEvents, r.sprites)
	img = render.Upscale(img, r.opts.Scale)

	out := filepath.Join(r.opts.OutputDir, fmt.Sprintf("map_%04X_%s.png", m.ID, m.Name))
	if err := render.WritePNG(out, img, r.opts.Indexed); err != nil {
		return err
	}

	logger.Debug("rendered map",
		zap.String("map", m.Name),
		zap.Int("id", m.ID),
		zap.Int("events_drawn", drawn),
		zap.String("out", out))
	return nil
}
