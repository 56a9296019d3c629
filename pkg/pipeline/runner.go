package pipeline

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mapforge/mapforge/pkg/cache"
	"github.com/mapforge/mapforge/pkg/mapfile"
	"github.com/mapforge/mapforge/pkg/raster"
	"github.com/mapforge/mapforge/pkg/svg"
)

// artifactTTL bounds how long cached raster artifacts live.
const artifactTTL = 7 * 24 * time.Hour

// Runner executes the load → build → render pipeline with caching.
//
// The Runner is stateless except for the cache, rasterizer and logger - it
// doesn't store pipeline results. Multiple goroutines can safely share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Raster raster.Rasterizer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil
// rasterizer selects the default oksvg backend, and a nil logger uses the
// package default.
func NewRunner(c cache.Cache, r raster.Rasterizer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if r == nil {
		r = raster.New()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Raster: r, Logger: logger}
}

// Stats records per-stage timing and item counts for one run.
type Stats struct {
	LoadTime   time.Duration
	RenderTime time.Duration
	Items      int
	Points     int
	Lines      int
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Items     mapfile.MapItems
	Box       mapfile.Box
	Artifacts map[string][]byte // format → rendered bytes
	DocHash   string            // hash of the vector document
	Stats     Stats
	CacheHit  bool // raster artifact served from cache
}

// Execute runs the complete pipeline: load the map files, then build and
// render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	loadStart := time.Now()
	loader := mapfile.NewLoader(r.Logger)
	items, err := loader.LoadFiles(ctx, opts.Paths)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)

	r.Logger.Info("loaded map files",
		"files", len(opts.Paths),
		"points", items.Points(),
		"lines", items.Lines(),
		"duration", loadTime)

	result, err := r.Render(ctx, items, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Render runs the build and render stages for already-loaded items. Serve
// mode uses this directly after parsing uploaded files.
func (r *Runner) Render(ctx context.Context, items mapfile.MapItems, opts Options) (*Result, error) {
	if err := opts.validateRender(); err != nil {
		return nil, err
	}

	result := &Result{
		Items:     items,
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Items = len(items)
	result.Stats.Points = items.Points()
	result.Stats.Lines = items.Lines()

	result.Box = mapfile.Bounds(items)
	doc := svg.Build(items, result.Box)
	result.DocHash = cache.Hash(doc)
	result.Artifacts[FormatSVG] = doc

	r.Logger.Debug("built vector document",
		"bytes", len(doc),
		"box", result.Box)

	if opts.needsRaster() {
		renderStart := time.Now()
		png, hit, err := r.renderPNG(ctx, doc, result.DocHash, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[FormatPNG] = png
		result.CacheHit = hit
		result.Stats.RenderTime = time.Since(renderStart)

		r.Logger.Info("rendered image",
			"scale", opts.Scale,
			"cached", hit,
			"duration", result.Stats.RenderTime)
	}

	// Trim artifacts down to what was asked for.
	for format := range result.Artifacts {
		if !slices.Contains(opts.Formats, format) {
			delete(result.Artifacts, format)
		}
	}

	return result, nil
}

// renderPNG rasterizes the document, consulting the artifact cache first.
// The document hash fully determines the output for a given scale.
func (r *Runner) renderPNG(ctx context.Context, doc []byte, docHash string, opts Options) ([]byte, bool, error) {
	key := cache.ArtifactKey(docHash, FormatPNG, opts.Scale)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	png, err := raster.ToPNG(r.Raster, doc, opts.Scale)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, png, artifactTTL); err != nil {
		// Cache write failures degrade to uncached operation.
		r.Logger.Debug("artifact cache write failed", "err", err)
	}
	return png, false, nil
}
