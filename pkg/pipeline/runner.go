package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ggekit/gge/pkg/cache"
	"github.com/ggekit/gge/pkg/config"
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/graphic"
	ggeio "github.com/ggekit/gge/pkg/io"
	"github.com/ggekit/gge/pkg/manifest"
)

// Runner executes the piece pipeline with caching. It is stateless
// apart from the cache, config, and logger; a single Runner can serve
// many executions.
type Runner struct {
	Cache  cache.Cache
	Config config.Config
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil
// logger falls back to the default logger.
func NewRunner(c cache.Cache, cfg config.Config, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Config: cfg, Logger: logger}
}

// Execute runs parse → build → render → encode for one piece.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	data, err := r.manifestBytes(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts:    make(map[string][]byte),
		ManifestHash: cache.Hash(data),
	}

	if !opts.Refresh && r.loadCached(ctx, result, opts) {
		r.Logger.Info("serving cached artifacts",
			"piece", result.ManifestHash[:12],
			"formats", opts.Formats)
		return result, nil
	}

	// Stage 1: Parse
	parseStart := time.Now()
	f, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}
	result.PieceName = f.Piece.Name
	result.Stats.ParseTime = time.Since(parseStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Build
	buildStart := time.Now()
	root, err := manifest.Build(f, r.Config)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = countNodes(root)

	r.Logger.Info("built piece tree",
		"piece", f.Piece.Name,
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	img, err := root.Image()
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered piece",
		"piece", f.Piece.Name,
		"size", root.Size(),
		"duration", result.Stats.RenderTime)

	// Stage 4: Encode
	encodeStart := time.Now()
	for _, name := range opts.Formats {
		format, err := ggeio.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		encoded, err := ggeio.Encode(img, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[name] = encoded
		if err := r.Cache.Set(ctx, r.artifactKey(result.ManifestHash, name), encoded, opts.CacheTTL); err != nil {
			r.Logger.Warn("cannot cache artifact", "format", name, "err", err)
		}
	}
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.Logger.Info("encoded artifacts",
		"piece", f.Piece.Name,
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// loadCached fills result.Artifacts from the cache, reporting whether
// every requested format hit.
func (r *Runner) loadCached(ctx context.Context, result *Result, opts Options) bool {
	for _, name := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.artifactKey(result.ManifestHash, name))
		if err != nil || !hit {
			return false
		}
		result.Artifacts[name] = data
	}
	result.CacheHit = true
	return true
}

func (r *Runner) artifactKey(manifestHash, format string) string {
	return cache.ArtifactKey(manifestHash, struct {
		Format string `json:"format"`
	}{format})
}

func (r *Runner) manifestBytes(opts Options) ([]byte, error) {
	if len(opts.Manifest) > 0 {
		return opts.Manifest, nil
	}
	data, err := os.ReadFile(opts.ManifestPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err,
			"cannot read manifest %s", opts.ManifestPath)
	}
	return data, nil
}

func countNodes(n *graphic.Node) int {
	count := 1
	for child := range n.Children().InLayerOrder() {
		count += countNodes(child)
	}
	return count
}
