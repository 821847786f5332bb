// Package pipeline executes the complete manifest → tree → render →
// encode flow for game pieces.
//
// Centralizing the flow keeps CLI and library consumers consistent: the
// same validation, caching, and logging applies regardless of the entry
// point.
//
// # Stages
//
//  1. Parse: decode the TOML piece manifest
//  2. Build: construct the graphic tree
//  3. Render: composite the tree into a raster image
//  4. Encode: serialize the image in the requested formats
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, config.Default(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ManifestPath: "pieces/fortress.toml",
//	    Formats:      []string{"png"},
//	})
//	png := result.Artifacts["png"]
package pipeline

import (
	"time"

	"github.com/ggekit/gge/pkg/errors"
	ggeio "github.com/ggekit/gge/pkg/io"
)

// Default option values.
const (
	// DefaultFormat is used when no output formats are requested.
	DefaultFormat = "png"

	// DefaultCacheTTL bounds how long rendered artifacts stay valid.
	DefaultCacheTTL = 24 * time.Hour
)

// Options configures one pipeline execution.
type Options struct {
	// ManifestPath is the piece manifest file. Ignored when Manifest is
	// set.
	ManifestPath string

	// Manifest is the raw manifest content, for in-memory callers.
	Manifest []byte

	// Formats lists the output encodings (png, jpeg, gif).
	Formats []string

	// CacheTTL overrides the artifact cache lifetime.
	CacheTTL time.Duration

	// Refresh skips cache reads, forcing a re-render. Results are still
	// written back to the cache.
	Refresh bool
}

// ValidateAndSetDefaults checks the options and fills defaults in
// place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.ManifestPath == "" && len(o.Manifest) == 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"either a manifest path or manifest content is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if _, err := ggeio.ParseFormat(f); err != nil {
			return err
		}
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return nil
}

// Stats carries per-stage wall-clock timings and tree metrics.
type Stats struct {
	ParseTime  time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
	EncodeTime time.Duration
	NodeCount  int
}

// Result is the outcome of a pipeline execution.
type Result struct {
	// Artifacts maps format names to encoded bytes.
	Artifacts map[string][]byte

	// PieceName is the name declared in the manifest.
	PieceName string

	// ManifestHash is the SHA-256 digest of the manifest content,
	// usable as a stable identifier for the rendered piece.
	ManifestHash string

	// CacheHit reports whether every requested artifact came from the
	// cache. Stats stages that did not run are zero.
	CacheHit bool

	Stats Stats
}
