package pipeline

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ggekit/gge/pkg/cache"
	"github.com/ggekit/gge/pkg/config"
	"github.com/ggekit/gge/pkg/errors"
)

var testManifest = []byte(`
[piece]
name = "token"
shape = "circle"
size = [64, 64]
background = "#cc2244"

[[piece.children]]
name = "pip"
size = [16, 16]
position = [0, 0]
anchor = "center"
frame = "center"
background = "#ffffff"
`)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Manifest: testManifest}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("expected valid options, got %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != DefaultFormat {
		t.Errorf("expected default format, got %v", opts.Formats)
	}
	if opts.CacheTTL != DefaultCacheTTL {
		t.Errorf("expected default TTL, got %v", opts.CacheTTL)
	}

	empty := Options{}
	if err := empty.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for empty options, got %v", err)
	}

	bad := Options{Manifest: testManifest, Formats: []string{"bmp"}}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("expected UNSUPPORTED for bad format, got %v", err)
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, config.Default(), quietLogger())
	result, err := runner.Execute(context.Background(), Options{
		Manifest: testManifest,
		Formats:  []string{"png", "jpeg"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.PieceName != "token" {
		t.Errorf("expected piece name token, got %q", result.PieceName)
	}
	if result.Stats.NodeCount != 2 {
		t.Errorf("expected 2 nodes, got %d", result.Stats.NodeCount)
	}
	if result.CacheHit {
		t.Error("expected a cold run without cache hits")
	}

	png := result.Artifacts["png"]
	if !bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("expected PNG artifact")
	}
	if len(result.Artifacts["jpeg"]) == 0 {
		t.Error("expected JPEG artifact")
	}
}

func TestExecuteUsesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, config.Default(), quietLogger())
	opts := Options{Manifest: testManifest}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	if first.CacheHit {
		t.Error("expected a cold first run")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if !second.CacheHit {
		t.Error("expected the second run to hit the cache")
	}
	if !bytes.Equal(first.Artifacts["png"], second.Artifacts["png"]) {
		t.Error("expected identical cached artifact bytes")
	}

	// Refresh bypasses the cache read.
	refreshed, err := runner.Execute(context.Background(), Options{Manifest: testManifest, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute failed: %v", err)
	}
	if refreshed.CacheHit {
		t.Error("expected refresh to skip the cache")
	}
}

func TestExecuteSurfacesBuildErrors(t *testing.T) {
	runner := NewRunner(nil, config.Default(), quietLogger())
	_, err := runner.Execute(context.Background(), Options{
		Manifest: []byte("[piece]\nsize = [10]\n"),
	})
	if !errors.Is(err, errors.ErrCodeShapeMismatch) {
		t.Fatalf("expected SHAPE_MISMATCH, got %v", err)
	}
}
