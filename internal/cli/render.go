package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ggekit/gge/pkg/config"
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		outDir     string
		formats    []string
		configPath string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "render <manifest.toml>",
		Short: "Render a piece manifest to image artifacts",
		Long: `Render parses a TOML piece manifest, builds the graphic tree, and
composites it into one image file per requested format.

Artifacts are cached by manifest content, so re-rendering an unchanged
manifest is instant. Use --refresh to force a re-render.`,
		Example: `  # Render a piece to out/fortress.png
  gge render pieces/fortress.toml

  # Render PNG and JPEG into a custom directory
  gge render pieces/fortress.toml -f png,jpeg -o build/

  # Force a re-render, bypassing the cache
  gge render pieces/fortress.toml --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath := args[0]
			if err := errors.ValidateManifestFilename(filepath.Base(manifestPath)); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			if outDir != "" {
				cfg.OutDir = outDir
			}
			if err := config.EnsureDir(cfg.OutDir); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				printError("cannot initialize cache: %s", err)
				return err
			}
			defer runner.Cache.Close()

			ctx := withLogger(cmd.Context(), c.Logger)
			prog := newProgress(loggerFromContext(ctx))

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", manifestPath))
			spinner.Start()

			result, err := runner.Execute(ctx, pipeline.Options{
				ManifestPath: manifestPath,
				Formats:      formats,
				Refresh:      refresh,
			})
			if err != nil {
				if spinner.Cancelled() {
					spinner.Stop()
					return err
				}
				spinner.StopWithError(errors.UserMessage(err))
				return err
			}
			spinner.Stop()

			base := artifactBase(result.PieceName, manifestPath)
			var written []string
			for _, format := range orderedFormats(formats, result.Artifacts) {
				path := cfg.OutPath(base + "." + format)
				if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
					printError("cannot write %s: %s", path, err)
					return err
				}
				written = append(written, path)
			}

			prog.done(fmt.Sprintf("Rendered %s", base))
			printSuccess("Rendered %s", StyleValue.Render(base))
			for _, path := range written {
				printFile(path)
			}
			printStats(result.Stats.NodeCount, result.CacheHit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "output directory (default: config out_dir)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{pipeline.DefaultFormat}, "output formats (png, jpeg, gif)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached artifacts and re-render")

	return cmd
}

// artifactBase picks the output filename stem: the declared piece name
// when available, otherwise the manifest filename without extension.
// Cache hits skip parsing, so the piece name may be absent.
func artifactBase(pieceName, manifestPath string) string {
	if pieceName != "" {
		return pieceName
	}
	base := filepath.Base(manifestPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// orderedFormats returns the requested formats in flag order, filtered
// to those actually present in the artifact map. Artifacts are keyed by
// the requested name, so "jpg" and "jpeg" stay distinct here.
func orderedFormats(requested []string, artifacts map[string][]byte) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range requested {
		if _, ok := artifacts[f]; ok && !seen[f] {
			out = append(out, f)
			seen[f] = true
		}
	}
	return out
}
