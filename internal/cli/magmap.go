package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ggekit/gge/pkg/config"
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
	ggeio "github.com/ggekit/gge/pkg/io"
	"github.com/ggekit/gge/pkg/shape"
	"github.com/ggekit/gge/pkg/tabletopia"
)

// magmapCommand creates the magmap command.
func (c *CLI) magmapCommand() *cobra.Command {
	var (
		shapeName  string
		sizeSpec   string
		mapColor   string
		endpoint   string
		orientable bool
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "magmap",
		Short: "Generate a tabletopia magnetic map",
		Long: `Magmap renders a solid-color magnetic map in a shape's outline for
upload to tabletopia.com. Green maps snap without flipping the piece,
blue forces it back-up, red forces it front-up. With --orientable, a
line from the center marks the snap direction.`,
		Example: `  # Green hex map, 256x256
  gge magmap --shape hex --size 256x256

  # Orientable red circle map pointing north-east
  gge magmap --shape circle --size 300x300 --color red --orientable --endpoint ne`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSizeSpec(sizeSpec)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			s, err := buildShape(shapeName, size)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			img, err := tabletopia.MagneticMap(s, tabletopia.Options{
				Color:      tabletopia.MapColor(strings.ToLower(mapColor)),
				Orientable: orientable,
				Endpoint:   endpoint,
			})
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			path := output
			if path == "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					printError("%s", errors.UserMessage(err))
					return err
				}
				if err := config.EnsureDir(cfg.OutDir); err != nil {
					printError("%s", errors.UserMessage(err))
					return err
				}
				path = cfg.OutPath(shapeName + "-magmap.png")
			}
			if err := ggeio.Save(img, path); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			printSuccess("Generated %s magnetic map", StyleValue.Render(mapColor))
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeName, "shape", "hex", "shape outline (rectangle, square, hex, ellipse, circle)")
	cmd.Flags().StringVar(&sizeSpec, "size", "256x256", "map size as WIDTHxHEIGHT in pixels")
	cmd.Flags().StringVar(&mapColor, "color", string(tabletopia.MapGreen), "map color (green, red, blue)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "n", "orientation line direction (face or corner name)")
	cmd.Flags().BoolVar(&orientable, "orientable", false, "draw the orientation line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <out_dir>/<shape>-magmap.png)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")

	return cmd
}

// parseSizeSpec parses a "WIDTHxHEIGHT" flag value into a size.
func parseSizeSpec(spec string) (geom.Size, error) {
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return geom.Size{}, errors.New(errors.ErrCodeInvalidArgument,
			"size must be WIDTHxHEIGHT, got %q", spec)
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errW != nil || errH != nil {
		return geom.Size{}, errors.New(errors.ErrCodeInvalidArgument,
			"size must be WIDTHxHEIGHT, got %q", spec)
	}
	return geom.NewSize(w, h)
}

// buildShape constructs a shape by name.
func buildShape(name string, size geom.Size) (*shape.Shape, error) {
	switch strings.ToLower(name) {
	case "rectangle":
		return shape.NewRectangle(size), nil
	case "square":
		if err := shape.CheckSquare(size); err != nil {
			return nil, err
		}
		return shape.NewRectangle(size), nil
	case "hex":
		return shape.NewHex(size), nil
	case "ellipse":
		return shape.NewEllipse(size), nil
	case "circle":
		if err := shape.CheckSquare(size); err != nil {
			return nil, err
		}
		return shape.NewEllipse(size), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEnum,
			"unknown shape %q (expected rectangle, square, hex, ellipse, or circle)", name)
	}
}
