package cli

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/fonts"
)

// fontsCommand creates the fonts command group.
func (c *CLI) fontsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Inspect font resolution",
	}

	cmd.AddCommand(c.fontsResolveCommand())

	return cmd
}

// fontsResolveCommand creates the fonts resolve command.
func (c *CLI) fontsResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [ref]",
		Short: "Resolve a font reference",
		Long: `Resolve shows how a font reference would be loaded for text
rendering: the bundled default for an empty reference, a file loaded
directly from its path, or a family name found in the system font
directories.`,
		Example: `  # Show the bundled default font
  gge fonts resolve

  # Resolve a font family from the system directories
  gge fonts resolve "DejaVu Sans"

  # Validate a font file
  gge fonts resolve assets/fonts/title.ttf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}

			f, err := fonts.Resolve(ref)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			name := f.Name(truetype.NameIDFontFullName)
			if name == "" {
				name = f.Name(truetype.NameIDFontFamily)
			}

			switch {
			case ref == "":
				printSuccess("Resolved bundled default font")
			default:
				printSuccess("Resolved %s", StyleValue.Render(ref))
			}
			if name != "" {
				printDetail("full name: %s", name)
			}
			if path := fontSourcePath(ref); path != "" {
				printFile(path)
			}
			return nil
		},
	}
}

// fontSourcePath reports where a resolved font reference was loaded
// from, or "" for the compiled-in default.
func fontSourcePath(ref string) string {
	if ref == "" {
		return ""
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return ref
	}
	if path, err := findfont.Find(ref); err == nil {
		return path
	}
	return ""
}
