package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ggekit/gge/pkg/cache"
)

// cacheCommand creates the cache command group.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
		Long: `The cache stores rendered artifacts keyed by manifest content, so
re-rendering an unchanged piece is served from disk instead of being
recomposited.`,
	}

	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

// cachePathCommand creates the cache path command.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				printError("cannot resolve cache directory: %s", err)
				return err
			}
			printInfo("Cache directory: %s", StyleValue.Render(dir))
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printDetail("(not created yet)")
			}
			return nil
		},
	}
}

// cacheClearCommand creates the cache clear command.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				printError("cannot resolve cache directory: %s", err)
				return err
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is already empty")
				return nil
			}

			store, err := cache.NewFileCache(dir)
			if err != nil {
				printError("cannot open cache: %s", err)
				return err
			}
			defer store.Close()

			if err := store.Clear(); err != nil {
				printError("cannot clear cache: %s", err)
				return err
			}

			printSuccess("Cleared cache at %s", StyleValue.Render(dir))
			return nil
		},
	}
}
