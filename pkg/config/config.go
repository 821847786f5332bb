// Package config holds the explicit runtime configuration for asset
// resolution and output. There is no package-level singleton; a Config
// value is constructed once and passed to the components that need it.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ggekit/gge/pkg/errors"
)

// Default directory names, relative to the working directory.
const (
	DefaultAssetsDir = "assets"
	DefaultOutDir    = "out"
)

// Config is the resolved runtime configuration.
type Config struct {
	// AssetsDir is the root for relative image and font references.
	AssetsDir string `toml:"assets_dir"`
	// OutDir receives rendered artifacts.
	OutDir string `toml:"out_dir"`
}

// Default returns a config with the default directories.
func Default() Config {
	return Config{
		AssetsDir: DefaultAssetsDir,
		OutDir:    DefaultOutDir,
	}
}

// Load reads a TOML config file. Fields missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidManifest, err,
			"cannot load config file %s", path)
	}
	return cfg, nil
}

// AssetPath resolves a relative asset reference against AssetsDir after
// validating it for traversal.
func (c Config) AssetPath(ref string) (string, error) {
	if err := errors.ValidateAssetPath(ref); err != nil {
		return "", err
	}
	return filepath.Join(c.AssetsDir, ref), nil
}

// OutPath joins a result filename onto OutDir.
func (c Config) OutPath(name string) string {
	return filepath.Join(c.OutDir, name)
}

// EnsureDirs creates the assets and output directories if they do not
// exist. A path that exists but is not a directory is rejected instead
// of being replaced.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.AssetsDir, c.OutDir} {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates dir if missing, failing when the path exists as a
// regular file.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return errors.New(errors.ErrCodeInvalidPath,
			"%s exists but is not a directory", dir)
	case err == nil:
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err,
			"cannot create directory %s", dir)
	}
	return nil
}
