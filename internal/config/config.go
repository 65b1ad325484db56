// Package config loads edlgen.toml, the optional project-level settings
// file. Every key is optional — an edlgen.toml with no keys at all is
// valid and yields the built-in defaults. Precedence is CLI flag > toml
// value > built-in default; this package only resolves the
// toml-vs-default half of that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "edlgen.toml"

// Config mirrors the driver's generation flags, letting a project pin them
// once instead of repeating --error-handling/--namespace/... on every run.
type Config struct {
	OutputDirectory    string `toml:"output_directory"`
	ErrorHandling      string `toml:"error_handling"`
	VirtualTrustLayer  string `toml:"virtual_trust_layer"`
	Namespace          string `toml:"namespace"`
	Vtl0ClassName      string `toml:"vtl0_class_name"`
	FlatbufferCompiler string `toml:"flatbuffer_compiler"`
	CacheDir           string `toml:"cache_dir"`
}

// Default returns the built-in defaults used when neither a flag nor a
// edlgen.toml value is present.
func Default() Config {
	return Config{
		ErrorHandling:     "errorcode",
		VirtualTrustLayer: "vtl0",
		Namespace:         "edl",
		Vtl0ClassName:     "EnclaveFacade",
		CacheDir:          ".edlgen-cache",
	}
}

// Find walks upward from startDir looking for edlgen.toml. Returns
// ok=false, not an error, when no file is found anywhere up to the
// filesystem root.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads edlgen.toml at path, overlaying Default() with whatever keys
// are present. An absent key simply keeps the default.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads edlgen.toml starting from startDir if one exists, else
// returns Default(). It never errors on a missing file — only on a
// malformed one.
func Resolve(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
