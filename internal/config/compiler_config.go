package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RootConfig is one search-path root the file-system importer attaches
// a DirectoryScope to.
type RootConfig struct {
	// Path is a directory on disk, relative to the config file's
	// location unless absolute.
	Path string `yaml:"path"`
}

// EssentialsConfig overrides the absolute dotted path used to resolve
// each well-known type; any field left empty falls back to the
// built-in default from DefaultEssentials.
type EssentialsConfig struct {
	Any    string `yaml:"any"`
	Object string `yaml:"object"`
	Enum   string `yaml:"enum"`
}

// CompilerConfig is the root of semfront.yaml: search roots, essentials
// overrides, and diagnostic color mode.
type CompilerConfig struct {
	// Roots lists every directory the file-system importer should
	// register as a package root, in order.
	Roots []RootConfig `yaml:"roots"`

	// Essentials overrides the default well-known absolute names.
	Essentials EssentialsConfig `yaml:"essentials"`

	// Color selects diagnostic coloring: "auto" (default), "always",
	// or "never".
	Color string `yaml:"color"`
}

// Default returns the built-in configuration used when no config file
// is present: no roots (roots come only from a loaded config file;
// the CLI has no flag for them), the default essentials table, and
// auto color detection.
func Default() *CompilerConfig {
	return &CompilerConfig{
		Essentials: DefaultEssentials,
		Color:      "auto",
	}
}

// DefaultEssentials is the built-in well-known-name table from the
// original specification §4.5.
var DefaultEssentials = EssentialsConfig{
	Any:    "spark.core.any.Any",
	Object: "spark.core.object.Object",
	Enum:   "spark.core.enumeration.Enum",
}

// Load parses a CompilerConfig from a YAML file at path, filling any
// blank essentials field from DefaultEssentials.
func Load(path string) (*CompilerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Essentials.Any == "" {
		cfg.Essentials.Any = DefaultEssentials.Any
	}
	if cfg.Essentials.Object == "" {
		cfg.Essentials.Object = DefaultEssentials.Object
	}
	if cfg.Essentials.Enum == "" {
		cfg.Essentials.Enum = DefaultEssentials.Enum
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
