// Package project locates and parses the scribe.toml manifest that
// configures emission for a source tree.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"scribe/internal/helpers"
	"scribe/internal/printer"
)

// ManifestName is the file the parent walk looks for.
const ManifestName = "scribe.toml"

// Manifest is one parsed scribe.toml plus its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest layout.
type Config struct {
	Emit    EmitConfig        `toml:"emit"`
	Helpers map[string]string `toml:"helpers"`
}

// EmitConfig is the [emit] table.
type EmitConfig struct {
	NewLine         string `toml:"newline"` // "lf" or "crlf"
	IndentWidth     int    `toml:"indent_width"`
	UseTabs         bool   `toml:"use_tabs"`
	Comments        *bool  `toml:"comments"`
	SourceMap       *bool  `toml:"source_map"`
	IsolatedModules bool   `toml:"isolated_modules"`
}

// FindManifest walks up from startDir to locate scribe.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing scribe.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Load walks up from startDir and parses the nearest manifest. The second
// result is false when no manifest exists, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Parse(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// Parse reads and validates one manifest file.
func Parse(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(path, meta, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(path string, meta toml.MetaData, cfg *Config) error {
	if meta.IsDefined("emit", "newline") {
		switch strings.ToLower(cfg.Emit.NewLine) {
		case "lf", "crlf":
		default:
			return fmt.Errorf("%s: [emit].newline must be \"lf\" or \"crlf\", got %q", path, cfg.Emit.NewLine)
		}
	}
	if cfg.Emit.IndentWidth < 0 {
		return fmt.Errorf("%s: [emit].indent_width must not be negative", path)
	}
	for name := range cfg.Helpers {
		if _, ok := helperIDs[name]; !ok {
			return fmt.Errorf("%s: [helpers] has no shim named %q", path, name)
		}
	}
	return nil
}

var helperIDs = map[string]helpers.ID{
	"extends":    helpers.Extends,
	"decorate":   helpers.Decorate,
	"metadata":   helpers.Metadata,
	"param":      helpers.Param,
	"awaiter":    helpers.Awaiter,
	"exportStar": helpers.ExportStar,
}

// PrinterOptions translates the [emit] table into printer options.
func (c Config) PrinterOptions() printer.Options {
	opts := printer.Options{
		IndentWidth:     c.Emit.IndentWidth,
		UseTabs:         c.Emit.UseTabs,
		IsolatedModules: c.Emit.IsolatedModules,
	}
	if strings.EqualFold(c.Emit.NewLine, "crlf") {
		opts.NewLine = "\r\n"
	}
	if c.Emit.Comments != nil && !*c.Emit.Comments {
		opts.RemoveComments = true
	}
	return opts
}

// SourceMapEnabled reports whether the manifest asks for position-map
// artifacts; the default is on.
func (c Config) SourceMapEnabled() bool {
	return c.Emit.SourceMap == nil || *c.Emit.SourceMap
}

// HelperRegistry builds a registry with the manifest's body overrides
// applied on top of the built-in shims.
func (c Config) HelperRegistry() *helpers.Registry {
	reg := helpers.NewRegistry()
	for name, body := range c.Helpers {
		id, ok := helperIDs[name]
		if !ok {
			continue
		}
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		reg.Override(id, body)
	}
	return reg
}
