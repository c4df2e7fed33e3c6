// Package config loads the CLI configuration file. JSON, JSONC, and YAML
// are supported; the format is chosen by file extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	minifyliterals "github.com/arthurevans/minify-html-literals"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// MinifySettings mirrors the library's minification knobs in config-file
// form.
type MinifySettings struct {
	KeepComments          bool `json:"keepComments" yaml:"keepComments"`
	KeepQuotes            bool `json:"keepQuotes" yaml:"keepQuotes"`
	KeepWhitespace        bool `json:"keepWhitespace" yaml:"keepWhitespace"`
	RemoveEndTags         bool `json:"removeEndTags" yaml:"removeEndTags"`
	RemoveDocumentTags    bool `json:"removeDocumentTags" yaml:"removeDocumentTags"`
	RemoveDefaultAttrVals bool `json:"removeDefaultAttrVals" yaml:"removeDefaultAttrVals"`
	CSSPrecision          int  `json:"cssPrecision" yaml:"cssPrecision"`
}

// Config is the CLI configuration.
type Config struct {
	// Include lists doublestar glob patterns of files to process; command
	// line patterns take precedence when given.
	Include []string `json:"include" yaml:"include"`

	// Exclude lists glob patterns removed from the include set.
	Exclude []string `json:"exclude" yaml:"exclude"`

	// SourceMap controls whether <file>.map files are written.
	SourceMap bool `json:"sourceMap" yaml:"sourceMap"`

	// MinifyCSS opts css-tagged templates (and <style> content) in.
	MinifyCSS bool `json:"minifyCSS" yaml:"minifyCSS"`

	// Minify holds the minification knobs forwarded to the library.
	Minify MinifySettings `json:"minify" yaml:"minify"`
}

// Default returns the default CLI configuration
func Default() Config {
	return Config{
		Include:   []string{},
		Exclude:   []string{},
		SourceMap: true,
	}
}

// Load reads and parses the configuration file at path on top of the
// defaults. ".json" and ".jsonc" parse as JSONC; ".yaml" and ".yml" as YAML.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension %q (want .json, .jsonc, .yaml, or .yml)", ext)
	}
	return cfg, nil
}

// MinifyOptions converts the config-file knobs to library options.
func (c Config) MinifyOptions() minifyliterals.MinifyOptions {
	return minifyliterals.MinifyOptions{
		KeepComments:          c.Minify.KeepComments,
		KeepQuotes:            c.Minify.KeepQuotes,
		KeepWhitespace:        c.Minify.KeepWhitespace,
		RemoveEndTags:         c.Minify.RemoveEndTags,
		RemoveDocumentTags:    c.Minify.RemoveDocumentTags,
		RemoveDefaultAttrVals: c.Minify.RemoveDefaultAttrVals,
		MinifyCSS:             c.MinifyCSS,
		CSSPrecision:          c.Minify.CSSPrecision,
	}
}
