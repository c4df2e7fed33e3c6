package minifyliterals

import (
	"github.com/arthurevans/minify-html-literals/internal/parser/js"
	"github.com/arthurevans/minify-html-literals/textbuf"
)

// ParseFunc turns raw source text into the ordered template literal
// occurrences it contains. Overrides the default tree-sitter scanner.
type ParseFunc func(source string) ([]Template, error)

// SourceMapFunc builds a source map after all overwrites have been staged.
type SourceMapFunc func(buffer Buffer, fileName string) (*textbuf.SourceMap, error)

// Buffer is the scoped mutable text buffer capability the pipeline rewrites
// through: non-overlapping range overwrites addressed with pristine offsets,
// single-pass materialization, and v3 map generation. *textbuf.Buffer is the
// default implementation.
type Buffer interface {
	Overwrite(start, end uint, replacement string) error
	String() string
	GenerateMap(o textbuf.GenerateMapOptions) *textbuf.SourceMap
}

// ValidateOption selects validation behavior. The zero value runs the
// default checks; NoValidate skips validation entirely; WithValidator runs a
// custom Validator.
type ValidateOption struct {
	disabled bool
	custom   Validator
}

// NoValidate disables validation. This removes the safety net that converts
// a minifier eating an expression hole into a hard failure.
func NoValidate() ValidateOption {
	return ValidateOption{disabled: true}
}

// WithValidator runs v instead of the default checks.
func WithValidator(v Validator) ValidateOption {
	return ValidateOption{custom: v}
}

// SourceMapOption selects source-map behavior. The zero value uses the
// default emitter; NoSourceMap omits the map; WithSourceMapGenerator runs a
// custom emitter.
type SourceMapOption struct {
	disabled bool
	custom   SourceMapFunc
}

// NoSourceMap omits the map from the result.
func NoSourceMap() SourceMapOption {
	return SourceMapOption{disabled: true}
}

// WithSourceMapGenerator emits the map with fn instead of the default.
func WithSourceMapGenerator(fn SourceMapFunc) SourceMapOption {
	return SourceMapOption{custom: fn}
}

// Options configures one Minify run. The zero value (or a nil *Options) is
// fully usable: default scanner, default filter, default strategy, default
// validation, default source-map emitter.
type Options struct {
	// FileName is the logical input name recorded in source-map metadata.
	FileName string
	// Minify is forwarded to the strategy's minify step.
	Minify MinifyOptions
	// ParseLiterals overrides the literal scanner.
	ParseLiterals ParseFunc
	// ShouldMinify overrides the template filter. Nil means
	// DefaultShouldMinify.
	ShouldMinify func(*Template) bool
	// ShouldMinifyCSS, when non-nil, routes matching templates through the
	// strategy's CSS minify step. Nil leaves CSS-tagged templates untouched.
	// Expression holes are supported in declaration-value position; a hole
	// in selector position is dropped by the stylesheet minifier and the
	// run fails with a PartCountMismatchError.
	ShouldMinifyCSS func(*Template) bool
	// Strategy overrides any or all of the placeholder strategy operations;
	// nil fields keep their defaults.
	Strategy Strategy
	// Validate selects default, disabled, or custom validation.
	Validate ValidateOption
	// SourceMap selects default, disabled, or custom map emission.
	SourceMap SourceMapOption
	// NewBuffer overrides the mutable-buffer implementation.
	NewBuffer func(source string) Buffer
}

// runConfig is an Options value resolved once at the start of a run: every
// seam bound to either the override or its default, tri-states collapsed.
type runConfig struct {
	fileName        string
	minify          MinifyOptions
	parse           ParseFunc
	shouldMinify    func(*Template) bool
	shouldMinifyCSS func(*Template) bool
	strategy        Strategy
	validator       Validator // nil when validation is disabled
	generateMap     SourceMapFunc
	newBuffer       func(source string) Buffer
}

func resolve(opts *Options) runConfig {
	if opts == nil {
		opts = &Options{}
	}
	cfg := runConfig{
		fileName:        opts.FileName,
		minify:          opts.Minify,
		parse:           opts.ParseLiterals,
		shouldMinify:    opts.ShouldMinify,
		shouldMinifyCSS: opts.ShouldMinifyCSS,
		strategy:        opts.Strategy,
		newBuffer:       opts.NewBuffer,
	}
	if cfg.parse == nil {
		cfg.parse = ParseLiterals
	}
	if cfg.shouldMinify == nil {
		cfg.shouldMinify = DefaultShouldMinify
	}
	def := DefaultStrategy()
	if cfg.strategy.GetPlaceholder == nil {
		cfg.strategy.GetPlaceholder = def.GetPlaceholder
	}
	if cfg.strategy.CombineHTMLStrings == nil {
		cfg.strategy.CombineHTMLStrings = def.CombineHTMLStrings
	}
	if cfg.strategy.MinifyHTML == nil {
		cfg.strategy.MinifyHTML = def.MinifyHTML
	}
	if cfg.strategy.MinifyCSS == nil {
		cfg.strategy.MinifyCSS = def.MinifyCSS
	}
	if cfg.strategy.SplitHTMLByPlaceholder == nil {
		cfg.strategy.SplitHTMLByPlaceholder = def.SplitHTMLByPlaceholder
	}
	switch {
	case opts.Validate.disabled:
	case opts.Validate.custom != nil:
		cfg.validator = opts.Validate.custom
	default:
		cfg.validator = DefaultValidator()
	}
	switch {
	case opts.SourceMap.disabled:
	case opts.SourceMap.custom != nil:
		cfg.generateMap = opts.SourceMap.custom
	default:
		cfg.generateMap = GenerateSourceMap
	}
	if cfg.newBuffer == nil {
		cfg.newBuffer = func(source string) Buffer {
			return textbuf.New(source)
		}
	}
	return cfg
}

// ParseLiterals is the default literal scanner, backed by
// tree-sitter-javascript. It reports every template literal in source order,
// tagged or not, with raw part text and pristine byte ranges.
func ParseLiterals(source string) ([]Template, error) {
	p := js.AcquireParser()
	defer js.ReleaseParser(p)

	scanned, err := p.ParseTemplates(source)
	if err != nil {
		return nil, err
	}
	templates := make([]Template, 0, len(scanned))
	for _, t := range scanned {
		parts := make([]Part, len(t.Parts))
		for i, pt := range t.Parts {
			parts[i] = Part{Text: pt.Text, Start: pt.Start, End: pt.End}
		}
		templates = append(templates, Template{
			Tag:   t.Tag,
			Parts: parts,
			Start: t.Start,
			End:   t.End,
		})
	}
	return templates, nil
}

// GenerateSourceMap is the default map emitter: a high-resolution v3 map
// named "<fileName>.map" over the single source fileName, with the input
// embedded as sourcesContent.
func GenerateSourceMap(buffer Buffer, fileName string) (*textbuf.SourceMap, error) {
	return buffer.GenerateMap(textbuf.GenerateMapOptions{
		File:           fileName + ".map",
		Source:         fileName,
		IncludeContent: true,
		Hires:          true,
	}), nil
}
