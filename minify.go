package minifyliterals

import (
	"fmt"
	"strings"

	"github.com/arthurevans/minify-html-literals/textbuf"
)

// Result is the outcome of a run that changed the source: the rewritten
// code and, unless disabled, its v3 source map.
type Result struct {
	Code string
	Map  *textbuf.SourceMap
}

// Minify rewrites every in-scope template literal in source with minified
// markup, leaving embedded expressions byte-for-byte intact. It returns a
// nil Result (and nil error) when nothing would change: no template is in
// scope, or the source is already minified. Any validation or minification
// failure aborts the whole run; there is no partial output.
func Minify(source string, opts *Options) (*Result, error) {
	cfg := resolve(opts)

	templates, err := cfg.parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse literals: %w", err)
	}

	buffer := cfg.newBuffer(source)
	staged := false
	var stagedEnd uint
	for i := range templates {
		t := &templates[i]

		// A literal nested inside an already staged template lives in one
		// of its expression holes; that text is preserved verbatim, so the
		// nested literal must not be rewritten separately.
		if staged && t.Start < stagedEnd {
			continue
		}

		cssMode := false
		switch {
		case cfg.shouldMinify(t):
		case cfg.shouldMinifyCSS != nil && cfg.shouldMinifyCSS(t):
			cssMode = true
		default:
			continue
		}

		replacement, err := cfg.rewrite(source, t, cssMode)
		if err != nil {
			return nil, err
		}
		if err := buffer.Overwrite(t.Start, t.End, replacement); err != nil {
			return nil, fmt.Errorf("stage edit for template at offset %d: %w", t.Start, err)
		}
		staged = true
		stagedEnd = t.End
	}
	if !staged {
		return nil, nil
	}

	code := buffer.String()
	if code == source {
		return nil, nil
	}

	result := &Result{Code: code}
	if cfg.generateMap != nil {
		m, err := cfg.generateMap(buffer, cfg.fileName)
		if err != nil {
			return nil, fmt.Errorf("generate source map: %w", err)
		}
		result.Map = m
	}
	return result, nil
}

// rewrite runs the placeholder strategy and validator for one template and
// reconstructs its full literal source: minified parts interleaved with the
// pristine expression sources, re-wrapped with the original tag and
// delimiters.
func (cfg *runConfig) rewrite(source string, t *Template, cssMode bool) (string, error) {
	placeholder := cfg.strategy.GetPlaceholder(t.Parts)
	if cfg.validator != nil {
		if err := cfg.validator.EnsurePlaceholderValid(placeholder); err != nil {
			return "", err
		}
	}

	combined := cfg.strategy.CombineHTMLStrings(t.Parts, placeholder)
	var minified string
	var err error
	if cssMode {
		minified, err = cfg.strategy.MinifyCSS(combined, cfg.minify)
	} else {
		minified, err = cfg.strategy.MinifyHTML(combined, cfg.minify)
	}
	if err != nil {
		return "", fmt.Errorf("minify template at offset %d: %w", t.Start, err)
	}

	var minifiedParts []string
	if cssMode {
		// A stylesheet minifier may keep the placeholder's trailing ";"
		// where it doubles as a declaration separator. Split on the bare
		// spelling and reconcile the surviving semicolons against the
		// original part texts.
		minifiedParts = cfg.strategy.SplitHTMLByPlaceholder(minified, strings.TrimSuffix(placeholder, ";"))
		reconcileCSSSeparators(t.Parts, minifiedParts)
	} else {
		minifiedParts = cfg.strategy.SplitHTMLByPlaceholder(minified, placeholder)
	}
	if cfg.validator != nil {
		if err := cfg.validator.EnsureHTMLPartsValid(t.Parts, minifiedParts); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	sb.WriteString(source[t.Start:t.Parts[0].Start])
	for i, part := range minifiedParts {
		sb.WriteString(part)
		if i+1 < len(t.Parts) && i+1 < len(minifiedParts) {
			sb.WriteString(t.expression(source, i))
		}
	}
	sb.WriteString(source[t.Parts[len(t.Parts)-1].End:t.End])
	return sb.String(), nil
}

// reconcileCSSSeparators drops a split fragment's leading semicolon when it
// belonged to the placeholder rather than to the stylesheet. The minifier
// collapses the placeholder's trailing ";" with an adjacent declaration
// separator into one, so a surviving ";" is kept only where the original
// part text begins with one.
func reconcileCSSSeparators(parts []Part, minifiedParts []string) {
	for i := 1; i < len(minifiedParts) && i < len(parts); i++ {
		if !strings.HasPrefix(minifiedParts[i], ";") {
			continue
		}
		if !strings.HasPrefix(strings.TrimLeft(parts[i].Text, " \t\r\n"), ";") {
			minifiedParts[i] = minifiedParts[i][1:]
		}
	}
}
