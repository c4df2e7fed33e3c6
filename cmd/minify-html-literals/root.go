// Command minify-html-literals rewrites JavaScript and TypeScript files in
// place, minifying the markup inside html-tagged template literals while
// leaving every embedded expression untouched.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	minifyliterals "github.com/arthurevans/minify-html-literals"
	"github.com/arthurevans/minify-html-literals/internal/collections"
	"github.com/arthurevans/minify-html-literals/internal/config"
	"github.com/arthurevans/minify-html-literals/internal/log"
	"github.com/arthurevans/minify-html-literals/internal/version"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	write     bool
	sourceMap bool
	minifyCSS bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "minify-html-literals [patterns...]",
	Short: "Minify HTML inside tagged template literals",
	Long: `minify-html-literals rewrites source files in place, minifying the markup
embedded in html-tagged template literals (html` + "`...`" + `, getHTML()` + "`...`" + `, ...)
while preserving every ${...} expression byte-for-byte.

Patterns are doublestar globs resolved against the working directory:

  minify-html-literals --write 'src/**/*.js'

Without --write, the rewritten source prints to stdout. A v3 source map is
written next to each rewritten file as <file>.map unless disabled. Files
that are already minified are left untouched.`,
	Args:          cobra.ArbitraryArgs,
	Version:       version.GetVersion(),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (.json, .jsonc, .yaml, or .yml)")
	rootCmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place instead of printing to stdout")
	rootCmd.Flags().BoolVar(&sourceMap, "sourcemap", true, "emit a v3 source map per rewritten file")
	rootCmd.Flags().BoolVar(&minifyCSS, "minify-css", false, "also minify css-tagged template literals and <style> content")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// Flags given explicitly win over the config file.
	if cmd.Flags().Changed("sourcemap") {
		cfg.SourceMap = sourceMap
	}
	if cmd.Flags().Changed("minify-css") {
		cfg.MinifyCSS = minifyCSS
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Include
	}
	if len(patterns) == 0 {
		return errors.New("no input patterns: pass globs as arguments or set include in the config file")
	}

	files, err := expandPatterns(patterns, cfg.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %v", patterns)
	}

	for _, file := range files {
		if err := processFile(cmd, cfg, file); err != nil {
			return err
		}
	}
	return nil
}

// expandPatterns resolves the glob patterns, drops excluded paths, and
// returns a sorted, deduplicated file list.
func expandPatterns(patterns, exclude []string) ([]string, error) {
	seen := collections.NewSet[string]()
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen.Has(match) {
				continue
			}
			excluded, err := matchesAny(exclude, match)
			if err != nil {
				return nil, err
			}
			if excluded {
				log.Debug("excluded: %s", match)
				continue
			}
			seen.Add(match)
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether path matches any of the glob patterns.
// doublestar expects forward slashes, so Windows paths are normalized.
func matchesAny(patterns []string, path string) (bool, error) {
	normalized := filepath.ToSlash(path)
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, normalized)
		if err != nil {
			return false, fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// processFile runs the pipeline over one file and emits its outputs.
func processFile(cmd *cobra.Command, cfg config.Config, file string) error {
	source, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	opts := &minifyliterals.Options{
		FileName: filepath.ToSlash(file),
		Minify:   cfg.MinifyOptions(),
	}
	if cfg.MinifyCSS {
		opts.ShouldMinifyCSS = minifyliterals.DefaultShouldMinifyCSS
	}
	if !cfg.SourceMap {
		opts.SourceMap = minifyliterals.NoSourceMap()
	}

	result, err := minifyliterals.Minify(string(source), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if result == nil {
		log.Debug("%s: unchanged", file)
		return nil
	}

	if !write {
		fmt.Fprint(cmd.OutOrStdout(), result.Code)
		return nil
	}

	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(result.Code), info.Mode().Perm()); err != nil {
		return err
	}
	if result.Map != nil {
		data, err := json.Marshal(result.Map)
		if err != nil {
			return fmt.Errorf("%s: encode source map: %w", file, err)
		}
		if err := os.WriteFile(file+".map", data, info.Mode().Perm()); err != nil {
			return err
		}
	}
	log.Info("%s: minified", file)
	return nil
}
