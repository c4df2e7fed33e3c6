// Package js locates template literals in JavaScript and TypeScript source
// using tree-sitter, reporting each occurrence with its literal-text parts
// and byte ranges so callers can rewrite the source in place.
package js

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthurevans/minify-html-literals/internal/collections"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Parser extracts template literals from JS/TS source.
type Parser struct {
	parser      *sitter.Parser
	taggedQuery *sitter.Query
	allQuery    *sitter.Query
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}

		// Tagged form: the tag may be any expression (identifier, member,
		// or call, e.g. getHTML()`...`), so capture the function node
		// wholesale and keep its source text verbatim.
		taggedQuery, qerr := sitter.NewQuery(jsLang, `
			(call_expression
				function: (_) @tag
				arguments: (template_string) @template) @occurrence
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile tagged template query: %v", qerr))
		}

		allQuery, qerr := sitter.NewQuery(jsLang, `
			(template_string) @template
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile template query: %v", qerr))
		}

		return &Parser{
			parser:      parser,
			taggedQuery: taggedQuery,
			allQuery:    allQuery,
		}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
	if p.taggedQuery != nil {
		p.taggedQuery.Close()
	}
	if p.allQuery != nil {
		p.allQuery.Close()
	}
}

// ParseTemplates finds every template literal in source, tagged or not, and
// splits each at ${...} boundaries. Templates are returned in source order;
// a literal nested inside another literal's expression is its own entry.
func (p *Parser) ParseTemplates(source string) ([]Template, error) {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil, fmt.Errorf("js: failed to parse source")
	}
	defer tree.Close()

	root := tree.RootNode()

	// Tagged occurrences first, keyed by the template_string node's start
	// so the catch-all pass can skip literals already claimed by a tag.
	templates, tagged := p.collectTagged(root, sourceBytes)
	templates = p.collectUntagged(root, sourceBytes, tagged, templates)

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Start < templates[j].Start
	})
	return templates, nil
}

// collectTagged extracts tagged template occurrences, returning them along
// with the set of template_string start offsets they claimed.
func (p *Parser) collectTagged(root *sitter.Node, sourceBytes []byte) ([]Template, collections.Set[uint]) {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var templates []Template
	tagged := collections.NewSet[uint]()

	matches := cursor.Matches(p.taggedQuery, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var tag string
		var templateNode, occurrenceNode sitter.Node
		foundTemplate, foundOccurrence := false, false

		for _, capture := range match.Captures {
			switch p.taggedQuery.CaptureNames()[capture.Index] {
			case "tag":
				tag = string(sourceBytes[capture.Node.StartByte():capture.Node.EndByte()])
			case "template":
				templateNode = capture.Node
				foundTemplate = true
			case "occurrence":
				occurrenceNode = capture.Node
				foundOccurrence = true
			}
		}
		if !foundTemplate || !foundOccurrence {
			continue
		}

		tagged.Add(templateNode.StartByte())
		templates = append(templates, Template{
			Tag:   tag,
			Parts: extractParts(&templateNode, sourceBytes),
			Start: occurrenceNode.StartByte(),
			End:   occurrenceNode.EndByte(),
		})
	}
	return templates, tagged
}

// collectUntagged appends every template_string not claimed by a tag.
func (p *Parser) collectUntagged(root *sitter.Node, sourceBytes []byte, tagged collections.Set[uint], templates []Template) []Template {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.allQuery, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			node := capture.Node
			if tagged.Has(node.StartByte()) {
				continue
			}
			templates = append(templates, Template{
				Parts: extractParts(&node, sourceBytes),
				Start: node.StartByte(),
				End:   node.EndByte(),
			})
		}
	}
	return templates
}

// extractParts splits a template_string node into literal-text parts,
// deriving them positionally from the template_substitution children so
// that empty parts (adjacent holes, or a hole at either end of the literal)
// are represented rather than lost. The surrounding backticks are excluded.
func extractParts(templateNode *sitter.Node, sourceBytes []byte) []Part {
	contentStart := templateNode.StartByte() + 1
	contentEnd := templateNode.EndByte() - 1

	var parts []Part
	pos := contentStart
	for i := uint(0); i < templateNode.ChildCount(); i++ {
		child := templateNode.Child(i)
		if child.Kind() != "template_substitution" {
			continue
		}
		parts = append(parts, Part{
			Text:  string(sourceBytes[pos:child.StartByte()]),
			Start: pos,
			End:   child.StartByte(),
		})
		pos = child.EndByte()
	}
	parts = append(parts, Part{
		Text:  string(sourceBytes[pos:contentEnd]),
		Start: pos,
		End:   contentEnd,
	})
	return parts
}
