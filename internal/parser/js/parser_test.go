package js_test

import (
	"testing"

	"github.com/arthurevans/minify-html-literals/internal/parser/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partTexts flattens a template's parts for easy comparison.
func partTexts(t js.Template) []string {
	texts := make([]string, len(t.Parts))
	for i, p := range t.Parts {
		texts[i] = p.Text
	}
	return texts
}

func parse(t *testing.T, source string) []js.Template {
	t.Helper()
	p := js.AcquireParser()
	defer js.ReleaseParser(p)

	templates, err := p.ParseTemplates(source)
	require.NoError(t, err)
	return templates
}

func TestParseTemplates(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantTag    string
		wantParts  []string
		wantSource string // source[Start:End] of the single expected template
	}{
		{
			name:       "identifier tag",
			source:     "const x = html`<b>${a}</b>`;\n",
			wantTag:    "html",
			wantParts:  []string{"<b>", "</b>"},
			wantSource: "html`<b>${a}</b>`",
		},
		{
			name:       "call tag",
			source:     "const x = getHTML()`<i>${a}</i>`;\n",
			wantTag:    "getHTML()",
			wantParts:  []string{"<i>", "</i>"},
			wantSource: "getHTML()`<i>${a}</i>`",
		},
		{
			name:       "member tag",
			source:     "const x = this.html`<i>y</i>`;\n",
			wantTag:    "this.html",
			wantParts:  []string{"<i>y</i>"},
			wantSource: "this.html`<i>y</i>`",
		},
		{
			name:       "untagged literal",
			source:     "const s = `a${b}c`;\n",
			wantTag:    "",
			wantParts:  []string{"a", "c"},
			wantSource: "`a${b}c`",
		},
		{
			name:       "no holes",
			source:     "const s = html`<p>static</p>`;\n",
			wantTag:    "html",
			wantParts:  []string{"<p>static</p>"},
			wantSource: "html`<p>static</p>`",
		},
		{
			name:       "adjacent holes synthesize empty parts",
			source:     "const s = html`${a}${b}`;\n",
			wantTag:    "html",
			wantParts:  []string{"", "", ""},
			wantSource: "html`${a}${b}`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates := parse(t, tt.source)
			require.Len(t, templates, 1)

			tmpl := templates[0]
			assert.Equal(t, tt.wantTag, tmpl.Tag)
			assert.Equal(t, tt.wantParts, partTexts(tmpl))
			assert.Equal(t, tt.wantSource, tt.source[tmpl.Start:tmpl.End])
		})
	}
}

func TestParseTemplatesNone(t *testing.T) {
	assert.Empty(t, parse(t, "const x = 1 + 'two';\n"))
}

func TestParseTemplatesSourceOrder(t *testing.T) {
	source := "const a = css`.x{}`;\nconst b = html`<p>${y}</p>`;\nconst c = `plain`;\n"
	templates := parse(t, source)
	require.Len(t, templates, 3)

	assert.Equal(t, "css", templates[0].Tag)
	assert.Equal(t, "html", templates[1].Tag)
	assert.Equal(t, "", templates[2].Tag)
	assert.Less(t, templates[0].Start, templates[1].Start)
	assert.Less(t, templates[1].Start, templates[2].Start)
}

func TestParseTemplatesPartRanges(t *testing.T) {
	source := "html`<b>${a}</b>`"
	templates := parse(t, source)
	require.Len(t, templates, 1)

	tmpl := templates[0]
	require.Len(t, tmpl.Parts, 2)
	for _, p := range tmpl.Parts {
		assert.Equal(t, p.Text, source[p.Start:p.End], "part ranges must address the scanned source")
	}
	// The hole between the parts is the ${...} span, inclusive.
	assert.Equal(t, "${a}", source[tmpl.Parts[0].End:tmpl.Parts[1].Start])
}

func TestParseTemplatesNested(t *testing.T) {
	source := "const t = html`<ul>${xs.map(x => `<li>${x}</li>`)}</ul>`;\n"
	templates := parse(t, source)
	require.Len(t, templates, 2, "a literal inside an expression is its own occurrence")

	outer, inner := templates[0], templates[1]
	assert.Equal(t, "html", outer.Tag)
	assert.Equal(t, []string{"<ul>", "</ul>"}, partTexts(outer))

	assert.Equal(t, "", inner.Tag)
	assert.Equal(t, []string{"<li>", "</li>"}, partTexts(inner))
	assert.Greater(t, inner.Start, outer.Start)
	assert.Less(t, inner.End, outer.End)
}

func TestParseTemplatesEscapesStayRaw(t *testing.T) {
	source := "const t = html`a\\n${b}`;\n"
	templates := parse(t, source)
	require.Len(t, templates, 1)
	assert.Equal(t, []string{"a\\n", ""}, partTexts(templates[0]))
}

func TestParserReuse(t *testing.T) {
	p := js.AcquireParser()
	defer js.ReleaseParser(p)

	for range 3 {
		templates, err := p.ParseTemplates("const x = html`<b>x</b>`;")
		require.NoError(t, err)
		assert.Len(t, templates, 1)
	}
}
