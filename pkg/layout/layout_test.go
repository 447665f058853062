/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: layout_test.go
Description: End-to-end tests for the layout analysis pipeline. Covers pattern
detection on realistic markup, block naming, kebab-case normalization, and
error wrapping.
*/

package layout_test

import (
	"regexp"
	"testing"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/kleascm/blocklens/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, markup, selector string) interfaces.LayoutAnalysis {
	t.Helper()
	tree, err := dom.ParseString(markup)
	require.NoError(t, err)
	n, err := tree.QueryOne(selector)
	require.NoError(t, err)
	a, err := layout.Analyze(n)
	require.NoError(t, err)
	return a
}

// TestImageGallery tests that uniform image rows become a media grid
func TestImageGallery(t *testing.T) {
	a := analyze(t, `<html><body><div id="g">
		<img src="1.png"><img src="2.png"><img src="3.png"><img src="4.png">
	</div></body></html>`, "#g")

	assert.Equal(t, interfaces.PatternGrid, a.Pattern)
	assert.Equal(t, "card-grid-4-media", a.BlockName)
	assert.Equal(t, 4, a.Structure.RowCount)
	assert.Equal(t, 4, a.Structure.ColumnCount)
	assert.True(t, a.Structure.HasImages)
	assert.True(t, a.Structure.IsRepeating)
}

// TestLoneParagraph tests that a single prose child stays unclassified
func TestLoneParagraph(t *testing.T) {
	a := analyze(t, `<html><body><div id="d"><p>Just one paragraph.</p></div></body></html>`, "#d")

	assert.Equal(t, interfaces.PatternUnknown, a.Pattern)
	assert.Equal(t, "custom-block", a.BlockName)
	assert.Equal(t, 1, a.Structure.RowCount)
	assert.Equal(t, 1, a.Structure.ColumnCount)
}

// TestAccordion tests alternating heading and panel rows
func TestAccordion(t *testing.T) {
	a := analyze(t, `<html><body><section id="faq">
		<h2>Shipping</h2><div><p>Ships in two days.</p></div>
		<h2>Returns</h2><div><p>Thirty day window.</p></div>
	</section></body></html>`, "#faq")

	assert.Equal(t, interfaces.PatternAccordion, a.Pattern)
	assert.Equal(t, "accordion-2-items", a.BlockName)
}

// TestSingleImage tests the single image child fast path
func TestSingleImage(t *testing.T) {
	a := analyze(t, `<html><body><figure id="f"><img src="x.png"></figure></body></html>`, "#f")

	assert.Equal(t, interfaces.PatternSingleImage, a.Pattern)
	assert.Equal(t, "featured-image", a.BlockName)
}

// TestHero tests prominent image with heading, with and without a CTA
func TestHero(t *testing.T) {
	a := analyze(t, `<html><body><section id="h">
		<img src="bg.jpg" width="1200">
		<h1>Big Launch</h1>
		<a href="/buy">Buy now</a>
	</section></body></html>`, "#h")
	assert.Equal(t, interfaces.PatternHero, a.Pattern)
	assert.Equal(t, "hero-banner-cta", a.BlockName)

	a = analyze(t, `<html><body><section id="h">
		<img src="bg.jpg" width="1200">
		<h1>Big Launch</h1>
	</section></body></html>`, "#h")
	assert.Equal(t, interfaces.PatternHero, a.Pattern)
	assert.Equal(t, "hero-banner", a.BlockName)
}

// TestColumns tests non-repeating side-by-side children
func TestColumns(t *testing.T) {
	a := analyze(t, `<html><body><div id="c">
		<img src="x.png">
		<p>First column of copy.</p>
		<p>Second column of copy.</p>
	</div></body></html>`, "#c")

	assert.Equal(t, interfaces.PatternColumns, a.Pattern)
	assert.Equal(t, "columns-3", a.BlockName)
	assert.Equal(t, 3, a.Structure.ColumnCount)
}

// TestTextOnly tests prose recognition with and without headings
func TestTextOnly(t *testing.T) {
	a := analyze(t, `<html><body><div id="t"><p>One.</p><p>Two.</p></div></body></html>`, "#t")
	assert.Equal(t, interfaces.PatternTextOnly, a.Pattern)
	assert.Equal(t, "text-block", a.BlockName)

	a = analyze(t, `<html><body><section id="t"><h2>About</h2><p>Body.</p></section></body></html>`, "#t")
	assert.Equal(t, interfaces.PatternTextOnly, a.Pattern)
}

// TestList tests single-list detection and the illustrated variant
func TestList(t *testing.T) {
	a := analyze(t, `<html><body><nav id="l"><ul><li>Home</li><li>Docs</li></ul></nav></body></html>`, "#l")
	assert.Equal(t, interfaces.PatternList, a.Pattern)
	assert.Equal(t, "content-list", a.BlockName)

	a = analyze(t, `<html><body><div id="l"><ul><li><img src="i.png">Item</li></ul></div></body></html>`, "#l")
	assert.Equal(t, interfaces.PatternList, a.Pattern)
	assert.Equal(t, "content-list-illustrated", a.BlockName)
}

// TestGridBeatsColumns tests that uniform card rows classify as grid even
// though their column shape would also satisfy the columns rule
func TestGridBeatsColumns(t *testing.T) {
	a := analyze(t, `<html><body><div id="g">
		<div class="card"><img src="1.png"><p>A</p></div>
		<div class="card"><img src="2.png"><p>B</p></div>
		<div class="card"><img src="3.png"><p>C</p></div>
	</div></body></html>`, "#g")

	assert.Equal(t, interfaces.PatternGrid, a.Pattern)
	assert.Equal(t, "card-grid-3-media", a.BlockName)
}

// TestSingleMixedChildStaysUnknown pins the interaction between column
// estimation and the image-beside-text rule: a lone wrapper child always
// counts as one column, so a side-by-side image and paragraph inside one
// wrapper never reaches the media-text classification.
func TestSingleMixedChildStaysUnknown(t *testing.T) {
	a := analyze(t, `<html><body><section id="m">
		<div class="split"><img src="x.png"><p>Copy beside the image.</p></div>
	</section></body></html>`, "#m")

	assert.Equal(t, 1, a.Structure.ColumnCount)
	assert.Equal(t, interfaces.PatternUnknown, a.Pattern)
	assert.Equal(t, "custom-block", a.BlockName)
}

// TestMediaTextNaming tests side suffixes on the structure summary directly,
// since the detector cannot currently produce the pattern
func TestMediaTextNaming(t *testing.T) {
	left := interfaces.LayoutStructure{
		ChildSignatures: []interfaces.ChildSignature{interfaces.SignatureImage, interfaces.SignatureText},
	}
	assert.Equal(t, "media-text-left", layout.GenerateBlockName(interfaces.PatternMediaText, left))

	right := interfaces.LayoutStructure{
		ChildSignatures: []interfaces.ChildSignature{interfaces.SignatureText, interfaces.SignatureImage},
	}
	assert.Equal(t, "media-text-right", layout.GenerateBlockName(interfaces.PatternMediaText, right))
}

// TestBlockNamesAreKebab tests the output format invariant across patterns
func TestBlockNamesAreKebab(t *testing.T) {
	kebab := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	structure := interfaces.LayoutStructure{
		RowCount:        4,
		ColumnCount:     2,
		HasImages:       true,
		HasLinks:        true,
		ChildSignatures: []interfaces.ChildSignature{interfaces.SignatureImage},
	}
	for _, p := range []interfaces.LayoutPattern{
		interfaces.PatternGrid, interfaces.PatternColumns, interfaces.PatternHero,
		interfaces.PatternMediaText, interfaces.PatternList, interfaces.PatternAccordion,
		interfaces.PatternTextOnly, interfaces.PatternSingleImage, interfaces.PatternUnknown,
		interfaces.PatternTabs, interfaces.PatternCards, interfaces.PatternCarousel,
	} {
		name := layout.GenerateBlockName(p, structure)
		assert.Regexp(t, kebab, name, string(p))
	}
}

// TestKebab tests the normalizer directly
func TestKebab(t *testing.T) {
	cases := map[string]string{
		"CardGrid":       "card-grid",
		"hero__banner":   "hero-banner",
		"  My  Block  ":  "my-block",
		"already-kebab":  "already-kebab",
		"media-text":     "media-text",
		"HTMLBlock":      "htmlblock",
		"text_block_two": "text-block-two",
	}
	for in, want := range cases {
		assert.Equal(t, want, layout.Kebab(in), in)
	}
}

// TestAnalyzeInvalidNode tests error wrapping for a zero node handle
func TestAnalyzeInvalidNode(t *testing.T) {
	_, err := layout.Analyze(dom.Node{})
	require.Error(t, err)

	var afe *interfaces.AnalysisFailedError
	assert.ErrorAs(t, err, &afe)
}
