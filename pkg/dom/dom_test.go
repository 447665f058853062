/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dom_test.go
Description: Comprehensive tests for the tree model. Tests parsing, traversal,
text extraction, selector queries, and geometry attachment ordering.
*/

package dom_test

import (
	"errors"
	"testing"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head><title>Sample</title></head><body>
<main id="main">
  <section class="hero-banner" id="hero">
    <img src="a.png" width="600">
    <h1>Welcome   Home</h1>
    <a href="/go">Go</a>
  </section>
  <div class="card-grid featured">
    <div class="card">One</div>
    <div class="card">Two</div>
    <div class="card">Three</div>
  </div>
</main>
</body></html>`

// TestParseAndTraverse tests arena construction and traversal
func TestParseAndTraverse(t *testing.T) {
	tree, err := dom.ParseString(samplePage)
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, "html", root.Tag())

	main, err := tree.QueryOne("#main")
	require.NoError(t, err)
	assert.Equal(t, "main", main.Tag())
	assert.Equal(t, "main", main.ID())

	children := main.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "section", children[0].Tag())
	assert.Equal(t, "div", children[1].Tag())
	assert.Equal(t, []string{"card-grid", "featured"}, children[1].Classes())

	parent, ok := children[0].Parent()
	require.True(t, ok)
	assert.Equal(t, main.Key(), parent.Key())

	// Element children only; text nodes never appear in the arena
	hero := children[0]
	assert.Equal(t, 3, hero.ChildCount())

	width, ok := hero.Children()[0].Attr("width")
	require.True(t, ok)
	assert.Equal(t, "600", width)
}

// TestParseErrors tests malformed input handling
func TestParseErrors(t *testing.T) {
	_, err := dom.ParseString("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrParse))

	_, err = dom.ParseString("   \n\t ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrParse))
}

// TestTextContent tests derived text extraction with whitespace collapsing
func TestTextContent(t *testing.T) {
	tree, err := dom.ParseString(samplePage)
	require.NoError(t, err)

	hero, err := tree.QueryOne("#hero")
	require.NoError(t, err)
	assert.Equal(t, "Welcome Home Go", hero.Text())

	h1, err := tree.QueryOne("h1")
	require.NoError(t, err)
	assert.Equal(t, "Welcome Home", h1.Text())
}

// TestQueries tests selector matching against the snapshot
func TestQueries(t *testing.T) {
	tree, err := dom.ParseString(samplePage)
	require.NoError(t, err)

	cards, err := tree.Query(".card")
	require.NoError(t, err)
	assert.Len(t, cards, 3)

	// Document order
	assert.Equal(t, "One", cards[0].Text())
	assert.Equal(t, "Three", cards[2].Text())

	// No match is not an error for Query
	none, err := tree.Query(".missing")
	require.NoError(t, err)
	assert.Empty(t, none)

	// ...but is for QueryOne
	_, err = tree.QueryOne(".missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrSelectorNotFound))

	// Invalid selectors are errors
	_, err = tree.Query("][")
	assert.Error(t, err)
}

// TestScopedQuery tests subtree-scoped matching excluding the scope node
func TestScopedQuery(t *testing.T) {
	tree, err := dom.ParseString(samplePage)
	require.NoError(t, err)

	grid, err := tree.QueryOne(".card-grid")
	require.NoError(t, err)

	inner, err := grid.QueryAll("div")
	require.NoError(t, err)
	assert.Len(t, inner, 3) // the three cards, not the grid itself
}

// TestDescendantHelpers tests presence and counting scans
func TestDescendantHelpers(t *testing.T) {
	tree, err := dom.ParseString(samplePage)
	require.NoError(t, err)

	hero, err := tree.QueryOne("#hero")
	require.NoError(t, err)
	assert.True(t, hero.HasDescendant("img", "picture"))
	assert.False(t, hero.HasDescendant("ul", "ol"))
	assert.Equal(t, 1, hero.CountDescendants("img"))

	main, err := tree.QueryOne("main")
	require.NoError(t, err)
	assert.Len(t, main.Descendants(), 8)
}

// TestGeometryAttachment tests pre-order box assignment
func TestGeometryAttachment(t *testing.T) {
	tree, err := dom.ParseString(samplePage)
	require.NoError(t, err)

	boxes := make([]interfaces.Rect, tree.Len())
	hero, err := tree.QueryOne("#hero")
	require.NoError(t, err)
	boxes[hero.Key()] = interfaces.Rect{X: 0, Y: 50, Width: 1024, Height: 480}

	tree.AttachGeometry(boxes, 3000)
	assert.Equal(t, 3000.0, tree.PageHeight())

	box, ok := hero.Box()
	require.True(t, ok)
	assert.Equal(t, 480.0, box.Height)

	// Without attachment there is no box
	fresh, err := dom.ParseString(samplePage)
	require.NoError(t, err)
	_, ok = fresh.Root().Box()
	assert.False(t, ok)
}

// TestSiblingIndexes tests nth-of-type and nth-child style positions
func TestSiblingIndexes(t *testing.T) {
	tree, err := dom.ParseString(`<html><body>
		<section></section>
		<div class="a"></div>
		<section class="b"></section>
	</body></html>`)
	require.NoError(t, err)

	second, err := tree.QueryOne(".b")
	require.NoError(t, err)
	assert.Equal(t, 2, second.SiblingIndexSameTag())
	assert.Equal(t, 3, second.SiblingIndex())
	assert.Len(t, second.Siblings(), 2)
}
