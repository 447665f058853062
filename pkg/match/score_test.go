/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: score_test.go
Description: Tests for the candidate scoring heuristics. Covers geometry
disqualification, position bonuses, heading and image signals, and the
wrapper penalty.
*/

package match

import (
	"testing"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withGeometry parses markup and attaches boxes keyed by selector. Nodes not
// named get a zero box, which the scorer treats as disqualified.
func withGeometry(t *testing.T, markup string, pageHeight float64, boxes map[string]interfaces.Rect) *dom.Tree {
	t.Helper()
	tree, err := dom.ParseString(markup)
	require.NoError(t, err)

	all := make([]interfaces.Rect, tree.Len())
	for sel, box := range boxes {
		n, err := tree.QueryOne(sel)
		require.NoError(t, err)
		all[n.Key()] = box
	}
	tree.AttachGeometry(all, pageHeight)
	return tree
}

// TestScoreDisqualification tests the hard geometry gates
func TestScoreDisqualification(t *testing.T) {
	markup := `<html><body><section class="hero-banner"><h1>Hello</h1></section></body></html>`

	// Without geometry nothing scores.
	tree, err := dom.ParseString(markup)
	require.NoError(t, err)
	n := target(t, tree, "section")
	assert.Equal(t, 0, Score(n, interfaces.ContentHints{}, interfaces.BlockHero))

	// Too narrow.
	tree = withGeometry(t, markup, 2000, map[string]interfaces.Rect{
		"section": {X: 0, Y: 0, Width: 200, Height: 400},
	})
	assert.Equal(t, 0, Score(target(t, tree, "section"), interfaces.ContentHints{}, interfaces.BlockHero))

	// Too short.
	tree = withGeometry(t, markup, 2000, map[string]interfaces.Rect{
		"section": {X: 0, Y: 0, Width: 1024, Height: 40},
	})
	assert.Equal(t, 0, Score(target(t, tree, "section"), interfaces.ContentHints{}, interfaces.BlockHero))

	// Practically the whole page.
	tree = withGeometry(t, markup, 2000, map[string]interfaces.Rect{
		"section": {X: 0, Y: 0, Width: 1024, Height: 1900},
	})
	assert.Equal(t, 0, Score(target(t, tree, "section"), interfaces.ContentHints{}, interfaces.BlockHero))
}

// TestScorePositionBonus tests the three position bands
func TestScorePositionBonus(t *testing.T) {
	top := interfaces.Rect{Y: 100}
	middle := interfaces.Rect{Y: 900}
	bottom := interfaces.Rect{Y: 1500}

	assert.Equal(t, 30, positionBonus(top, 2000, interfaces.PositionTop))
	assert.Equal(t, 0, positionBonus(bottom, 2000, interfaces.PositionTop))
	assert.Equal(t, 20, positionBonus(middle, 2000, interfaces.PositionMiddle))
	assert.Equal(t, 20, positionBonus(bottom, 2000, interfaces.PositionBottom))
	assert.Equal(t, 0, positionBonus(top, 2000, interfaces.PositionBottom))
	// Unspecified position never scores, nor does missing page height.
	assert.Equal(t, 0, positionBonus(top, 2000, ""))
	assert.Equal(t, 0, positionBonus(top, 0, interfaces.PositionTop))
}

// TestScoreHeadingSignal tests prefix matching with long headings
func TestScoreHeadingSignal(t *testing.T) {
	tree := withGeometry(t, `<html><body>
		<section class="intro"><h2>This Heading Is Well Over Twenty Characters Long</h2></section>
	</body></html>`, 2000, map[string]interfaces.Rect{
		"section": {X: 0, Y: 0, Width: 800, Height: 400},
	})
	n := target(t, tree, "section")

	with := Score(n, interfaces.ContentHints{
		Headings: []string{"This Heading Is Well Over Twenty Characters Long And Then Some"},
	}, interfaces.BlockOther)
	without := Score(n, interfaces.ContentHints{
		Headings: []string{"Completely Different"},
	}, interfaces.BlockOther)
	assert.Equal(t, 25, with-without)
}

// TestScoreImageSignals tests presence, closeness, and the excess penalty
func TestScoreImageSignals(t *testing.T) {
	markup := `<html><body><div class="gallery">
		<img src="1"><img src="2"><img src="3"><img src="4"><img src="5"><img src="6"><img src="7">
	</div></body></html>`
	tree := withGeometry(t, markup, 2000, map[string]interfaces.Rect{
		".gallery": {X: 0, Y: 0, Width: 800, Height: 400},
	})
	n := target(t, tree, ".gallery")

	// 7 actual vs 6 hinted: presence +15, closeness +10.
	near := Score(n, interfaces.ContentHints{HasImages: true, ImageCount: 6}, interfaces.BlockOther)
	assert.Equal(t, 25, near)

	// 7 actual vs 2 hinted: presence +15, excess -20.
	excess := Score(n, interfaces.ContentHints{HasImages: true, ImageCount: 2}, interfaces.BlockOther)
	assert.Equal(t, -5, excess)
}

// TestScoreWrapperPenalty tests that multi-block wrappers are pushed down
func TestScoreWrapperPenalty(t *testing.T) {
	tree := withGeometry(t, `<html><body>
		<div class="page-wrapper">
			<section class="hero-banner"></section>
			<div class="card-grid"></div>
		</div>
	</body></html>`, 4000, map[string]interfaces.Rect{
		".page-wrapper": {X: 0, Y: 0, Width: 1024, Height: 1200},
	})
	n := target(t, tree, ".page-wrapper")
	assert.Equal(t, -50, Score(n, interfaces.ContentHints{}, interfaces.BlockOther))
}

// TestScoreCardStructure tests the card population bonuses
func TestScoreCardStructure(t *testing.T) {
	tree := withGeometry(t, `<html><body>
		<div class="card-deck">
			<div class="card"></div>
			<div class="card"></div>
			<div class="card"></div>
		</div>
	</body></html>`, 2000, map[string]interfaces.Rect{
		".card-deck":           {X: 0, Y: 0, Width: 1000, Height: 500},
		".card:nth-of-type(1)": {X: 0, Y: 10, Width: 320, Height: 220},
		".card:nth-of-type(2)": {X: 340, Y: 10, Width: 320, Height: 220},
		".card:nth-of-type(3)": {X: 680, Y: 10, Width: 320, Height: 220},
	})
	n := target(t, tree, ".card-deck")

	// Large children +20, card-classed descendants +15, "card" keyword +20.
	score := Score(n, interfaces.ContentHints{HasCards: true, CardCount: 4}, interfaces.BlockCards)
	assert.Equal(t, 55, score)
}
