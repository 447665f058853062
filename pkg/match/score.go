/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: score.go
Description: Scoring function for the BlockLens element matcher. Strictly
additive/subtractive heuristics over a candidate's geometry, classes, text, and
descendants; the only early exits are the disqualification checks.
*/

package match

import (
	"strings"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// Geometry disqualification bounds. Anything smaller than a real block, or
// tall enough to be the whole page, never competes.
const (
	minCandidateWidth  = 300.0
	minCandidateHeight = 80.0
	wholePageFraction  = 0.9
)

// acceptThreshold is the minimum score a candidate must exceed to survive.
const acceptThreshold = 30

var wrapperFragments = []string{"wrapper", "container", "layout", "page", "row", "inner", "outer"}

var typeKeywords = map[interfaces.BlockType][]string{
	interfaces.BlockHero:     {"hero", "banner", "jumbotron"},
	interfaces.BlockCards:    {"card", "grid", "list", "columns"},
	interfaces.BlockCarousel: {"carousel", "slider", "swiper"},
}

// Score rates a candidate node against the content hints for a declared block
// type. Zero means disqualified; candidates must exceed acceptThreshold to be
// considered at all.
func Score(n dom.Node, hints interfaces.ContentHints, blockType interfaces.BlockType) int {
	box, ok := n.Box()
	if !ok {
		return 0
	}
	pageHeight := n.Tree().PageHeight()

	// Disqualification: too small to be a block, or the whole page.
	if box.Width < minCandidateWidth || box.Height < minCandidateHeight {
		return 0
	}
	if pageHeight > 0 && box.Height > wholePageFraction*pageHeight {
		return 0
	}

	score := 0

	// A generic wrapper holding several block-like regions is a parent, not
	// the target.
	if classContainsAny(n, wrapperFragments...) && countBlockLike(n) > 1 {
		score -= 50
	}

	if blockType == interfaces.BlockCards {
		if countDescendantsByClass(n, "hero", "banner") > 0 {
			score -= 40
		}
		if firstChildDominates(n, box) {
			score -= 30
		}
	}
	if blockType == interfaces.BlockHero {
		if countDescendantsByClass(n, "card", "grid", "tile") > 3 {
			score -= 40
		}
	}

	score += positionBonus(box, pageHeight, hints.Position)

	// Heading text: first hinted heading whose leading characters appear in
	// the node's text wins the bonus, once.
	if len(hints.Headings) > 0 {
		text := strings.ToLower(n.Text())
		for _, heading := range hints.Headings {
			prefix := strings.ToLower(headingPrefix(heading))
			if prefix != "" && strings.Contains(text, prefix) {
				score += 25
				break
			}
		}
	}

	if hints.HasImages {
		actual := n.CountDescendants("img", "picture", "video")
		if actual >= 1 {
			score += 15
		}
		if hints.ImageCount > 0 {
			diff := actual - hints.ImageCount
			if diff < 0 {
				diff = -diff
			}
			if diff <= 2 {
				score += 10
			}
			if actual > 2*hints.ImageCount {
				score -= 20
			}
		}
	}

	if hints.HasCards && hints.CardCount > 0 {
		if 2*countLargeChildren(n) >= hints.CardCount {
			score += 20
		}
		if 2*countDescendantsByClass(n, "card", "item", "tile") >= hints.CardCount {
			score += 15
		}
	}

	if classContainsAny(n, typeKeywords[blockType]...) {
		score += 20
	}

	return score
}

// positionBonus rewards candidates sitting where the hints expect the region.
func positionBonus(box interfaces.Rect, pageHeight float64, position interfaces.Position) int {
	if pageHeight <= 0 {
		return 0
	}
	fraction := box.Y / pageHeight
	switch position {
	case interfaces.PositionTop:
		if fraction < 0.3 {
			return 30
		}
	case interfaces.PositionMiddle:
		if fraction >= 0.2 && fraction <= 0.7 {
			return 20
		}
	case interfaces.PositionBottom:
		if fraction > 0.6 {
			return 20
		}
	}
	return 0
}

// headingPrefix takes the leading ~20 characters of a hinted heading.
func headingPrefix(heading string) string {
	runes := []rune(strings.TrimSpace(heading))
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return strings.TrimSpace(string(runes))
}

// firstChildDominates reports a first child tall enough and wide enough to be
// a hero mis-scoped as a card group.
func firstChildDominates(n dom.Node, box interfaces.Rect) bool {
	children := n.Children()
	if len(children) == 0 {
		return false
	}
	first, ok := children[0].Box()
	if !ok {
		return false
	}
	return first.Height > 300 && first.Width > 0.8*box.Width
}

// countLargeChildren counts direct children with both dimensions above 100px.
func countLargeChildren(n dom.Node) int {
	count := 0
	for _, c := range n.Children() {
		if box, ok := c.Box(); ok && box.Width > 100 && box.Height > 100 {
			count++
		}
	}
	return count
}

// countBlockLike counts nested hero/card/grid/section-like descendants.
func countBlockLike(n dom.Node) int {
	count := 0
	for _, d := range n.Descendants() {
		if d.Tag() == "section" || classContainsAny(d, "hero", "card", "grid") {
			count++
		}
	}
	return count
}

// countDescendantsByClass counts descendants whose class attribute contains
// any of the fragments.
func countDescendantsByClass(n dom.Node, fragments ...string) int {
	count := 0
	for _, d := range n.Descendants() {
		if classContainsAny(d, fragments...) {
			count++
		}
	}
	return count
}

// classContainsAny tests the node's own class attribute for any fragment.
func classContainsAny(n dom.Node, fragments ...string) bool {
	classes := n.ClassAttr()
	if classes == "" {
		return false
	}
	for _, fragment := range fragments {
		if strings.Contains(classes, fragment) {
			return true
		}
	}
	return false
}
