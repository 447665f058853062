/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: siblings.go
Description: Sibling merger for BlockLens. When a matched card group holds fewer
card-like items than the hints promised, adjacent containers sharing tag and
class are picked up as a continuation of the same repeating group.
*/

package match

import (
	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// mergeSiblings returns selectors for siblings that continue an
// under-populated card group. Applies only to the cards type with a declared
// card count; every returned selector went through the synthesizer and is
// verified unique.
func mergeSiblings(matched dom.Node, hints interfaces.ContentHints, blockType interfaces.BlockType) []string {
	if blockType != interfaces.BlockCards || hints.CardCount <= 0 {
		return nil
	}

	if countCardItems(matched) >= hints.CardCount {
		return nil
	}

	shared := meaningfulClasses(matched)
	var selectors []string
	for _, sib := range matched.Siblings() {
		if sib.Tag() != matched.Tag() {
			continue
		}
		if !sharesClass(shared, meaningfulClasses(sib)) {
			continue
		}
		if sel, ok := Synthesize(sib); ok {
			selectors = append(selectors, sel)
		}
	}
	return selectors
}

// countCardItems counts card-like items inside the node: descendants whose
// classes look like cards, or failing that, direct children big enough to be
// cards.
func countCardItems(n dom.Node) int {
	if byClass := countDescendantsByClass(n, "card", "item", "tile"); byClass > 0 {
		return byClass
	}
	return countLargeChildren(n)
}

// sharesClass reports whether the two class lists have at least one name in
// common.
func sharesClass(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
