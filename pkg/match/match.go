/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: match.go
Description: Smart matching entry point for BlockLens. Enumerates candidates,
scores them against the content hints, picks the best survivor, and synthesizes a
verified-unique selector plus sibling selectors for split repeating groups.
*/

package match

import (
	"sort"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// scoredCandidate pairs a candidate with its score; order within the slice is
// discovery order, which breaks ties.
type scoredCandidate struct {
	node  dom.Node
	score int
}

// Match locates the tree node best matching the content hints for a declared
// block type. "No confident match" is an expected outcome signaled by an
// empty selector, never an error. The result is deterministic for identical
// (tree, hints, type) inputs.
func Match(t *dom.Tree, hints interfaces.ContentHints, blockType interfaces.BlockType) interfaces.MatchResult {
	var survivors []scoredCandidate
	for _, candidate := range collectCandidates(t, blockType) {
		if score := Score(candidate, hints, blockType); score > acceptThreshold {
			survivors = append(survivors, scoredCandidate{node: candidate, score: score})
		}
	}
	if len(survivors) == 0 {
		return interfaces.MatchResult{}
	}

	// Stable sort keeps discovery order between equal scores.
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score > survivors[j].score
	})

	best := survivors[0].node
	selector, ok := Synthesize(best)
	if !ok {
		// A match we cannot address uniquely is no match at all.
		return interfaces.MatchResult{}
	}

	return interfaces.MatchResult{
		Selector:         selector,
		SiblingSelectors: mergeSiblings(best, hints, blockType),
	}
}
