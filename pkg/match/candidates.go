/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: candidates.go
Description: Candidate generation for the BlockLens element matcher. Evaluates a
type-keyed list of coarse search expressions plus an unconditional fallback scan,
suppressing duplicate nodes while preserving discovery order.
*/

package match

import (
	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// typeSelectors are the coarse, per-type search expressions. Order matters:
// ties between equally scored candidates resolve to the first one discovered.
var typeSelectors = map[interfaces.BlockType][]string{
	interfaces.BlockHero: {
		`[class*="hero"]`,
		`[class*="banner"]`,
		`[class*="jumbotron"]`,
		`main > section:first-of-type`,
		`main > div:first-of-type`,
		`body > section:first-of-type`,
		`body > div:first-of-type`,
	},
	interfaces.BlockCards: {
		`[class*="card"]`,
		`[class*="grid"]`,
		`[class*="column"]`,
		`[class*="tile"]`,
		`section`,
		`main > div`,
	},
	interfaces.BlockCarousel: {
		`[class*="carousel"]`,
		`[class*="slider"]`,
		`[class*="swiper"]`,
	},
}

// fallbackSelectors always run, whatever the declared type.
var fallbackSelectors = []string{
	`section`,
	`article`,
	`main > div`,
	`body > div`,
}

// collectCandidates enumerates candidate nodes for a declared block type in
// discovery order with duplicates suppressed. Selectors that fail to compile
// or match nothing are simply skipped; candidate generation never errors.
func collectCandidates(t *dom.Tree, blockType interfaces.BlockType) []dom.Node {
	seen := make(map[int]bool)
	var out []dom.Node

	add := func(nodes []dom.Node) {
		for _, n := range nodes {
			if seen[n.Key()] {
				continue
			}
			seen[n.Key()] = true
			out = append(out, n)
		}
	}

	for _, sel := range typeSelectors[blockType] {
		if nodes, err := t.Query(sel); err == nil {
			add(nodes)
		}
	}
	for _, sel := range fallbackSelectors {
		if nodes, err := t.Query(sel); err == nil {
			add(nodes)
		}
	}
	return out
}
