/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector.go
Description: Layout pattern detector for BlockLens. Evaluates an ordered chain of
(predicate, pattern) rules against a structure summary; the first matching rule
wins. Rule order is part of the contract - rules 4 and 7 overlap and the grid
rule must win over the columns rule.
*/

package layout

import (
	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// ruleInput carries everything a detection rule may inspect.
type ruleInput struct {
	node      dom.Node
	structure interfaces.LayoutStructure
}

// rule is one entry of the ordered detection chain.
type rule struct {
	name    string
	pattern interfaces.LayoutPattern
	match   func(in ruleInput) bool
}

// detectionRules is evaluated strictly in order; do not reorganize into a map.
var detectionRules = []rule{
	{
		name:    "single image child",
		pattern: interfaces.PatternSingleImage,
		match: func(in ruleInput) bool {
			s := in.structure
			return s.RowCount == 1 && s.ChildSignatures[0] == interfaces.SignatureImage
		},
	},
	{
		name:    "single list child",
		pattern: interfaces.PatternList,
		match: func(in ruleInput) bool {
			return in.structure.HasList && in.structure.RowCount == 1
		},
	},
	{
		name:    "prominent image with heading",
		pattern: interfaces.PatternHero,
		match: func(in ruleInput) bool {
			s := in.structure
			if s.RowCount > 3 || !s.HasImages || !s.HasHeadings {
				return false
			}
			if hasProminentImage(in.node) {
				return true
			}
			return len(s.ChildSignatures) > 0 && s.ChildSignatures[0] == interfaces.SignatureImage
		},
	},
	{
		name:    "uniform repeating rows",
		pattern: interfaces.PatternGrid,
		match: func(in ruleInput) bool {
			s := in.structure
			// Uniform repetition only; alternating pairs fall through to
			// the media grid and accordion rules below.
			return s.IsRepeating && s.RowCount >= 3 && uniformSignatures(s.ChildSignatures)
		},
	},
	{
		name:    "image beside text",
		pattern: interfaces.PatternMediaText,
		match: func(in ruleInput) bool {
			s := in.structure
			return s.RowCount == 1 && s.ColumnCount == 2 && s.HasImages
		},
	},
	{
		name:    "distinct columns",
		pattern: interfaces.PatternColumns,
		match: func(in ruleInput) bool {
			s := in.structure
			return s.ColumnCount >= 2 && s.ColumnCount <= 4 && !s.IsRepeating
		},
	},
	{
		name:    "repeating media rows",
		pattern: interfaces.PatternGrid,
		match: func(in ruleInput) bool {
			s := in.structure
			return s.RowCount >= 2 && s.HasImages && s.IsRepeating
		},
	},
	{
		name:    "alternating heading rows",
		pattern: interfaces.PatternAccordion,
		match: func(in ruleInput) bool {
			s := in.structure
			if !s.IsRepeating {
				return false
			}
			headings := 0
			for _, sig := range s.ChildSignatures {
				if sig == interfaces.SignatureHeading {
					headings++
				}
			}
			return headings >= 2 && headings == s.RowCount/2
		},
	},
	{
		name:    "prose only",
		pattern: interfaces.PatternTextOnly,
		match: func(in ruleInput) bool {
			s := in.structure
			if s.HasImages {
				return false
			}
			if s.HasHeadings {
				return true
			}
			// A lone prose child is not enough structure to call the
			// region a text block.
			if len(s.ChildSignatures) < 2 {
				return false
			}
			for _, sig := range s.ChildSignatures {
				if sig != interfaces.SignatureText && sig != interfaces.SignatureHeading {
					return false
				}
			}
			return true
		},
	},
}

// DetectPattern runs the ordered rule chain over a structure summary and
// returns the first matching pattern, or unknown when nothing matches.
func DetectPattern(n dom.Node, s interfaces.LayoutStructure) interfaces.LayoutPattern {
	in := ruleInput{node: n, structure: s}
	for _, r := range detectionRules {
		if r.match(in) {
			return r.pattern
		}
	}
	return interfaces.PatternUnknown
}

// uniformSignatures reports whether every signature in the sequence is equal.
func uniformSignatures(signatures []interfaces.ChildSignature) bool {
	for _, sig := range signatures[1:] {
		if sig != signatures[0] {
			return false
		}
	}
	return true
}

// hasProminentImage reports whether the node contains a picture element or an
// image with an explicit width attribute - the signal that an image is meant
// to dominate the region.
func hasProminentImage(n dom.Node) bool {
	if n.HasDescendant("picture") {
		return true
	}
	for _, d := range n.Descendants() {
		if d.Tag() != "img" {
			continue
		}
		if w, ok := d.Attr("width"); ok && w != "" {
			return true
		}
	}
	return false
}
