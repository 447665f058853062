/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: namer.go
Description: Block namer for BlockLens. Maps a detected layout pattern through a
fixed prefix table, appends a per-pattern detail suffix, and normalizes the
result to kebab-case.
*/

package layout

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kleascm/blocklens/pkg/interfaces"
)

// blockPrefixes maps every pattern, including the reserved ones the detector
// never produces, to its base block name.
var blockPrefixes = map[interfaces.LayoutPattern]string{
	interfaces.PatternGrid:        "card-grid",
	interfaces.PatternColumns:     "columns",
	interfaces.PatternHero:        "hero-banner",
	interfaces.PatternMediaText:   "media-text",
	interfaces.PatternList:        "content-list",
	interfaces.PatternAccordion:   "accordion",
	interfaces.PatternTextOnly:    "text-block",
	interfaces.PatternSingleImage: "featured-image",
	interfaces.PatternUnknown:     "custom-block",
	interfaces.PatternTabs:        "tabs",
	interfaces.PatternCards:       "cards",
	interfaces.PatternCarousel:    "carousel",
	interfaces.PatternText:        "text-block",
}

// GenerateBlockName derives the stable block identifier for a pattern and its
// structure summary. Output is always kebab-case.
func GenerateBlockName(pattern interfaces.LayoutPattern, s interfaces.LayoutStructure) string {
	base, ok := blockPrefixes[pattern]
	if !ok {
		base = blockPrefixes[interfaces.PatternUnknown]
	}

	switch pattern {
	case interfaces.PatternGrid:
		base += fmt.Sprintf("-%d", s.RowCount)
		if s.HasImages {
			base += "-media"
		}
	case interfaces.PatternColumns:
		base += fmt.Sprintf("-%d", s.ColumnCount)
	case interfaces.PatternMediaText:
		if len(s.ChildSignatures) > 0 && s.ChildSignatures[0] == interfaces.SignatureImage {
			base += "-left"
		} else {
			base += "-right"
		}
	case interfaces.PatternHero:
		if s.HasLinks {
			base += "-cta"
		}
	case interfaces.PatternList:
		if s.HasImages {
			base += "-illustrated"
		}
	case interfaces.PatternAccordion:
		base += fmt.Sprintf("-%d-items", s.RowCount/2)
	}

	return Kebab(base)
}

// Kebab normalizes a name to kebab-case: lower-case, whitespace and underscore
// runs become single hyphens, camel-case boundaries split, repeated hyphens
// collapse.
func Kebab(name string) string {
	var b strings.Builder
	var prev rune
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			if prev != 0 && prev != '-' && !unicode.IsUpper(prev) {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '_' || r == '-':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
