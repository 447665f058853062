/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate_test.go
Description: Tests for output block generation. Verifies per-pattern dispatch,
structure-driven parameterization, and the generic fallback.
*/

package generate_test

import (
	"strings"
	"testing"

	"github.com/kleascm/blocklens/pkg/generate"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGridBlock tests per-row item rendering with media
func TestGridBlock(t *testing.T) {
	block, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternGrid,
		BlockName: "card-grid-3-media",
		Structure: interfaces.LayoutStructure{RowCount: 3, HasImages: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "card-grid-3-media", block.Name)
	assert.Contains(t, block.Markup, `<div class="card-grid-3-media">`)
	assert.Equal(t, 3, strings.Count(block.Markup, `class="card-grid-3-media-item"`))
	assert.Equal(t, 3, strings.Count(block.Markup, "<img"))
}

// TestColumnsBlock tests per-column rendering
func TestColumnsBlock(t *testing.T) {
	block, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternColumns,
		BlockName: "columns-2",
		Structure: interfaces.LayoutStructure{RowCount: 2, ColumnCount: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(block.Markup, `class="columns-2-col"`))
}

// TestHeroBlock tests the CTA conditional
func TestHeroBlock(t *testing.T) {
	with, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternHero,
		BlockName: "hero-banner-cta",
		Structure: interfaces.LayoutStructure{HasImages: true, HasLinks: true},
	})
	require.NoError(t, err)
	assert.Contains(t, with.Markup, `class="hero-banner-cta-cta"`)

	without, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternHero,
		BlockName: "hero-banner",
		Structure: interfaces.LayoutStructure{HasImages: true},
	})
	require.NoError(t, err)
	assert.NotContains(t, without.Markup, "<a ")
}

// TestMediaTextBlock tests image side ordering
func TestMediaTextBlock(t *testing.T) {
	left, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternMediaText,
		BlockName: "media-text-left",
		Structure: interfaces.LayoutStructure{
			ChildSignatures: []interfaces.ChildSignature{interfaces.SignatureImage, interfaces.SignatureText},
		},
	})
	require.NoError(t, err)
	assert.Less(t, strings.Index(left.Markup, "<img"), strings.Index(left.Markup, "media-text-left-copy"))

	right, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternMediaText,
		BlockName: "media-text-right",
		Structure: interfaces.LayoutStructure{
			ChildSignatures: []interfaces.ChildSignature{interfaces.SignatureText, interfaces.SignatureImage},
		},
	})
	require.NoError(t, err)
	assert.Greater(t, strings.Index(right.Markup, "<img"), strings.Index(right.Markup, "media-text-right-copy"))
}

// TestAccordionBlock tests label/panel pairs per item
func TestAccordionBlock(t *testing.T) {
	block, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternAccordion,
		BlockName: "accordion-2-items",
		Structure: interfaces.LayoutStructure{RowCount: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(block.Markup, "accordion-2-items-label"))
	assert.Equal(t, 2, strings.Count(block.Markup, "accordion-2-items-panel"))
}

// TestFallbackBlock tests that unmapped patterns use the generic template
func TestFallbackBlock(t *testing.T) {
	block, err := generate.ForPattern(interfaces.LayoutAnalysis{
		Pattern:   interfaces.PatternCarousel,
		BlockName: "carousel",
	})
	require.NoError(t, err)
	assert.Equal(t, `<div class="carousel"></div>`, block.Markup)
}
