/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types for the BlockLens engine. Defines the layout analysis and
smart matching value types used across all packages to break import cycles and
enable proper modular design.
*/

package interfaces

// ChildSignature is the inferred primary content category of one direct child
// element. Derived on demand, never stored on the tree.
type ChildSignature string

const (
	SignatureImage     ChildSignature = "image"
	SignatureHeading   ChildSignature = "heading"
	SignatureText      ChildSignature = "text"
	SignatureLink      ChildSignature = "link"
	SignatureList      ChildSignature = "list"
	SignatureMedia     ChildSignature = "media"
	SignatureContainer ChildSignature = "container"
	SignatureMixed     ChildSignature = "mixed"
)

// LayoutPattern is the closed classification assigned to a region's structure.
type LayoutPattern string

const (
	PatternSingleImage LayoutPattern = "single-image"
	PatternList        LayoutPattern = "list"
	PatternHero        LayoutPattern = "hero"
	PatternGrid        LayoutPattern = "grid"
	PatternMediaText   LayoutPattern = "media-text"
	PatternColumns     LayoutPattern = "columns"
	PatternAccordion   LayoutPattern = "accordion"
	PatternTextOnly    LayoutPattern = "text-only"
	PatternUnknown     LayoutPattern = "unknown"

	// Reserved for the block naming table; the detector never produces these.
	PatternTabs     LayoutPattern = "tabs"
	PatternCards    LayoutPattern = "cards"
	PatternCarousel LayoutPattern = "carousel"
	PatternText     LayoutPattern = "text"
)

// LayoutStructure is the aggregated structure summary of one analyzed node.
// RowCount always equals the number of direct element children, and
// ChildSignatures[i] corresponds to child i in document order.
type LayoutStructure struct {
	RowCount        int              `json:"row_count"`
	ColumnCount     int              `json:"column_count"`
	HasImages       bool             `json:"has_images"`
	HasHeadings     bool             `json:"has_headings"`
	HasLinks        bool             `json:"has_links"`
	HasList         bool             `json:"has_list"`
	ChildSignatures []ChildSignature `json:"child_signatures"`
	IsRepeating     bool             `json:"is_repeating"`
}

// LayoutAnalysis is the immutable result of one layout analysis call.
type LayoutAnalysis struct {
	Pattern   LayoutPattern   `json:"pattern"`
	BlockName string          `json:"block_name"`
	Structure LayoutStructure `json:"structure"`
}

// Position is the expected vertical location of a region on the page.
type Position string

const (
	PositionTop    Position = "top"
	PositionMiddle Position = "middle"
	PositionBottom Position = "bottom"
)

// ContentHints is the externally supplied (LLM-sourced) description of an
// expected region. Counts of zero mean the hint was not provided.
type ContentHints struct {
	Headings   []string `json:"headings,omitempty"`
	HasImages  bool     `json:"hasImages"`
	ImageCount int      `json:"imageCount,omitempty"`
	HasCards   bool     `json:"hasCards"`
	CardCount  int      `json:"cardCount,omitempty"`
	Position   Position `json:"position,omitempty"`
}

// BlockType is the declared kind of region supplied alongside ContentHints.
type BlockType string

const (
	BlockHero     BlockType = "hero"
	BlockCards    BlockType = "cards"
	BlockCarousel BlockType = "carousel"
	BlockOther    BlockType = "other"
)

// MatchResult is the outcome of one smart matching call. An empty Selector
// means no candidate cleared the acceptance threshold; that is an expected
// outcome, not an error.
type MatchResult struct {
	Selector         string   `json:"selector,omitempty"`
	SiblingSelectors []string `json:"sibling_selectors,omitempty"`
}

// Matched reports whether a confident match was found.
func (r MatchResult) Matched() bool {
	return r.Selector != ""
}

// Rect is an axis-aligned bounding box in page coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RegionDescription is one record returned by the vision describer
// collaborator for a rendered screenshot.
type RegionDescription struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        BlockType    `json:"type"`
	Hints       ContentHints `json:"contentHints"`
}
