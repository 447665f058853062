/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structure.go
Description: Structural analyzer for BlockLens. Classifies each direct child of a
node into a content signature and aggregates the signatures into a layout
structure summary used by the pattern detector.
*/

package layout

import (
	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// Tag families used by both direct classification and descendant presence
// tests. Text presence inside generic containers tests <p> only.
var (
	imageTags     = []string{"img", "picture", "svg"}
	headingTags   = []string{"h1", "h2", "h3", "h4", "h5", "h6"}
	linkTags      = []string{"a", "button"}
	listTags      = []string{"ul", "ol", "dl"}
	mediaTags     = []string{"video", "iframe", "audio"}
	containerTags = map[string]bool{
		"div": true, "section": true, "article": true, "figure": true,
		"aside": true, "main": true, "header": true, "footer": true,
	}
)

var directSignatures = map[string]interfaces.ChildSignature{
	"img": interfaces.SignatureImage, "picture": interfaces.SignatureImage, "svg": interfaces.SignatureImage,
	"h1": interfaces.SignatureHeading, "h2": interfaces.SignatureHeading, "h3": interfaces.SignatureHeading,
	"h4": interfaces.SignatureHeading, "h5": interfaces.SignatureHeading, "h6": interfaces.SignatureHeading,
	"p": interfaces.SignatureText, "span": interfaces.SignatureText, "blockquote": interfaces.SignatureText,
	"a": interfaces.SignatureLink, "button": interfaces.SignatureLink,
	"ul": interfaces.SignatureList, "ol": interfaces.SignatureList, "dl": interfaces.SignatureList,
	"video": interfaces.SignatureMedia, "iframe": interfaces.SignatureMedia, "audio": interfaces.SignatureMedia,
}

// ClassifyChild derives the content signature of one direct child. Generic
// containers are classified by what they contain anywhere inside, not by
// their own tag; anything unrecognized degrades to mixed rather than failing.
func ClassifyChild(n dom.Node) interfaces.ChildSignature {
	tag := n.Tag()
	if sig, ok := directSignatures[tag]; ok {
		return sig
	}
	if containerTags[tag] {
		return classifyContainer(n)
	}
	return interfaces.SignatureMixed
}

// classifyContainer runs independent descendant-presence tests and keeps the
// single category that holds, if exactly one does.
func classifyContainer(n dom.Node) interfaces.ChildSignature {
	present := []struct {
		sig interfaces.ChildSignature
		has bool
	}{
		{interfaces.SignatureImage, n.HasDescendant(imageTags...)},
		{interfaces.SignatureHeading, n.HasDescendant(headingTags...)},
		{interfaces.SignatureText, n.HasDescendant("p")},
		{interfaces.SignatureLink, n.HasDescendant(linkTags...)},
		{interfaces.SignatureList, n.HasDescendant(listTags...)},
	}

	matched := interfaces.SignatureContainer
	count := 0
	for _, p := range present {
		if p.has {
			matched = p.sig
			count++
		}
	}
	switch count {
	case 0:
		return interfaces.SignatureContainer
	case 1:
		return matched
	default:
		return interfaces.SignatureMixed
	}
}

// AnalyzeStructure builds the structure summary of a node. RowCount always
// equals the number of direct element children, and ChildSignatures keeps
// document order.
func AnalyzeStructure(n dom.Node) interfaces.LayoutStructure {
	children := n.Children()
	signatures := make([]interfaces.ChildSignature, len(children))
	for i, child := range children {
		signatures[i] = ClassifyChild(child)
	}

	return interfaces.LayoutStructure{
		RowCount:        len(children),
		ColumnCount:     detectColumnCount(n, signatures),
		HasImages:       n.HasDescendant(imageTags...),
		HasHeadings:     n.HasDescendant(headingTags...),
		HasLinks:        n.HasDescendant(linkTags...),
		HasList:         n.HasDescendant(listTags...),
		ChildSignatures: signatures,
		IsRepeating:     detectRepeatingPattern(signatures),
	}
}

// detectColumnCount estimates how many columns the node lays out. Small child
// sets with at most two distinct signatures count as one column each;
// otherwise the first child's own child count decides, defaulting to 1.
func detectColumnCount(n dom.Node, signatures []interfaces.ChildSignature) int {
	children := n.Children()
	if len(children) == 0 {
		return 0
	}

	if len(children) <= 4 {
		distinct := make(map[interfaces.ChildSignature]bool, len(signatures))
		for _, sig := range signatures {
			distinct[sig] = true
		}
		if len(distinct) <= 2 || len(children) == 1 {
			return len(children)
		}
	}

	if first := children[0]; first.ChildCount() > 0 {
		return first.ChildCount()
	}
	return 1
}

// detectRepeatingPattern reports whether the signature sequence repeats:
// either every signature is identical, or an even-length sequence of at least
// 4 is periodic with period 2 (image,text,image,text and the like).
func detectRepeatingPattern(signatures []interfaces.ChildSignature) bool {
	if len(signatures) < 2 {
		return false
	}

	allSame := true
	for _, sig := range signatures[1:] {
		if sig != signatures[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return true
	}

	if len(signatures) >= 4 && len(signatures)%2 == 0 {
		periodic := true
		for i := 2; i < len(signatures); i += 2 {
			if signatures[i] != signatures[0] || signatures[i+1] != signatures[1] {
				periodic = false
				break
			}
		}
		return periodic
	}
	return false
}
