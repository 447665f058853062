/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parse.go
Description: Markup parsing for the BlockLens tree model. Builds the immutable
element arena from a goquery document and exposes the tree-producing collaborator
contract (ErrParse on malformed input).
*/

package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// ErrParse indicates the input could not be parsed into a markup tree.
	ErrParse = errors.New("markup parse failed")

	// ErrSelectorNotFound indicates a selector resolution request that
	// matched no node in the snapshot.
	ErrSelectorNotFound = errors.New("selector not found")
)

// Parse reads markup from r and builds an immutable tree snapshot.
func Parse(r io.Reader) (*Tree, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromDocument(doc)
}

// ParseString builds a tree snapshot from a markup string.
func ParseString(markup string) (*Tree, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	return Parse(strings.NewReader(markup))
}

// fromDocument walks the parsed document and lays element nodes out in a
// pre-order arena.
func fromDocument(doc *goquery.Document) (*Tree, error) {
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no document node", ErrParse)
	}

	root := firstElement(doc.Nodes[0])
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}

	t := &Tree{
		doc:    doc,
		root:   root,
		byNode: make(map[*html.Node]int),
	}
	build(t, root, -1)
	return t, nil
}

// firstElement returns the first element node under n, or n itself if it is
// one.
func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := firstElement(c); el != nil {
			return el
		}
	}
	return nil
}

// build appends the element and its descendants to the arena, recording the
// subtree end index for contiguous-range descendant scans.
func build(t *Tree, n *html.Node, parent int) int {
	id := len(t.entries)
	t.entries = append(t.entries, entry{node: n, parent: parent})
	t.byNode[n] = id

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		child := build(t, c, id)
		t.entries[id].children = append(t.entries[id].children, child)
	}
	t.entries[id].end = len(t.entries)
	return id
}
