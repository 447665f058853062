/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: node.go
Description: Immutable tree model for BlockLens. Stores a parsed markup tree as an
arena of element nodes with parent/child index references so concurrent analyses
over independent snapshots never share mutable state.
*/

package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"golang.org/x/net/html"
)

// entry is one arena slot. end is the index just past the last descendant in
// the pre-order arena, so a subtree is always the contiguous range (id, end).
type entry struct {
	node     *html.Node
	parent   int
	children []int
	end      int
	box      *interfaces.Rect
}

// Tree is a read-only snapshot of a parsed markup tree. Element nodes are laid
// out in a pre-order arena; geometry is attached once after construction and
// never mutated afterwards.
type Tree struct {
	doc        *goquery.Document
	root       *html.Node
	entries    []entry
	byNode     map[*html.Node]int
	pageHeight float64
}

// Node is an opaque handle into a Tree. The zero value is invalid; use
// Node.Valid to test handles returned from lookups.
type Node struct {
	t  *Tree
	id int
}

// Root returns the document's root element node.
func (t *Tree) Root() Node {
	return Node{t: t, id: 0}
}

// Len returns the number of element nodes in the snapshot.
func (t *Tree) Len() int {
	return len(t.entries)
}

// PageHeight returns the total scrollable page height attached with the
// geometry snapshot, or 0 if no geometry is present.
func (t *Tree) PageHeight() float64 {
	return t.pageHeight
}

// AttachGeometry assigns bounding boxes to element nodes in document
// (pre-order) traversal order, matching the order a renderer walks
// element.children from the root element. Call once, before analysis.
func (t *Tree) AttachGeometry(boxes []interfaces.Rect, pageHeight float64) {
	for i := 0; i < len(boxes) && i < len(t.entries); i++ {
		box := boxes[i]
		t.entries[i].box = &box
	}
	t.pageHeight = pageHeight
}

// Tree returns the snapshot the node belongs to.
func (n Node) Tree() *Tree {
	return n.t
}

// Valid reports whether the handle points at a node in a tree.
func (n Node) Valid() bool {
	return n.t != nil && n.id >= 0 && n.id < len(n.t.entries)
}

// Key returns a stable identity for the node within its snapshot, usable for
// deduplication.
func (n Node) Key() int {
	return n.id
}

// Tag returns the lower-case tag name.
func (n Node) Tag() string {
	return n.t.entries[n.id].node.Data
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.t.entries[n.id].node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the element's id attribute, or "".
func (n Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

// Classes returns the class list in attribute order.
func (n Node) Classes() []string {
	v, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// ClassAttr returns the raw class attribute, lower-cased, for fragment tests.
func (n Node) ClassAttr() string {
	v, _ := n.Attr("class")
	return strings.ToLower(v)
}

// Parent returns the parent element, if any.
func (n Node) Parent() (Node, bool) {
	p := n.t.entries[n.id].parent
	if p < 0 {
		return Node{}, false
	}
	return Node{t: n.t, id: p}, true
}

// Children returns the direct element children in document order.
func (n Node) Children() []Node {
	ids := n.t.entries[n.id].children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{t: n.t, id: id}
	}
	return out
}

// ChildCount returns the number of direct element children.
func (n Node) ChildCount() int {
	return len(n.t.entries[n.id].children)
}

// Descendants returns every element under the node (excluding the node
// itself) in document order.
func (n Node) Descendants() []Node {
	e := n.t.entries[n.id]
	out := make([]Node, 0, e.end-n.id-1)
	for id := n.id + 1; id < e.end; id++ {
		out = append(out, Node{t: n.t, id: id})
	}
	return out
}

// HasDescendant reports whether any element with one of the given tag names
// appears anywhere under the node.
func (n Node) HasDescendant(tags ...string) bool {
	e := n.t.entries[n.id]
	for id := n.id + 1; id < e.end; id++ {
		name := n.t.entries[id].node.Data
		for _, tag := range tags {
			if name == tag {
				return true
			}
		}
	}
	return false
}

// CountDescendants counts elements with one of the given tag names anywhere
// under the node.
func (n Node) CountDescendants(tags ...string) int {
	e := n.t.entries[n.id]
	count := 0
	for id := n.id + 1; id < e.end; id++ {
		name := n.t.entries[id].node.Data
		for _, tag := range tags {
			if name == tag {
				count++
				break
			}
		}
	}
	return count
}

// Text returns the concatenated text content of the subtree with whitespace
// runs collapsed to single spaces. Derived per call, never stored.
func (n Node) Text() string {
	text := goquery.NewDocumentFromNode(n.t.entries[n.id].node).Text()
	return strings.Join(strings.Fields(text), " ")
}

// Box returns the node's bounding box if geometry was attached.
func (n Node) Box() (interfaces.Rect, bool) {
	b := n.t.entries[n.id].box
	if b == nil {
		return interfaces.Rect{}, false
	}
	return *b, true
}

// SiblingIndexSameTag returns the element's 1-based position among siblings
// sharing its tag, i.e. its :nth-of-type index.
func (n Node) SiblingIndexSameTag() int {
	parent, ok := n.Parent()
	if !ok {
		return 1
	}
	idx := 0
	for _, sib := range parent.Children() {
		if sib.Tag() == n.Tag() {
			idx++
		}
		if sib.id == n.id {
			return idx
		}
	}
	return idx
}

// SiblingIndex returns the element's 1-based position among all element
// siblings, i.e. its :nth-child index counted over elements.
func (n Node) SiblingIndex() int {
	parent, ok := n.Parent()
	if !ok {
		return 1
	}
	for i, sib := range parent.Children() {
		if sib.id == n.id {
			return i + 1
		}
	}
	return 1
}

// Siblings returns the node's element siblings (excluding itself) in document
// order.
func (n Node) Siblings() []Node {
	parent, ok := n.Parent()
	if !ok {
		return nil
	}
	var out []Node
	for _, sib := range parent.Children() {
		if sib.id != n.id {
			out = append(out, sib)
		}
	}
	return out
}
