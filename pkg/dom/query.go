/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: query.go
Description: Selector queries over the BlockLens tree model. Uses cascadia (the
same CSS engine goquery builds on) so synthesized selectors are verified against
exactly the semantics a downstream consumer will use.
*/

package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// Query returns every element in the snapshot matching the CSS selector, in
// document order. An invalid selector is an error; zero matches is not.
func (t *Tree) Query(selector string) ([]Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	scope := t.root
	if scope.Parent != nil {
		// Match from the document node so the root element itself is a
		// candidate.
		scope = scope.Parent
	}
	matches := sel.MatchAll(scope)
	out := make([]Node, 0, len(matches))
	for _, m := range matches {
		if id, ok := t.byNode[m]; ok {
			out = append(out, Node{t: t, id: id})
		}
	}
	return out, nil
}

// QueryOne resolves a selector that the caller requires to match. It returns
// the first match in document order, or ErrSelectorNotFound.
func (t *Tree) QueryOne(selector string) (Node, error) {
	matches, err := t.Query(selector)
	if err != nil {
		return Node{}, err
	}
	if len(matches) == 0 {
		return Node{}, fmt.Errorf("%w: %q", ErrSelectorNotFound, selector)
	}
	return matches[0], nil
}

// QueryAll returns the elements under n (excluding n itself) matching the
// selector, in document order.
func (n Node) QueryAll(selector string) ([]Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	self := n.t.entries[n.id].node
	var out []Node
	for _, m := range sel.MatchAll(self) {
		if m == self {
			continue
		}
		if id, ok := n.t.byNode[m]; ok {
			out = append(out, Node{t: n.t, id: id})
		}
	}
	return out, nil
}
