/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: selector.go
Description: Selector synthesizer for BlockLens. Tries an ordered chain of
strategies, re-querying the tree after each one; a selector is only accepted when
it resolves to exactly the target node. No unverified selector ever escapes.
*/

package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kleascm/blocklens/pkg/dom"
)

// outcome classifies one strategy attempt.
type outcome int

const (
	outcomeUnique outcome = iota
	outcomeAmbiguous
	outcomeInvalid
)

// attempt is the tagged result of verifying one candidate selector.
type attempt struct {
	selector string
	outcome  outcome
	matches  int
}

// utilityClass matches layout/spacing/flex/grid/color utility naming that
// carries no identity (col-6, mt-4, px-2, bg-dark, text-center...).
var utilityClass = regexp.MustCompile(`^(?:col|row|grid|flex|gap|order|justify|items|align|self|float|clear|d|w|h|m|p|[mp][tblrxy]|px|py|mx|my|bg|text|font|border|rounded|shadow|opacity|z|pos|top|left|right|bottom)(?:-|$)`)

// Synthesize produces the most specific-yet-minimal selector resolving to
// exactly the given node within its snapshot, or reports failure. Every
// strategy's output is verified by re-querying the tree before acceptance.
func Synthesize(n dom.Node) (string, bool) {
	t := n.Tree()

	// 1. A usable id wins outright.
	if id := n.ID(); id != "" && !startsWithDigit(id) {
		if a := verify(t, "#"+id, n); a.outcome == outcomeUnique {
			return a.selector, true
		}
	}

	meaningful := meaningfulClasses(n)

	// 2. Meaningful classes alone.
	if len(meaningful) > 0 {
		if a := verify(t, "."+strings.Join(meaningful, "."), n); a.outcome == outcomeUnique {
			return a.selector, true
		}
	}

	// 3. Tag plus the full class list.
	if all := n.Classes(); len(all) > 0 {
		if a := verify(t, n.Tag()+"."+strings.Join(all, "."), n); a.outcome == outcomeUnique {
			return a.selector, true
		}
	}

	// 4. Meaningful classes with positional disambiguation, when the class
	// list alone is close (2-10 matches).
	if len(meaningful) > 0 {
		classSel := "." + strings.Join(meaningful, ".")
		if a := verify(t, classSel, n); a.outcome == outcomeAmbiguous && a.matches >= 2 && a.matches <= 10 {
			positional := fmt.Sprintf("%s:nth-of-type(%d)", classSel, n.SiblingIndexSameTag())
			if a := verify(t, positional, n); a.outcome == outcomeUnique {
				return a.selector, true
			}
			positional = fmt.Sprintf("%s:nth-child(%d)", classSel, n.SiblingIndex())
			if a := verify(t, positional, n); a.outcome == outcomeUnique {
				return a.selector, true
			}
		}
	}

	// 5. Parent-scoped position.
	if parentSel, ok := parentSelector(n); ok {
		scoped := fmt.Sprintf("%s > %s:nth-of-type(%d)", parentSel, n.Tag(), n.SiblingIndexSameTag())
		if a := verify(t, scoped, n); a.outcome == outcomeUnique {
			return a.selector, true
		}
	}

	// 6. Last resort: bare tag position, only worth trying when the tag is
	// rare on the page.
	if sameTag, err := t.Query(n.Tag()); err == nil && len(sameTag) < 5 {
		bare := fmt.Sprintf("%s:nth-of-type(%d)", n.Tag(), n.SiblingIndexSameTag())
		if a := verify(t, bare, n); a.outcome == outcomeUnique {
			return a.selector, true
		}
	}

	return "", false
}

// verify re-queries the tree and classifies the selector as unique to the
// target, ambiguous, or invalid.
func verify(t *dom.Tree, selector string, target dom.Node) attempt {
	matches, err := t.Query(selector)
	if err != nil {
		return attempt{selector: selector, outcome: outcomeInvalid}
	}
	if len(matches) == 1 && matches[0].Key() == target.Key() {
		return attempt{selector: selector, outcome: outcomeUnique, matches: 1}
	}
	return attempt{selector: selector, outcome: outcomeAmbiguous, matches: len(matches)}
}

// parentSelector derives the scope prefix for strategy 5: the parent's id,
// the bare tag for main/body, or the parent's meaningful classes.
func parentSelector(n dom.Node) (string, bool) {
	parent, ok := n.Parent()
	if !ok {
		return "", false
	}
	if id := parent.ID(); id != "" && !startsWithDigit(id) {
		return "#" + id, true
	}
	if tag := parent.Tag(); tag == "main" || tag == "body" {
		return tag, true
	}
	if classes := meaningfulClasses(parent); len(classes) > 0 {
		return "." + strings.Join(classes, "."), true
	}
	return "", false
}

// meaningfulClasses filters the class list down to names that identify the
// element rather than style it: utility-style prefixes and anything two
// characters or shorter are dropped.
func meaningfulClasses(n dom.Node) []string {
	var out []string
	for _, class := range n.Classes() {
		if len(class) <= 2 {
			continue
		}
		if utilityClass.MatchString(strings.ToLower(class)) {
			continue
		}
		out = append(out, class)
	}
	return out
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
