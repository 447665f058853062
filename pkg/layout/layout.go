/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: layout.go
Description: Layout analysis entry point for BlockLens. Runs the structural
analyzer, pattern detector, and block namer as one pure pipeline over a tree
node, wrapping unexpected conditions in AnalysisFailedError.
*/

package layout

import (
	"fmt"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// Analyze derives the layout pattern, block name, and structure summary for a
// node. The result is a pure function of the tree snapshot: no I/O, no clock,
// no randomness. Unexpected failures inside the pipeline surface as
// *interfaces.AnalysisFailedError; domain errors raised by collaborators keep
// their own types and pass through unchanged.
func Analyze(n dom.Node) (analysis interfaces.LayoutAnalysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			if cause, ok := r.(error); ok {
				err = &interfaces.AnalysisFailedError{Msg: "unexpected failure", Err: cause}
				return
			}
			err = &interfaces.AnalysisFailedError{Msg: fmt.Sprint(r)}
		}
	}()

	if !n.Valid() {
		return interfaces.LayoutAnalysis{}, &interfaces.AnalysisFailedError{Msg: "invalid node handle"}
	}

	structure := AnalyzeStructure(n)
	pattern := DetectPattern(n, structure)

	return interfaces.LayoutAnalysis{
		Pattern:   pattern,
		BlockName: GenerateBlockName(pattern, structure),
		Structure: structure,
	}, nil
}
