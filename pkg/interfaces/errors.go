/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error types for the BlockLens engine. Layout analysis wraps unexpected
failures in AnalysisFailedError; smart matching signals "no match" through an empty
selector rather than an error.
*/

package interfaces

import "fmt"

// AnalysisFailedError wraps any unexpected condition raised while analyzing a
// node's layout. Domain errors from collaborators (parse failures, unresolved
// selectors) are never converted into this type; they propagate unchanged.
type AnalysisFailedError struct {
	Msg string
	Err error
}

// Error returns the error message.
func (e *AnalysisFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("layout analysis failed: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("layout analysis failed: %s", e.Msg)
}

// Unwrap returns the wrapped cause, if any.
func (e *AnalysisFailedError) Unwrap() error {
	return e.Err
}
